package ui

import (
	"image/color"
	"testing"

	"doodleboard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
)

var ink = color.NRGBA{R: 211, G: 211, B: 211, A: 255}

func TestShapeObjectsScale(t *testing.T) {
	test.NewTempApp(t)

	rect := state.NewRectangle(state.Point{X: 30, Y: 40}, state.Point{X: 10, Y: 20}, ink, 3)
	v := state.NewViewport()
	for i := 0; i < 10; i++ {
		v.ZoomIn(state.Point{})
	}
	objs := shapeObjects(rect, v)
	if len(objs) != 1 {
		t.Fatalf("Expected 1 object, got %d", len(objs))
	}
	r, ok := objs[0].(*canvas.Rectangle)
	if !ok {
		t.Fatalf("Expected *canvas.Rectangle, got %T", objs[0])
	}
	if r.Position() != fyne.NewPos(20, 40) {
		t.Errorf("Expected position (20,40), got %v", r.Position())
	}
	if r.Size() != fyne.NewSize(40, 40) {
		t.Errorf("Expected size 40x40, got %v", r.Size())
	}
	if r.StrokeWidth != 6 {
		t.Errorf("Expected stroke 6, got %v", r.StrokeWidth)
	}
	if r.StrokeColor != ink {
		t.Errorf("Expected stroke colour %v, got %v", ink, r.StrokeColor)
	}
}

func TestShapeObjectsKinds(t *testing.T) {
	test.NewTempApp(t)

	tests := []struct {
		shape state.Shape
		count int
		check func(fyne.CanvasObject) bool
	}{
		{
			state.NewCurve(state.Point{}, state.Point{X: 1, Y: 1}, state.Point{X: 2, Y: 2}, ink, 1),
			8,
			func(o fyne.CanvasObject) bool { _, ok := o.(*canvas.Line); return ok },
		},
		{
			state.NewLine(state.Point{}, state.Point{X: 5, Y: 5}, ink, 1),
			1,
			func(o fyne.CanvasObject) bool { _, ok := o.(*canvas.Line); return ok },
		},
		{
			state.NewEllipse(state.Point{}, state.Point{X: 5, Y: 5}, ink, 1),
			1,
			func(o fyne.CanvasObject) bool { _, ok := o.(*canvas.Circle); return ok },
		},
		{
			state.NewText(state.Point{X: 5, Y: 50}, "hi", ink, 4),
			1,
			func(o fyne.CanvasObject) bool {
				txt, ok := o.(*canvas.Text)
				return ok && txt.Text == "hi" && txt.TextSize == 8 && txt.Position().Y == 42
			},
		},
	}
	for _, tt := range tests {
		objs := shapeObjects(tt.shape, state.NewViewport())
		if len(objs) != tt.count {
			t.Errorf("%s: Expected %d objects, got %d", tt.shape.Kind, tt.count, len(objs))
			continue
		}
		for _, o := range objs {
			if !tt.check(o) {
				t.Errorf("%s: unexpected object %T %+v", tt.shape.Kind, o, o)
			}
		}
	}
}

func TestShapeObjectsFollowPan(t *testing.T) {
	test.NewTempApp(t)

	v := state.NewViewport()
	v.PanBy(-30, 15)
	line := state.NewLine(state.Point{X: 40, Y: 5}, state.Point{X: 60, Y: 5}, ink, 2)
	objs := shapeObjects(line, v)
	l, ok := objs[0].(*canvas.Line)
	if !ok {
		t.Fatalf("Expected *canvas.Line, got %T", objs[0])
	}
	if l.Position1 != fyne.NewPos(10, 20) || l.Position2 != fyne.NewPos(30, 20) {
		t.Errorf("Expected (10,20)-(30,20), got %v-%v", l.Position1, l.Position2)
	}

	text := state.NewText(state.Point{X: 40, Y: 50}, "hi", ink, 4)
	txt := shapeObjects(text, v)[0].(*canvas.Text)
	if txt.Position() != fyne.NewPos(10, 57) {
		t.Errorf("Expected text at (10,57), got %v", txt.Position())
	}
}

func TestSceneObjectsPreviewLast(t *testing.T) {
	test.NewTempApp(t)

	shapes := []state.Shape{state.NewLine(state.Point{}, state.Point{X: 1}, ink, 1)}
	preview := state.NewRectangle(state.Point{}, state.Point{X: 4, Y: 4}, ink, 1)

	objs := sceneObjects(shapes, &preview, state.NewViewport())
	if len(objs) != 2 {
		t.Fatalf("Expected 2 objects, got %d", len(objs))
	}
	r, ok := objs[1].(*canvas.Rectangle)
	if !ok {
		t.Fatalf("Expected preview rectangle last, got %T", objs[1])
	}
	if c := r.StrokeColor.(color.NRGBA); c.A != previewAlpha {
		t.Errorf("Expected preview alpha %d, got %d", previewAlpha, c.A)
	}
	if preview.Color.A != 255 {
		t.Error("preview shape was modified")
	}
}
