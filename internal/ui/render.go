package ui

import (
	"image/color"

	"doodleboard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
)

// previewAlpha is applied to the live shape while a drag is in progress.
const previewAlpha = 160

func toPos(p state.Point, v *state.Viewport) fyne.Position {
	sp := v.ToScreen(p)
	return fyne.NewPos(sp.X, sp.Y)
}

// shapeObjects converts a shape into canvas objects placed by the viewport.
func shapeObjects(s state.Shape, v *state.Viewport) []fyne.CanvasObject {
	scale := v.Scale()
	stroke := float32(s.Width) * scale

	switch s.Kind {
	case state.KindCurve, state.KindLine:
		pts := s.Flatten()
		objects := make([]fyne.CanvasObject, 0, len(pts)-1)
		for i := 1; i < len(pts); i++ {
			segment := canvas.NewLine(s.Color)
			segment.StrokeWidth = stroke
			segment.Position1 = toPos(pts[i-1], v)
			segment.Position2 = toPos(pts[i], v)
			objects = append(objects, segment)
		}
		return objects

	case state.KindRectangle:
		rect := canvas.NewRectangle(color.Transparent)
		rect.StrokeColor = s.Color
		rect.StrokeWidth = stroke
		rect.Move(toPos(state.Point{X: s.Rect.X, Y: s.Rect.Y}, v))
		rect.Resize(fyne.NewSize(s.Rect.Width*scale, s.Rect.Height*scale))
		return []fyne.CanvasObject{rect}

	case state.KindEllipse:
		ellipse := canvas.NewCircle(color.Transparent)
		ellipse.StrokeColor = s.Color
		ellipse.StrokeWidth = stroke
		ellipse.Position1 = toPos(state.Point{X: s.Rect.X, Y: s.Rect.Y}, v)
		ellipse.Position2 = toPos(state.Point{X: s.Rect.X + s.Rect.Width, Y: s.Rect.Y + s.Rect.Height}, v)
		return []fyne.CanvasObject{ellipse}

	case state.KindText:
		size := state.TextSize(s.Width) * scale
		text := canvas.NewText(s.Text, s.Color)
		text.TextSize = size
		// At is the baseline origin; canvas text is placed by its top-left.
		at := toPos(s.At, v)
		text.Move(fyne.NewPos(at.X, at.Y-size))
		return []fyne.CanvasObject{text}
	}
	return nil
}

// sceneObjects paints shapes in history order, followed by the preview.
func sceneObjects(shapes []state.Shape, preview *state.Shape, v *state.Viewport) []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	for _, s := range shapes {
		objects = append(objects, shapeObjects(s, v)...)
	}
	if preview != nil {
		p := *preview
		p.Color.A = previewAlpha
		objects = append(objects, shapeObjects(p, v)...)
	}
	return objects
}
