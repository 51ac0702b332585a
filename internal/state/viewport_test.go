package state

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-2
}

func nearPoint(a, b Point) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func TestViewportZoomSteps(t *testing.T) {
	v := NewViewport()
	v.ZoomIn(Point{})
	v.ZoomIn(Point{})
	if !near(v.Scale(), 1.2) {
		t.Errorf("Expected scale 1.2, got %v", v.Scale())
	}
	v.ZoomOut(Point{})
	if !near(v.Scale(), 1.1) {
		t.Errorf("Expected scale 1.1, got %v", v.Scale())
	}
	v.PanBy(5, 5)
	v.Reset()
	if v.Scale() != 1 || v.Pan() != (Point{}) {
		t.Errorf("Expected scale 1 and no pan after reset, got %v %+v", v.Scale(), v.Pan())
	}
}

func TestViewportClamps(t *testing.T) {
	v := NewViewport()
	for i := 0; i < 100; i++ {
		v.ZoomOut(Point{X: 10, Y: 10})
	}
	if !near(v.Scale(), MinZoom) {
		t.Errorf("Expected scale clamped to %v, got %v", MinZoom, v.Scale())
	}
	for i := 0; i < 100; i++ {
		v.ZoomIn(Point{X: 10, Y: 10})
	}
	if !near(v.Scale(), MaxZoom) {
		t.Errorf("Expected scale clamped to %v, got %v", MaxZoom, v.Scale())
	}
}

func TestViewportZoomKeepsPointerAnchored(t *testing.T) {
	v := NewViewport()
	v.PanBy(-40, 25)
	pointers := []Point{{X: 0, Y: 0}, {X: 400, Y: 300}, {X: 780, Y: 590}, {X: 123, Y: 456}}
	for _, at := range pointers {
		for i := 0; i < 12; i++ {
			before := v.ToModel(at)
			if i%3 == 2 {
				v.ZoomOut(at)
			} else {
				v.ZoomIn(at)
			}
			if after := v.ToModel(at); !nearPoint(before, after) {
				t.Errorf("pointer %+v step %d: model point moved from %+v to %+v", at, i, before, after)
			}
		}
	}
}

func TestViewportMaxZoomReachesFarContent(t *testing.T) {
	v := NewViewport()
	far := Point{X: 700, Y: 500}
	// Zoom in with the pointer over far content, as a user would.
	at := v.ToScreen(far)
	for i := 0; i < 100; i++ {
		v.ZoomIn(at)
	}
	if got := v.ToScreen(far); !nearPoint(got, at) {
		t.Errorf("Expected %+v to stay at %+v on screen, got %+v", far, at, got)
	}

	// Panning brings any other point into view.
	origin := v.ToScreen(Point{})
	v.PanBy(-origin.X, -origin.Y)
	if got := v.ToScreen(Point{}); !nearPoint(got, Point{}) {
		t.Errorf("Expected model origin at screen origin after pan, got %+v", got)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	v := NewViewport()
	v.ZoomIn(Point{X: 50, Y: 60})
	v.ZoomIn(Point{X: 50, Y: 60})
	v.PanBy(13, -7)
	p := Point{X: 120, Y: 36}
	got := v.ToScreen(v.ToModel(p))
	if !nearPoint(got, p) {
		t.Errorf("round trip: got %+v, want %+v", got, p)
	}
}
