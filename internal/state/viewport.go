package state

import "math"

const (
	ZoomStep = 0.1
	MinZoom  = 0.1
	MaxZoom  = 5.0
)

// Viewport maps model coordinates to the screen: a uniform zoom followed by
// a pan offset in screen pixels.
type Viewport struct {
	scale      float64
	panX, panY float32
}

func NewViewport() *Viewport {
	return &Viewport{scale: 1}
}

func (v *Viewport) Scale() float32 { return float32(v.scale) }

// Pan returns the screen offset of the model origin.
func (v *Viewport) Pan() Point { return Point{X: v.panX, Y: v.panY} }

// ZoomIn steps the zoom up, keeping the model point under at fixed on screen.
func (v *Viewport) ZoomIn(at Point) { v.zoomAt(at, v.scale+ZoomStep) }

// ZoomOut steps the zoom down, keeping the model point under at fixed on
// screen.
func (v *Viewport) ZoomOut(at Point) { v.zoomAt(at, v.scale-ZoomStep) }

// PanBy moves the view by a screen delta.
func (v *Viewport) PanBy(dx, dy float32) {
	v.panX += dx
	v.panY += dy
}

// Reset returns to 100% with the model origin at the top-left corner.
func (v *Viewport) Reset() {
	v.scale = 1
	v.panX, v.panY = 0, 0
}

func (v *Viewport) zoomAt(at Point, s float64) {
	anchor := v.ToModel(at)
	// Round to the step grid so repeated steps do not drift.
	s = math.Round(s/ZoomStep) * ZoomStep
	v.scale = math.Max(MinZoom, math.Min(MaxZoom, s))

	scale := v.Scale()
	v.panX = at.X - anchor.X*scale
	v.panY = at.Y - anchor.Y*scale
}

// ToModel converts a point on screen to model coordinates.
func (v *Viewport) ToModel(p Point) Point {
	s := v.Scale()
	return Point{X: (p.X - v.panX) / s, Y: (p.Y - v.panY) / s}
}

// ToScreen converts a model point to screen coordinates.
func (v *Viewport) ToScreen(p Point) Point {
	s := v.Scale()
	return Point{X: p.X*s + v.panX, Y: p.Y*s + v.panY}
}
