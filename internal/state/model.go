package state

import (
	"image/color"

	"github.com/google/uuid"
)

type Point struct{ X, Y float32 }

// Mid returns the point halfway between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Rect is an axis-aligned box with non-negative Width and Height.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// RectFromCorners builds a Rect from two opposite corners given in any order.
func RectFromCorners(a, b Point) Rect {
	x, y := a.X, a.Y
	if b.X < x {
		x = b.X
	}
	if b.Y < y {
		y = b.Y
	}
	w := a.X - b.X
	if w < 0 {
		w = -w
	}
	h := a.Y - b.Y
	if h < 0 {
		h = -h
	}
	return Rect{X: x, Y: y, Width: w, Height: h}
}

type Kind string

const (
	KindCurve     Kind = "curve"
	KindLine      Kind = "line"
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindText      Kind = "text"
)

// Shape is one committed drawing primitive. Shapes are values and are never
// modified after they enter the history.
type Shape struct {
	ID    string
	Kind  Kind
	From  Point // curve, line
	Ctrl  Point // curve control point
	To    Point // curve, line
	Rect  Rect  // rectangle, ellipse
	At    Point // text baseline origin
	Text  string
	Color color.NRGBA
	Width int
}

func newShape(kind Kind, c color.NRGBA, width int) Shape {
	return Shape{ID: uuid.NewString(), Kind: kind, Color: c, Width: width}
}

// NewCurve returns a quadratic curve segment from -> ctrl -> to.
func NewCurve(from, ctrl, to Point, c color.NRGBA, width int) Shape {
	s := newShape(KindCurve, c, width)
	s.From, s.Ctrl, s.To = from, ctrl, to
	return s
}

func NewLine(from, to Point, c color.NRGBA, width int) Shape {
	s := newShape(KindLine, c, width)
	s.From, s.To = from, to
	return s
}

// NewRectangle normalises the two drag corners so the result does not depend
// on drag direction.
func NewRectangle(a, b Point, c color.NRGBA, width int) Shape {
	s := newShape(KindRectangle, c, width)
	s.Rect = RectFromCorners(a, b)
	return s
}

func NewEllipse(a, b Point, c color.NRGBA, width int) Shape {
	s := newShape(KindEllipse, c, width)
	s.Rect = RectFromCorners(a, b)
	return s
}

func NewText(at Point, text string, c color.NRGBA, width int) Shape {
	s := newShape(KindText, c, width)
	s.At, s.Text = at, text
	return s
}

// TextSize is the font size used for text shapes of the given stroke width.
func TextSize(width int) float32 {
	return float32(width * 2)
}

// curveSteps is the number of line segments a curve is flattened into.
const curveSteps = 8

// Flatten approximates the shape outline as a polyline. Only curves and lines
// produce points; other kinds return nil.
func (s Shape) Flatten() []Point {
	switch s.Kind {
	case KindLine:
		return []Point{s.From, s.To}
	case KindCurve:
		pts := make([]Point, 0, curveSteps+1)
		for i := 0; i <= curveSteps; i++ {
			t := float32(i) / curveSteps
			u := 1 - t
			pts = append(pts, Point{
				X: u*u*s.From.X + 2*u*t*s.Ctrl.X + t*t*s.To.X,
				Y: u*u*s.From.Y + 2*u*t*s.Ctrl.Y + t*t*s.To.Y,
			})
		}
		return pts
	}
	return nil
}

// Bounds returns the box covered by the shape's geometry, ignoring stroke
// width. Text is approximated by its font size per rune.
func (s Shape) Bounds() Rect {
	switch s.Kind {
	case KindRectangle, KindEllipse:
		return s.Rect
	case KindText:
		size := TextSize(s.Width)
		w := size * 0.6 * float32(len([]rune(s.Text)))
		return Rect{X: s.At.X, Y: s.At.Y - size, Width: w, Height: size}
	}
	return boundsOf(s.Flatten())
}
