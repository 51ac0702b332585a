package state

import "log"

// Action tells the caller what a press needs from the UI.
type Action int

const (
	ActionNone Action = iota
	// ActionPromptText asks the UI to collect a string and pass it to
	// Gesture.CommitText.
	ActionPromptText
)

// Gesture turns one press/drag/release sequence into history entries.
// Points are in model coordinates.
type Gesture struct {
	history *History

	active bool
	start  Point
	prev   Point
	cur    Point
}

func NewGesture(h *History) *Gesture {
	return &Gesture{history: h}
}

// Active reports whether a press has been seen without its release.
func (g *Gesture) Active() bool { return g.active }

// Press starts a gesture at p.
func (g *Gesture) Press(p Point, s Settings) Action {
	if s.Tool == ToolText {
		g.reset()
		return ActionPromptText
	}
	g.active = true
	g.start, g.prev, g.cur = p, p, p
	return ActionNone
}

// CommitText appends a text shape at p. An empty string, which is what a
// cancelled prompt yields, leaves the history untouched.
func (g *Gesture) CommitText(p Point, text string, s Settings) bool {
	if text == "" {
		return false
	}
	g.history.Append(NewText(p, text, s.InkColor(), s.Width))
	return true
}

// Drag moves the gesture to p. Freehand appends a curve segment from the
// previous sample, so every segment is its own history entry; a sample
// equal to the previous one adds nothing. Shape tools only move the preview.
// It reports whether the history changed.
func (g *Gesture) Drag(p Point, s Settings) bool {
	if !g.active {
		return false
	}
	g.cur = p
	if s.Tool != ToolFreehand || p == g.prev {
		return false
	}
	g.appendSegment(p, s)
	return true
}

// Release commits the gesture ending at p and clears the transient state.
// It reports whether the history changed.
func (g *Gesture) Release(p Point, s Settings) bool {
	if !g.active {
		return false
	}
	defer g.reset()
	g.cur = p

	switch s.Tool {
	case ToolFreehand:
		if p == g.prev {
			return false
		}
		g.appendSegment(p, s)
	case ToolLine, ToolRectangle, ToolEllipse:
		g.history.Append(g.shapeFor(s))
	default:
		return false
	}
	return true
}

// Preview returns the live shape for an in-progress line, rectangle or
// ellipse drag. It is never added to the history.
func (g *Gesture) Preview(s Settings) (Shape, bool) {
	if !g.active {
		return Shape{}, false
	}
	switch s.Tool {
	case ToolLine, ToolRectangle, ToolEllipse:
		return g.shapeFor(s), true
	}
	return Shape{}, false
}

// Cancel drops an in-progress gesture without committing anything.
func (g *Gesture) Cancel() {
	if g.active {
		log.Println("[GESTURE] Cancelled")
	}
	g.reset()
}

func (g *Gesture) appendSegment(p Point, s Settings) {
	g.history.Append(NewCurve(g.prev, g.prev.Mid(p), p, s.InkColor(), s.Width))
	g.prev = p
}

func (g *Gesture) shapeFor(s Settings) Shape {
	c := s.InkColor()
	switch s.Tool {
	case ToolRectangle:
		return NewRectangle(g.start, g.cur, c, s.Width)
	case ToolEllipse:
		return NewEllipse(g.start, g.cur, c, s.Width)
	}
	return NewLine(g.start, g.cur, c, s.Width)
}

func (g *Gesture) reset() {
	g.active = false
	g.start, g.prev, g.cur = Point{}, Point{}, Point{}
}
