package state

import "log"

// History is a linear undo/redo list of shapes. Entries at or before the
// cursor are visible; entries after it are pending redo until the next
// Append discards them.
//
// History is not safe for concurrent use. The board only touches it from
// the UI goroutine.
type History struct {
	shapes []Shape
	cursor int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{cursor: -1}
}

// Append drops any redo-pending entries, adds s and makes it the newest
// visible entry.
func (h *History) Append(s Shape) {
	if h.cursor < len(h.shapes)-1 {
		dropped := len(h.shapes) - 1 - h.cursor
		h.shapes = h.shapes[:h.cursor+1]
		log.Printf("[HISTORY] Discarded %d redo entries", dropped)
	}
	h.shapes = append(h.shapes, s)
	h.cursor = len(h.shapes) - 1
}

// Undo hides the newest visible entry. It reports false at the start of
// history.
func (h *History) Undo() bool {
	if h.cursor < 0 {
		return false
	}
	h.cursor--
	return true
}

// Redo shows the next hidden entry again. It reports false when nothing is
// pending.
func (h *History) Redo() bool {
	if h.cursor >= len(h.shapes)-1 {
		return false
	}
	h.cursor++
	return true
}

// Clear empties the history.
func (h *History) Clear() {
	h.shapes = nil
	h.cursor = -1
}

// Visible returns a copy of the entries up to and including the cursor, in
// paint order.
func (h *History) Visible() []Shape {
	out := make([]Shape, h.cursor+1)
	copy(out, h.shapes[:h.cursor+1])
	return out
}

func (h *History) Len() int      { return len(h.shapes) }
func (h *History) Cursor() int   { return h.cursor }
func (h *History) CanUndo() bool { return h.cursor >= 0 }
func (h *History) CanRedo() bool { return h.cursor < len(h.shapes)-1 }
