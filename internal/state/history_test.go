package state

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var ink = color.NRGBA{R: 211, G: 211, B: 211, A: 255}

func line(x float32) Shape {
	return NewLine(Point{X: x}, Point{X: x, Y: 10}, ink, 4)
}

func ids(shapes []Shape) []string {
	out := make([]string, 0, len(shapes))
	for _, s := range shapes {
		out = append(out, s.ID)
	}
	return out
}

func TestHistoryUndoRedoAppend(t *testing.T) {
	h := NewHistory()
	a, b, c := line(1), line(2), line(3)

	h.Append(a)
	h.Append(b)
	if !h.Undo() {
		t.Fatal("Undo with two entries should succeed")
	}
	if diff := cmp.Diff([]string{a.ID}, ids(h.Visible())); diff != "" {
		t.Errorf("after undo (-want +got):\n%s", diff)
	}

	if !h.Redo() {
		t.Fatal("Redo after undo should succeed")
	}
	if diff := cmp.Diff([]string{a.ID, b.ID}, ids(h.Visible())); diff != "" {
		t.Errorf("after redo (-want +got):\n%s", diff)
	}

	h.Undo()
	h.Append(c)
	if diff := cmp.Diff([]string{a.ID, c.ID}, ids(h.Visible())); diff != "" {
		t.Errorf("after append (-want +got):\n%s", diff)
	}
	if h.Redo() {
		t.Error("Redo after append should be a no-op")
	}
	if h.Len() != 2 {
		t.Errorf("Expected 2 stored entries, got %d", h.Len())
	}
}

func TestHistoryUndoRedoRestoresVisible(t *testing.T) {
	for n := 1; n <= 6; n++ {
		h := NewHistory()
		for i := 0; i < n; i++ {
			h.Append(line(float32(i)))
		}
		before := h.Visible()
		h.Undo()
		h.Redo()
		if diff := cmp.Diff(before, h.Visible()); diff != "" {
			t.Errorf("n=%d: undo+redo changed visible list (-want +got):\n%s", n, diff)
		}
	}
}

func TestHistoryBoundaries(t *testing.T) {
	h := NewHistory()
	if h.Undo() {
		t.Error("Undo on empty history should be a no-op")
	}
	if h.Redo() {
		t.Error("Redo on empty history should be a no-op")
	}
	if h.Cursor() != -1 {
		t.Errorf("Expected cursor -1, got %d", h.Cursor())
	}

	h.Append(line(1))
	if h.Redo() {
		t.Error("Redo at end of history should be a no-op")
	}
	h.Undo()
	if h.Undo() {
		t.Error("second Undo past the start should be a no-op")
	}
	if h.CanUndo() || !h.CanRedo() {
		t.Errorf("CanUndo=%v CanRedo=%v, want false true", h.CanUndo(), h.CanRedo())
	}
	if got := len(h.Visible()); got != 0 {
		t.Errorf("Expected nothing visible, got %d", got)
	}
}

func TestHistoryClear(t *testing.T) {
	for _, n := range []int{0, 1, 25} {
		h := NewHistory()
		for i := 0; i < n; i++ {
			h.Append(line(float32(i)))
		}
		h.Undo()
		h.Clear()
		if got := len(h.Visible()); got != 0 {
			t.Errorf("n=%d: Expected empty visible list, got %d", n, got)
		}
		if h.CanUndo() || h.CanRedo() {
			t.Errorf("n=%d: nothing should be undoable or redoable after Clear", n)
		}
	}
}

func TestHistoryVisibleIsCopy(t *testing.T) {
	h := NewHistory()
	h.Append(line(1))
	v := h.Visible()
	v[0] = line(99)
	if h.Visible()[0].From.X != 1 {
		t.Error("mutating Visible result changed the history")
	}
}
