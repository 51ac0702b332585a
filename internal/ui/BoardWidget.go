package ui

import (
	"fmt"
	"image/color"
	"log"

	"doodleboard/internal/config"
	"doodleboard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is the drawing surface. Input events update the history and
// the widget is then repainted from it.
type BoardWidget struct {
	widget.BaseWidget
	history  *state.History
	gesture  *state.Gesture
	viewport *state.Viewport
	settings state.Settings
	lastDrag state.Point
	panning  bool

	statusBar *widget.Label

	// OnPromptText is asked for the text of a Text tool press. It must call
	// commit with the entered string, or with "" when the user cancels.
	OnPromptText func(commit func(text string))
	// OnChanged runs after every history or settings change.
	OnChanged func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(cfg *config.Config) *BoardWidget {
	h := state.NewHistory()
	b := &BoardWidget{
		history:   h,
		gesture:   state.NewGesture(h),
		viewport:  state.NewViewport(),
		settings:  cfg.Settings(),
		statusBar: widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

// Settings returns the drawing settings new shapes will use.
func (b *BoardWidget) Settings() state.Settings { return b.settings }

// Shapes returns the visible shapes in paint order.
func (b *BoardWidget) Shapes() []state.Shape { return b.history.Visible() }

func (b *BoardWidget) CanUndo() bool { return b.history.CanUndo() }
func (b *BoardWidget) CanRedo() bool { return b.history.CanRedo() }

// Zoom returns the current paint scale.
func (b *BoardWidget) Zoom() float32 { return b.viewport.Scale() }

// Pan returns the screen offset of the drawing origin.
func (b *BoardWidget) Pan() fyne.Position {
	p := b.viewport.Pan()
	return fyne.NewPos(p.X, p.Y)
}

func (b *BoardWidget) StatusBar() *widget.Label { return b.statusBar }

func (b *BoardWidget) SetStatus(text string) {
	b.statusBar.SetText(text)
}

func (b *BoardWidget) SetTool(t state.Tool) {
	b.gesture.Cancel()
	b.settings = b.settings.WithTool(t)
	b.settingsChanged(fmt.Sprintf("Tool: %s", t))
}

func (b *BoardWidget) SetColor(c color.Color) {
	b.settings = b.settings.WithColor(toNRGBA(c))
	b.settingsChanged("Colour changed")
}

func (b *BoardWidget) SetStroke(w int) {
	b.settings = b.settings.WithWidth(w)
	b.settingsChanged(fmt.Sprintf("Stroke width: %d", b.settings.Width))
}

// ToggleEraser flips eraser mode and reports the new state.
func (b *BoardWidget) ToggleEraser() bool {
	b.settings = b.settings.WithEraser(!b.settings.Eraser)
	if b.settings.Eraser {
		b.settingsChanged("Eraser on")
	} else {
		b.settingsChanged("Eraser off")
	}
	return b.settings.Eraser
}

func (b *BoardWidget) Undo() {
	if !b.history.Undo() {
		return
	}
	log.Printf("[BOARD] Undo, cursor now %d", b.history.Cursor())
	b.historyChanged("Undo")
}

func (b *BoardWidget) Redo() {
	if !b.history.Redo() {
		return
	}
	log.Printf("[BOARD] Redo, cursor now %d", b.history.Cursor())
	b.historyChanged("Redo")
}

// ClearPaths empties the board.
func (b *BoardWidget) ClearPaths() {
	b.gesture.Cancel()
	b.history.Clear()
	log.Println("[BOARD] Cleared")
	b.historyChanged("Cleared")
}

func (b *BoardWidget) toModel(p fyne.Position) state.Point {
	return b.viewport.ToModel(state.Point{X: p.X, Y: p.Y})
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonSecondary || e.Button == desktop.MouseButtonTertiary {
		b.panning = true
		return
	}
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	at := b.toModel(e.Position)
	b.lastDrag = at
	if b.gesture.Press(at, b.settings) == state.ActionPromptText {
		b.promptText(at)
	}
}

// promptText commits with the settings in effect at press time.
func (b *BoardWidget) promptText(at state.Point) {
	if b.OnPromptText == nil {
		return
	}
	s := b.settings
	b.OnPromptText(func(text string) {
		if b.gesture.CommitText(at, text, s) {
			b.historyChanged("Added text")
		}
	})
}

// Dragged extends the current gesture, or pans the view when the drag
// started on the secondary or middle button.
func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	if b.panning {
		b.viewport.PanBy(e.Dragged.DX, e.Dragged.DY)
		b.Refresh()
		return
	}
	if !b.gesture.Active() {
		return
	}
	b.lastDrag = b.toModel(e.Position)
	if b.gesture.Drag(b.lastDrag, b.settings) && b.OnChanged != nil {
		b.OnChanged()
	}
	b.Refresh()
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		b.panning = false
		return
	}
	b.release(b.toModel(e.Position))
}

// DragEnd finishes a gesture whose mouse-up was not delivered to us, e.g.
// when the pointer was released outside the widget.
func (b *BoardWidget) DragEnd() {
	b.panning = false
	b.release(b.lastDrag)
}

func (b *BoardWidget) release(at state.Point) {
	if !b.gesture.Active() {
		return
	}
	tool := b.settings.Tool
	if b.gesture.Release(at, b.settings) {
		b.historyChanged(fmt.Sprintf("Drew %s", tool))
		return
	}
	b.Refresh()
}

// Scrolled zooms by one step per wheel notch around the pointer.
func (b *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	at := state.Point{X: e.Position.X, Y: e.Position.Y}
	switch {
	case e.Scrolled.DY > 0:
		b.viewport.ZoomIn(at)
	case e.Scrolled.DY < 0:
		b.viewport.ZoomOut(at)
	default:
		return
	}
	b.SetStatus(fmt.Sprintf("Zoom: %.0f%%", b.viewport.Scale()*100))
	b.Refresh()
}

// ResetZoom returns to 100% with no pan.
func (b *BoardWidget) ResetZoom() {
	b.viewport.Reset()
	b.SetStatus("Zoom: 100%")
	b.Refresh()
}

func (b *BoardWidget) historyChanged(what string) {
	b.SetStatus(fmt.Sprintf("%s (%d/%d)", what, b.history.Cursor()+1, b.history.Len()))
	b.Refresh()
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

func (b *BoardWidget) settingsChanged(what string) {
	b.SetStatus(what)
	if b.OnChanged != nil {
		b.OnChanged()
	}
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent)    {}
func (b *BoardWidget) MouseOut()                      {}
func (b *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.settings.Background)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) rebuild() {
	var preview *state.Shape
	if p, ok := r.board.gesture.Preview(r.board.settings); ok {
		preview = &p
	}
	scene := sceneObjects(r.board.history.Visible(), preview, r.board.viewport)
	r.objects = append([]fyne.CanvasObject{r.background}, scene...)
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func toNRGBA(c color.Color) color.NRGBA {
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}
