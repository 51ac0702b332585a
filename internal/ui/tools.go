package ui

import (
	"image/color"

	"doodleboard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"golang.org/x/image/colornames"
)

// palette is the row of quick-pick swatches next to the colour picker.
var palette = []color.RGBA{
	colornames.Lightgray,
	colornames.White,
	colornames.Crimson,
	colornames.Orange,
	colornames.Gold,
	colornames.Limegreen,
	colornames.Deepskyblue,
	colornames.Mediumpurple,
}

// colorSwatch is a quick-pick colour. The swatch matching the board's ink
// gets a thick border.
type colorSwatch struct {
	widget.BaseWidget
	Color    color.NRGBA
	Selected bool
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: toNRGBA(c), OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

// SetSelected updates the highlight and repaints when it changes.
func (s *colorSwatch) SetSelected(on bool) {
	if s.Selected == on {
		return
	}
	s.Selected = on
	s.Refresh()
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	fill := canvas.NewRectangle(s.Color)
	fill.SetMinSize(fyne.NewSize(24, 24))
	border := canvas.NewRectangle(color.Transparent)
	r := &swatchRenderer{swatch: s, fill: fill, border: border}
	r.Refresh()
	return r
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

type swatchRenderer struct {
	swatch *colorSwatch
	fill   *canvas.Rectangle
	border *canvas.Rectangle
}

func (r *swatchRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.fill, r.border}
}

func (r *swatchRenderer) Layout(size fyne.Size) {
	r.fill.Resize(size)
	r.border.Resize(size)
}

func (r *swatchRenderer) MinSize() fyne.Size { return r.fill.MinSize() }

func (r *swatchRenderer) Refresh() {
	if r.swatch.Selected {
		r.border.StrokeColor = theme.Color(theme.ColorNamePrimary)
		r.border.StrokeWidth = 3
	} else {
		r.border.StrokeColor = color.Gray{Y: 150}
		r.border.StrokeWidth = 1
	}
	r.border.Refresh()
}

func (r *swatchRenderer) Destroy() {}

// Toolbar holds the board controls. Its buttons track the board's undo and
// redo availability through Update.
type Toolbar struct {
	board *BoardWidget

	content      fyne.CanvasObject
	toolSelect   *widget.Select
	strokeSlider *widget.Slider
	eraserButton *widget.Button
	undoButton   *widget.Button
	redoButton   *widget.Button
	exportButton *widget.Button
	swatches     []*colorSwatch
}

// NewToolbar builds the controls for board. onExport runs when the user asks
// for a PDF export.
func NewToolbar(board *BoardWidget, win fyne.Window, onExport func()) *Toolbar {
	t := &Toolbar{board: board}

	// --- Tool selector ---
	names := make([]string, 0, len(state.Tools))
	for _, tool := range state.Tools {
		names = append(names, tool.String())
	}
	t.toolSelect = widget.NewSelect(names, func(name string) {
		tool, err := state.ParseTool(name)
		if err != nil {
			return
		}
		board.SetTool(tool)
	})
	t.toolSelect.SetSelected(board.Settings().Tool.String())

	// --- Stroke Width Slider ---
	t.strokeSlider = widget.NewSlider(state.MinWidth, state.MaxWidth)
	t.strokeSlider.Step = 1
	t.strokeSlider.SetValue(float64(board.Settings().Width))
	t.strokeSlider.OnChanged = func(val float64) {
		board.SetStroke(int(val))
	}
	sliderContainer := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), t.strokeSlider)

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		board.SetColor(c)
	}
	colorBox := container.NewHBox()
	for _, c := range palette {
		sw := newColorSwatch(c, onColorTapped)
		t.swatches = append(t.swatches, sw)
		colorBox.Add(sw)
	}
	pickButton := widget.NewButtonWithIcon("", theme.ColorPaletteIcon(), func() {
		picker := dialog.NewColorPicker("Choose Color", "", func(c color.Color) {
			board.SetColor(c)
		}, win)
		picker.Advanced = true
		picker.SetColor(board.Settings().Color)
		picker.Show()
	})

	// --- Eraser ---
	t.eraserButton = widget.NewButton("Eraser", nil)
	t.eraserButton.OnTapped = func() {
		board.ToggleEraser()
		t.Update()
	}

	// --- History ---
	t.undoButton = widget.NewButtonWithIcon("", theme.ContentUndoIcon(), board.Undo)
	t.redoButton = widget.NewButtonWithIcon("", theme.ContentRedoIcon(), board.Redo)
	clearButton := widget.NewButtonWithIcon("Clear Board", theme.DeleteIcon(), board.ClearPaths)
	t.exportButton = widget.NewButtonWithIcon("Export PDF", theme.DocumentSaveIcon(), onExport)

	t.content = container.NewHBox(
		widget.NewLabel("Tool:"),
		t.toolSelect,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		sliderContainer,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		pickButton,
		widget.NewSeparator(),
		t.eraserButton,
		t.undoButton,
		t.redoButton,
		clearButton,
		layout.NewSpacer(),
		t.exportButton,
	)
	t.Update()
	return t
}

// Object returns the toolbar's canvas object for layout.
func (t *Toolbar) Object() fyne.CanvasObject { return t.content }

// Update syncs button and swatch state with the board.
func (t *Toolbar) Update() {
	ink := t.board.Settings().Color
	for _, sw := range t.swatches {
		sw.SetSelected(sw.Color == ink)
	}
	if t.board.Settings().Eraser {
		t.eraserButton.SetText("Pencil")
	} else {
		t.eraserButton.SetText("Eraser")
	}
	setEnabled(t.undoButton, t.board.CanUndo())
	setEnabled(t.redoButton, t.board.CanRedo())
}

func setEnabled(b *widget.Button, on bool) {
	if on {
		b.Enable()
	} else {
		b.Disable()
	}
}
