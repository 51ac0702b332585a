package export

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math"

	"doodleboard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

const (
	// mmPerPixel maps board pixels to millimetres at 96 dpi.
	mmPerPixel = 25.4 / 96
	ptPerMM    = 72 / 25.4
	marginMM   = 10.0
)

// Options controls the exported page.
type Options struct {
	Background color.NRGBA
}

// PDF draws shapes onto one landscape A4 page and writes it to w. The
// drawing is shrunk to fit the printable area when needed; it is never
// enlarged past its on-screen size.
func PDF(w io.Writer, shapes []state.Shape, opts Options) error {
	p := gofpdf.New("L", "mm", "A4", "")
	p.SetLineCapStyle("round")
	p.SetLineJoinStyle("round")
	p.AddPage()

	pageW, pageH := p.GetPageSize()
	p.SetFillColor(int(opts.Background.R), int(opts.Background.G), int(opts.Background.B))
	p.Rect(0, 0, pageW, pageH, "F")

	if bounds, ok := state.ShapesBounds(shapes); ok {
		tr := fit(bounds, pageW, pageH)
		for _, s := range shapes {
			drawShape(p, s, tr)
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	log.Printf("[EXPORT] Rendered %d shapes", len(shapes))
	return nil
}

// transform maps board coordinates to page millimetres.
type transform struct {
	scale  float64
	dx, dy float64
}

func (t transform) pt(p state.Point) (float64, float64) {
	return float64(p.X)*t.scale + t.dx, float64(p.Y)*t.scale + t.dy
}

func (t transform) length(v float32) float64 {
	return float64(v) * t.scale
}

func fit(b state.Rect, pageW, pageH float64) transform {
	scale := mmPerPixel
	availW, availH := pageW-2*marginMM, pageH-2*marginMM
	if b.Width > 0 {
		scale = math.Min(scale, availW/float64(b.Width))
	}
	if b.Height > 0 {
		scale = math.Min(scale, availH/float64(b.Height))
	}
	return transform{
		scale: scale,
		dx:    marginMM - float64(b.X)*scale,
		dy:    marginMM - float64(b.Y)*scale,
	}
}

func drawShape(p *gofpdf.Fpdf, s state.Shape, tr transform) {
	c := s.Color
	p.SetDrawColor(int(c.R), int(c.G), int(c.B))
	p.SetLineWidth(tr.length(float32(s.Width)))

	switch s.Kind {
	case state.KindCurve:
		x0, y0 := tr.pt(s.From)
		cx, cy := tr.pt(s.Ctrl)
		x1, y1 := tr.pt(s.To)
		p.Curve(x0, y0, cx, cy, x1, y1, "D")
	case state.KindLine:
		x0, y0 := tr.pt(s.From)
		x1, y1 := tr.pt(s.To)
		p.Line(x0, y0, x1, y1)
	case state.KindRectangle:
		x, y := tr.pt(state.Point{X: s.Rect.X, Y: s.Rect.Y})
		p.Rect(x, y, tr.length(s.Rect.Width), tr.length(s.Rect.Height), "D")
	case state.KindEllipse:
		rx, ry := tr.length(s.Rect.Width)/2, tr.length(s.Rect.Height)/2
		x, y := tr.pt(state.Point{X: s.Rect.X, Y: s.Rect.Y})
		p.Ellipse(x+rx, y+ry, rx, ry, 0, "D")
	case state.KindText:
		p.SetTextColor(int(c.R), int(c.G), int(c.B))
		p.SetFont("Helvetica", "", tr.length(state.TextSize(s.Width))*ptPerMM)
		x, y := tr.pt(s.At)
		p.Text(x, y, p.UnicodeTranslatorFromDescriptor("")(s.Text))
	}
}
