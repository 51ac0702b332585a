package state

import (
	"fmt"
	"image/color"
)

type Tool int

const (
	ToolFreehand Tool = iota
	ToolLine
	ToolRectangle
	ToolEllipse
	ToolText
)

// Tools lists every tool in selector order.
var Tools = []Tool{ToolFreehand, ToolLine, ToolRectangle, ToolEllipse, ToolText}

func (t Tool) String() string {
	switch t {
	case ToolFreehand:
		return "Freehand"
	case ToolLine:
		return "Line"
	case ToolRectangle:
		return "Rectangle"
	case ToolEllipse:
		return "Ellipse"
	case ToolText:
		return "Text"
	}
	return fmt.Sprintf("Tool(%d)", int(t))
}

// ParseTool maps a selector label back to its tool.
func ParseTool(name string) (Tool, error) {
	for _, t := range Tools {
		if t.String() == name {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

const (
	MinWidth = 1
	MaxWidth = 10
)

// Settings is the drawing configuration handed to every gesture call. It is
// a value: the With* methods return modified copies.
type Settings struct {
	Tool       Tool
	Color      color.NRGBA
	Width      int
	Eraser     bool
	Background color.NRGBA
}

func (s Settings) WithTool(t Tool) Settings {
	s.Tool = t
	return s
}

func (s Settings) WithColor(c color.NRGBA) Settings {
	s.Color = c
	return s
}

// WithWidth clamps w into [MinWidth, MaxWidth].
func (s Settings) WithWidth(w int) Settings {
	if w < MinWidth {
		w = MinWidth
	}
	if w > MaxWidth {
		w = MaxWidth
	}
	s.Width = w
	return s
}

func (s Settings) WithEraser(on bool) Settings {
	s.Eraser = on
	return s
}

// InkColor is the colour new shapes are drawn with. The eraser paints with
// the background colour.
func (s Settings) InkColor() color.NRGBA {
	if s.Eraser {
		return s.Background
	}
	return s.Color
}
