package config

import (
	"fmt"
	"image/color"

	"doodleboard/internal/state"
)

// Config holds the startup defaults for the board.
type Config struct {
	Title        string
	WindowWidth  float32
	WindowHeight float32
	Background   color.NRGBA
	Ink          color.NRGBA
	StrokeWidth  int
	Tool         state.Tool
}

// Default returns the configuration the app starts with.
func Default() *Config {
	return &Config{
		Title:        "Doodle Duo",
		WindowWidth:  800,
		WindowHeight: 600,
		Background:   color.NRGBA{R: 18, G: 18, B: 18, A: 255},
		Ink:          color.NRGBA{R: 211, G: 211, B: 211, A: 255},
		StrokeWidth:  4,
		Tool:         state.ToolFreehand,
	}
}

// Validate checks that the values can be used to build a board.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("invalid window size %vx%v", c.WindowWidth, c.WindowHeight)
	}
	if c.StrokeWidth < state.MinWidth || c.StrokeWidth > state.MaxWidth {
		return fmt.Errorf("stroke width %d out of range [%d, %d]", c.StrokeWidth, state.MinWidth, state.MaxWidth)
	}
	if c.Background.A != 255 {
		return fmt.Errorf("background must be opaque, got alpha %d", c.Background.A)
	}
	if _, err := state.ParseTool(c.Tool.String()); err != nil {
		return err
	}
	return nil
}

// Settings returns the initial drawing settings.
func (c *Config) Settings() state.Settings {
	return state.Settings{
		Tool:       c.Tool,
		Color:      c.Ink,
		Width:      c.StrokeWidth,
		Background: c.Background,
	}
}
