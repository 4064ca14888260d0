package cmd

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Alia5/inputsim/input"
)

// Move positions the pointer. Absolute coordinates are in the 0-65535 range
// unless --pixels is given.
type Move struct {
	X           float64 `arg:"" help:"Horizontal coordinate"`
	Y           float64 `arg:"" help:"Vertical coordinate"`
	Relative    bool    `help:"Move relative to the current position, in mickeys" xor:"mode"`
	VirtualDesk bool    `help:"Map coordinates onto the whole virtual desktop"`
	Pixels      bool    `help:"Coordinates are virtual screen pixels" xor:"mode"`
}

func (m *Move) Run(s *Session, logger *slog.Logger) error {
	if err := s.wait(logger); err != nil {
		return err
	}
	mouse := s.Sim.Mouse()

	switch {
	case m.Relative:
		return mouse.MoveBy(int(m.X), int(m.Y))
	case m.Pixels:
		screen, err := s.Screen()
		if err != nil {
			return fmt.Errorf("failed to read virtual screen: %w", err)
		}
		x, y := screen.Normalize(int(m.X), int(m.Y))
		logger.Debug("pixel position normalized", "screen", screen, "x", x, "y", y)
		return mouse.MoveToPositionOnVirtualDesktop(x, y)
	case m.VirtualDesk:
		return mouse.MoveToPositionOnVirtualDesktop(m.X, m.Y)
	default:
		return mouse.MoveTo(m.X, m.Y)
	}
}

// Click presses a mouse button.
type Click struct {
	Button  string `arg:"" optional:"" default:"left" enum:"left,middle,right" help:"left, middle or right"`
	XButton int    `name:"x-button" help:"Use extra button 1 or 2 instead"`
	Double  bool   `help:"Double click"`
	Down    bool   `help:"Only press the button" xor:"action"`
	Up      bool   `help:"Only release the button" xor:"action"`
}

func (c *Click) Run(s *Session, logger *slog.Logger) error {
	if c.Double && (c.Down || c.Up) {
		return errors.New("--double cannot be combined with --down or --up")
	}
	if c.XButton < 0 || c.XButton > input.XButton2 {
		return fmt.Errorf("%w: x-button must be 1 or 2", input.ErrInvalidArgument)
	}
	button, ok := input.ParseMouseButton(c.Button)
	if !ok {
		return fmt.Errorf("%w: unknown mouse button %q", input.ErrInvalidArgument, c.Button)
	}
	if err := s.wait(logger); err != nil {
		return err
	}

	m := s.Sim.Mouse()
	if c.XButton != 0 {
		switch {
		case c.Down:
			return m.XButtonDown(c.XButton)
		case c.Up:
			return m.XButtonUp(c.XButton)
		case c.Double:
			return m.XButtonDoubleClick(c.XButton)
		default:
			return m.XButtonClick(c.XButton)
		}
	}
	switch {
	case c.Down:
		return m.ButtonDown(button)
	case c.Up:
		return m.ButtonUp(button)
	case c.Double:
		return m.ButtonDoubleClick(button)
	default:
		return m.ButtonClick(button)
	}
}

// Scroll turns the wheel by a number of clicks.
type Scroll struct {
	Clicks     int  `arg:"" help:"Wheel clicks; positive scrolls up or right"`
	Horizontal bool `help:"Scroll horizontally"`
}

func (sc *Scroll) Run(s *Session, logger *slog.Logger) error {
	if err := s.wait(logger); err != nil {
		return err
	}
	if sc.Horizontal {
		return s.Sim.Mouse().HorizontalScroll(sc.Clicks)
	}
	return s.Sim.Mouse().VerticalScroll(sc.Clicks)
}
