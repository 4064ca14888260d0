package simulator

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/Alia5/inputsim/input"
)

// Mouse sends mouse gestures. Absolute coordinates are in the normalized
// 0-65535 space; see Rect.Normalize for converting pixels.
type Mouse struct {
	sim            *Simulator
	wheelClickSize atomic.Int32
}

// Keyboard returns the keyboard facade of the same Simulator.
func (m *Mouse) Keyboard() *Keyboard { return m.sim.keyboard }

// WheelClickSize returns the wheel delta sent per scroll click.
func (m *Mouse) WheelClickSize() int32 { return m.wheelClickSize.Load() }

// SetWheelClickSize changes the wheel delta sent per scroll click.
func (m *Mouse) SetWheelClickSize(size int32) { m.wheelClickSize.Store(size) }

// MoveBy moves the pointer relative to its current position.
func (m *Mouse) MoveBy(dx, dy int) error {
	return m.sim.send("MoveBy", m.sim.newBuilder().AddRelativeMouseMovement(int32(dx), int32(dy)))
}

// MoveTo moves the pointer to a normalized position on the primary monitor.
// Fractions are truncated toward zero.
func (m *Mouse) MoveTo(x, y float64) error {
	return m.sim.send("MoveTo", m.sim.newBuilder().AddAbsoluteMouseMovement(int32(x), int32(y)))
}

// MoveToPositionOnVirtualDesktop moves the pointer to a normalized position
// spanning all monitors.
func (m *Mouse) MoveToPositionOnVirtualDesktop(x, y float64) error {
	return m.sim.send("MoveToPositionOnVirtualDesktop",
		m.sim.newBuilder().AddAbsoluteMouseMovementOnVirtualDesktop(int32(x), int32(y)))
}

func (m *Mouse) LeftButtonDown() error        { return m.ButtonDown(input.LeftButton) }
func (m *Mouse) LeftButtonUp() error          { return m.ButtonUp(input.LeftButton) }
func (m *Mouse) LeftButtonClick() error       { return m.ButtonClick(input.LeftButton) }
func (m *Mouse) LeftButtonDoubleClick() error { return m.ButtonDoubleClick(input.LeftButton) }

func (m *Mouse) MiddleButtonDown() error        { return m.ButtonDown(input.MiddleButton) }
func (m *Mouse) MiddleButtonUp() error          { return m.ButtonUp(input.MiddleButton) }
func (m *Mouse) MiddleButtonClick() error       { return m.ButtonClick(input.MiddleButton) }
func (m *Mouse) MiddleButtonDoubleClick() error { return m.ButtonDoubleClick(input.MiddleButton) }

func (m *Mouse) RightButtonDown() error        { return m.ButtonDown(input.RightButton) }
func (m *Mouse) RightButtonUp() error          { return m.ButtonUp(input.RightButton) }
func (m *Mouse) RightButtonClick() error       { return m.ButtonClick(input.RightButton) }
func (m *Mouse) RightButtonDoubleClick() error { return m.ButtonDoubleClick(input.RightButton) }

// ButtonDown presses b. Unknown buttons are rejected with ErrInvalidArgument.
func (m *Mouse) ButtonDown(b input.MouseButton) error {
	if err := checkButton(b); err != nil {
		return err
	}
	return m.sim.send("ButtonDown", m.sim.newBuilder().AddMouseButtonDown(b))
}

// ButtonUp releases b.
func (m *Mouse) ButtonUp(b input.MouseButton) error {
	if err := checkButton(b); err != nil {
		return err
	}
	return m.sim.send("ButtonUp", m.sim.newBuilder().AddMouseButtonUp(b))
}

// ButtonClick presses and releases b.
func (m *Mouse) ButtonClick(b input.MouseButton) error {
	if err := checkButton(b); err != nil {
		return err
	}
	return m.sim.send("ButtonClick", m.sim.newBuilder().AddMouseButtonClick(b))
}

// ButtonDoubleClick clicks b twice in one batch.
func (m *Mouse) ButtonDoubleClick(b input.MouseButton) error {
	if err := checkButton(b); err != nil {
		return err
	}
	return m.sim.send("ButtonDoubleClick", m.sim.newBuilder().AddMouseButtonDoubleClick(b))
}

// XButtonDown presses the X button with the given id (input.XButton1 or
// input.XButton2).
func (m *Mouse) XButtonDown(id int) error {
	return m.sim.send("XButtonDown", m.sim.newBuilder().AddMouseXButtonDown(id))
}

func (m *Mouse) XButtonUp(id int) error {
	return m.sim.send("XButtonUp", m.sim.newBuilder().AddMouseXButtonUp(id))
}

func (m *Mouse) XButtonClick(id int) error {
	return m.sim.send("XButtonClick", m.sim.newBuilder().AddMouseXButtonClick(id))
}

func (m *Mouse) XButtonDoubleClick(id int) error {
	return m.sim.send("XButtonDoubleClick", m.sim.newBuilder().AddMouseXButtonDoubleClick(id))
}

// VerticalScroll scrolls by clicks notches; positive values scroll away
// from the user.
func (m *Mouse) VerticalScroll(clicks int) error {
	return m.sim.send("VerticalScroll", m.sim.newBuilder().AddMouseVerticalWheelScroll(int32(clicks)*m.WheelClickSize()))
}

// HorizontalScroll scrolls by clicks notches; positive values scroll right.
func (m *Mouse) HorizontalScroll(clicks int) error {
	return m.sim.send("HorizontalScroll", m.sim.newBuilder().AddMouseHorizontalWheelScroll(int32(clicks)*m.WheelClickSize()))
}

// Sleep blocks for d or until ctx is done.
func (m *Mouse) Sleep(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}

func checkButton(b input.MouseButton) error {
	switch b {
	case input.LeftButton, input.MiddleButton, input.RightButton:
		return nil
	}
	return fmt.Errorf("%w: unknown mouse button %d", input.ErrInvalidArgument, int(b))
}
