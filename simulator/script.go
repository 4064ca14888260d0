package simulator

import (
	"context"
	"time"

	"github.com/Alia5/inputsim/input"
	"github.com/Alia5/inputsim/vk"
)

// Script chains gestures and stops at the first failure:
//
//	err := sim.Script(ctx).
//		ModifiedKeyStroke([]vk.Code{vk.LWin}, []vk.Code{vk.R}).
//		Sleep(time.Second).
//		TextEntry("notepad").
//		KeyPress(vk.Return).
//		Err()
//
// Each step is still dispatched on its own. A Script is not safe for
// concurrent use.
type Script struct {
	ctx context.Context
	sim *Simulator
	err error
}

// Script starts a chain bound to ctx. Steps are skipped once ctx is done.
func (s *Simulator) Script(ctx context.Context) *Script {
	return &Script{ctx: ctx, sim: s}
}

func (sc *Script) do(step func() error) *Script {
	if sc.err != nil {
		return sc
	}
	if err := sc.ctx.Err(); err != nil {
		sc.err = err
		return sc
	}
	sc.err = step()
	return sc
}

// Err returns the first error encountered, if any.
func (sc *Script) Err() error { return sc.err }

func (sc *Script) KeyDown(key vk.Code) *Script {
	return sc.do(func() error { return sc.sim.keyboard.KeyDown(key) })
}

func (sc *Script) KeyUp(key vk.Code) *Script {
	return sc.do(func() error { return sc.sim.keyboard.KeyUp(key) })
}

func (sc *Script) KeyPress(keys ...vk.Code) *Script {
	return sc.do(func() error { return sc.sim.keyboard.KeyPress(keys...) })
}

func (sc *Script) ModifiedKeyStroke(modifiers, keys []vk.Code) *Script {
	return sc.do(func() error { return sc.sim.keyboard.ModifiedKeyStroke(modifiers, keys) })
}

func (sc *Script) TextEntry(text string) *Script {
	return sc.do(func() error { return sc.sim.keyboard.TextEntry(text) })
}

func (sc *Script) CharEntry(ch rune) *Script {
	return sc.do(func() error { return sc.sim.keyboard.CharEntry(ch) })
}

func (sc *Script) MoveBy(dx, dy int) *Script {
	return sc.do(func() error { return sc.sim.mouse.MoveBy(dx, dy) })
}

func (sc *Script) MoveTo(x, y float64) *Script {
	return sc.do(func() error { return sc.sim.mouse.MoveTo(x, y) })
}

func (sc *Script) MoveToPositionOnVirtualDesktop(x, y float64) *Script {
	return sc.do(func() error { return sc.sim.mouse.MoveToPositionOnVirtualDesktop(x, y) })
}

func (sc *Script) ButtonDown(b input.MouseButton) *Script {
	return sc.do(func() error { return sc.sim.mouse.ButtonDown(b) })
}

func (sc *Script) ButtonUp(b input.MouseButton) *Script {
	return sc.do(func() error { return sc.sim.mouse.ButtonUp(b) })
}

func (sc *Script) ButtonClick(b input.MouseButton) *Script {
	return sc.do(func() error { return sc.sim.mouse.ButtonClick(b) })
}

func (sc *Script) ButtonDoubleClick(b input.MouseButton) *Script {
	return sc.do(func() error { return sc.sim.mouse.ButtonDoubleClick(b) })
}

func (sc *Script) XButtonClick(id int) *Script {
	return sc.do(func() error { return sc.sim.mouse.XButtonClick(id) })
}

func (sc *Script) VerticalScroll(clicks int) *Script {
	return sc.do(func() error { return sc.sim.mouse.VerticalScroll(clicks) })
}

func (sc *Script) HorizontalScroll(clicks int) *Script {
	return sc.do(func() error { return sc.sim.mouse.HorizontalScroll(clicks) })
}

// Sleep pauses the chain for d.
func (sc *Script) Sleep(d time.Duration) *Script {
	return sc.do(func() error { return sleep(sc.ctx, d) })
}
