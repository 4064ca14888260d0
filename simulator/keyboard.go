package simulator

import (
	"context"
	"fmt"
	"math"
	"time"
	"unicode/utf16"

	"github.com/Alia5/inputsim/input"
	"github.com/Alia5/inputsim/vk"
)

// MaxTextLength is the largest number of UTF-16 code units TextEntry accepts.
const MaxTextLength = math.MaxUint32 / 2

// Keyboard sends keyboard gestures.
type Keyboard struct {
	sim     *Simulator
	maxText int
}

// Mouse returns the mouse facade of the same Simulator.
func (k *Keyboard) Mouse() *Mouse { return k.sim.mouse }

// KeyDown presses key without releasing it.
func (k *Keyboard) KeyDown(key vk.Code) error {
	return k.sim.send("KeyDown", k.sim.newBuilder().AddKeyDown(key))
}

// KeyUp releases key.
func (k *Keyboard) KeyUp(key vk.Code) error {
	return k.sim.send("KeyUp", k.sim.newBuilder().AddKeyUp(key))
}

// KeyPress presses and releases each key in argument order.
func (k *Keyboard) KeyPress(keys ...vk.Code) error {
	if len(keys) == 0 {
		return fmt.Errorf("KeyPress: %w", input.ErrNoInput)
	}
	b := k.sim.newBuilder()
	for _, key := range keys {
		b.AddKeyPress(key)
	}
	return k.sim.send("KeyPress", b)
}

// ModifiedKeyStroke holds modifiers down in order, presses each key in
// order, then releases the modifiers in reverse order.
func (k *Keyboard) ModifiedKeyStroke(modifiers, keys []vk.Code) error {
	if len(modifiers) == 0 && len(keys) == 0 {
		return fmt.Errorf("ModifiedKeyStroke: %w", input.ErrNoInput)
	}
	b := k.sim.newBuilder()
	for _, m := range modifiers {
		b.AddKeyDown(m)
	}
	for _, key := range keys {
		b.AddKeyPress(key)
	}
	for i := len(modifiers) - 1; i >= 0; i-- {
		b.AddKeyUp(modifiers[i])
	}
	return k.sim.send("ModifiedKeyStroke", b)
}

// TextEntry types text as unicode characters.
func (k *Keyboard) TextEntry(text string) error {
	if text == "" {
		return fmt.Errorf("TextEntry: %w", input.ErrNoInput)
	}
	if n := utf16Len(text); n > k.maxText {
		return fmt.Errorf("TextEntry: %w (%d code units, limit %d)", input.ErrTextTooLong, n, k.maxText)
	}
	return k.sim.send("TextEntry", k.sim.newBuilder().AddCharacters(text))
}

// CharEntry types a single character.
func (k *Keyboard) CharEntry(ch rune) error {
	return k.sim.send("CharEntry", k.sim.newBuilder().AddRunes([]rune{ch}))
}

// Sleep blocks for d or until ctx is done.
func (k *Keyboard) Sleep(ctx context.Context, d time.Duration) error {
	return sleep(ctx, d)
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += len(utf16.Encode([]rune{r}))
	}
	return n
}
