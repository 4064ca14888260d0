// Package input builds ordered batches of synthetic keyboard and mouse events
// and hands them to the operating system in a single SendInput call.
//
// Records are plain values: a batch is assembled with a Builder, encoded to the
// platform's fixed INPUT layout only at the dispatch boundary, and submitted by
// a Dispatcher.
package input

import (
	"fmt"

	"github.com/Alia5/inputsim/vk"
)

// Kind is the INPUT type discriminator.
type Kind uint32

const (
	KindMouse    Kind = 0
	KindKeyboard Kind = 1
	// KindHardware exists at the OS level but is never produced here.
	KindHardware Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindMouse:
		return "mouse"
	case KindKeyboard:
		return "keyboard"
	case KindHardware:
		return "hardware"
	default:
		return fmt.Sprintf("kind(%d)", uint32(k))
	}
}

// KeyboardFlags are the KEYBDINPUT dwFlags bits.
type KeyboardFlags uint32

const (
	KeyEventExtendedKey KeyboardFlags = 0x0001
	KeyEventKeyUp       KeyboardFlags = 0x0002
	KeyEventUnicode     KeyboardFlags = 0x0004
	KeyEventScanCode    KeyboardFlags = 0x0008
)

// MouseFlags are the MOUSEINPUT dwFlags bits.
type MouseFlags uint32

const (
	MouseEventMove           MouseFlags = 0x0001
	MouseEventLeftDown       MouseFlags = 0x0002
	MouseEventLeftUp         MouseFlags = 0x0004
	MouseEventRightDown      MouseFlags = 0x0008
	MouseEventRightUp        MouseFlags = 0x0010
	MouseEventMiddleDown     MouseFlags = 0x0020
	MouseEventMiddleUp       MouseFlags = 0x0040
	MouseEventXDown          MouseFlags = 0x0080
	MouseEventXUp            MouseFlags = 0x0100
	MouseEventWheel          MouseFlags = 0x0800
	MouseEventHWheel         MouseFlags = 0x1000
	MouseEventMoveNoCoalesce MouseFlags = 0x2000
	MouseEventVirtualDesk    MouseFlags = 0x4000
	MouseEventAbsolute       MouseFlags = 0x8000
)

// Record is one event of a batch. It is implemented only by KeyboardInput and
// MouseInput.
type Record interface {
	Kind() Kind
	String() string
	isRecord()
}

// KeyboardInput mirrors KEYBDINPUT. Time and ExtraInfo are left at zero so the
// OS stamps the event itself.
type KeyboardInput struct {
	VirtualKey vk.Code
	ScanCode   uint16
	Flags      KeyboardFlags
	Time       uint32
	ExtraInfo  uint64
}

func (KeyboardInput) Kind() Kind { return KindKeyboard }
func (KeyboardInput) isRecord()  {}

// KeyUp reports whether the record releases its key.
func (k KeyboardInput) KeyUp() bool { return k.Flags&KeyEventKeyUp != 0 }

func (k KeyboardInput) String() string {
	dir := "down"
	if k.KeyUp() {
		dir = "up"
	}
	if k.Flags&KeyEventUnicode != 0 {
		return fmt.Sprintf("keyboard %s unicode=U+%04X flags=0x%04X", dir, k.ScanCode, uint32(k.Flags))
	}
	return fmt.Sprintf("keyboard %s vk=%s scan=0x%02X flags=0x%04X", dir, k.VirtualKey, k.ScanCode, uint32(k.Flags))
}

// MouseInput mirrors MOUSEINPUT. Data carries the wheel delta or the X button
// id, depending on Flags.
type MouseInput struct {
	DX        int32
	DY        int32
	Data      int32
	Flags     MouseFlags
	Time      uint32
	ExtraInfo uint64
}

func (MouseInput) Kind() Kind { return KindMouse }
func (MouseInput) isRecord()  {}

func (m MouseInput) String() string {
	return fmt.Sprintf("mouse dx=%d dy=%d data=%d flags=0x%04X", m.DX, m.DY, m.Data, uint32(m.Flags))
}
