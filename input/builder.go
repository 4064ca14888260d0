package input

import (
	"unicode/utf16"

	"github.com/Alia5/inputsim/vk"
)

// ScanCodeMapper translates a virtual key into the hardware scan code for the
// active keyboard layout.
type ScanCodeMapper func(k vk.Code) uint16

// Builder accumulates an ordered batch of records. Every Add method appends
// and returns the same Builder so calls can be chained:
//
//	records := input.NewBuilder(nil).
//		AddKeyDown(vk.Control).
//		AddKeyPress(vk.C).
//		AddKeyUp(vk.Control).
//		Records()
//
// A Builder is not safe for concurrent use.
type Builder struct {
	records []Record
	scan    ScanCodeMapper
}

// NewBuilder returns an empty Builder. A nil mapper selects SystemScanCodes.
func NewBuilder(scan ScanCodeMapper) *Builder {
	if scan == nil {
		scan = SystemScanCodes
	}
	return &Builder{scan: scan}
}

// Len returns the number of records appended so far.
func (b *Builder) Len() int { return len(b.records) }

// Records returns a copy of the accumulated batch.
func (b *Builder) Records() []Record {
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

// Reset drops all records, keeping the scan code mapper.
func (b *Builder) Reset() *Builder {
	b.records = b.records[:0]
	return b
}

func (b *Builder) add(r Record) *Builder {
	b.records = append(b.records, r)
	return b
}

func (b *Builder) key(k vk.Code, up bool) KeyboardInput {
	var flags KeyboardFlags
	if up {
		flags |= KeyEventKeyUp
	}
	if vk.IsExtended(k) {
		flags |= KeyEventExtendedKey
	}
	return KeyboardInput{
		VirtualKey: k,
		ScanCode:   b.scan(k),
		Flags:      flags,
	}
}

// AddKeyDown appends a key press for k.
func (b *Builder) AddKeyDown(k vk.Code) *Builder {
	return b.add(b.key(k, false))
}

// AddKeyUp appends a key release for k.
func (b *Builder) AddKeyUp(k vk.Code) *Builder {
	return b.add(b.key(k, true))
}

// AddKeyPress appends a key down followed by a key up.
func (b *Builder) AddKeyPress(k vk.Code) *Builder {
	return b.AddKeyDown(k).AddKeyUp(k)
}

// AddCharacter appends a unicode down/up pair for a single UTF-16 code unit.
// Code units whose high byte is 0xE0 also carry the extended-key flag, as the
// OS interprets that prefix byte as an extended scan code.
func (b *Builder) AddCharacter(ch uint16) *Builder {
	flags := KeyEventUnicode
	if ch&0xFF00 == 0xE000 {
		flags |= KeyEventExtendedKey
	}
	b.add(KeyboardInput{ScanCode: ch, Flags: flags})
	return b.add(KeyboardInput{ScanCode: ch, Flags: flags | KeyEventKeyUp})
}

// AddRunes appends every UTF-16 code unit of runes in order. Characters
// outside the BMP become two surrogate pairs.
func (b *Builder) AddRunes(runes []rune) *Builder {
	for _, unit := range utf16.Encode(runes) {
		b.AddCharacter(unit)
	}
	return b
}

// AddCharacters appends every UTF-16 code unit of s in order.
func (b *Builder) AddCharacters(s string) *Builder {
	return b.AddRunes([]rune(s))
}

// AddRelativeMouseMovement moves the pointer by (dx, dy) from its current
// position.
func (b *Builder) AddRelativeMouseMovement(dx, dy int32) *Builder {
	return b.add(MouseInput{DX: dx, DY: dy, Flags: MouseEventMove})
}

// AddAbsoluteMouseMovement moves the pointer to (x, y) on the primary monitor,
// in normalized 0-65535 coordinates.
func (b *Builder) AddAbsoluteMouseMovement(x, y int32) *Builder {
	return b.add(MouseInput{DX: x, DY: y, Flags: MouseEventMove | MouseEventAbsolute})
}

// AddAbsoluteMouseMovementOnVirtualDesktop moves the pointer to (x, y) on the
// whole virtual desktop, in normalized 0-65535 coordinates.
func (b *Builder) AddAbsoluteMouseMovementOnVirtualDesktop(x, y int32) *Builder {
	return b.add(MouseInput{DX: x, DY: y, Flags: MouseEventMove | MouseEventAbsolute | MouseEventVirtualDesk})
}

// AddMouseButtonDown appends a press of button.
func (b *Builder) AddMouseButtonDown(button MouseButton) *Builder {
	return b.add(MouseInput{Flags: buttonDownFlag(button)})
}

// AddMouseButtonUp appends a release of button.
func (b *Builder) AddMouseButtonUp(button MouseButton) *Builder {
	return b.add(MouseInput{Flags: buttonUpFlag(button)})
}

// AddMouseXButtonDown appends a press of the X button with the given id.
func (b *Builder) AddMouseXButtonDown(id int) *Builder {
	return b.add(MouseInput{Data: int32(id), Flags: MouseEventXDown})
}

// AddMouseXButtonUp appends a release of the X button with the given id.
func (b *Builder) AddMouseXButtonUp(id int) *Builder {
	return b.add(MouseInput{Data: int32(id), Flags: MouseEventXUp})
}

// AddMouseButtonClick appends a press and release of button.
func (b *Builder) AddMouseButtonClick(button MouseButton) *Builder {
	return b.AddMouseButtonDown(button).AddMouseButtonUp(button)
}

// AddMouseXButtonClick appends a press and release of X button id.
func (b *Builder) AddMouseXButtonClick(id int) *Builder {
	return b.AddMouseXButtonDown(id).AddMouseXButtonUp(id)
}

// AddMouseButtonDoubleClick appends two back-to-back clicks. No double-click
// timing is involved; the OS decides based on its own threshold.
func (b *Builder) AddMouseButtonDoubleClick(button MouseButton) *Builder {
	return b.AddMouseButtonClick(button).AddMouseButtonClick(button)
}

// AddMouseXButtonDoubleClick appends two back-to-back clicks of X button id.
func (b *Builder) AddMouseXButtonDoubleClick(id int) *Builder {
	return b.AddMouseXButtonClick(id).AddMouseXButtonClick(id)
}

// AddMouseVerticalWheelScroll scrolls the vertical wheel. amount is in wheel
// units, already multiplied by the click size.
func (b *Builder) AddMouseVerticalWheelScroll(amount int32) *Builder {
	return b.add(MouseInput{Data: amount, Flags: MouseEventWheel})
}

// AddMouseHorizontalWheelScroll scrolls the horizontal wheel. amount is in
// wheel units, already multiplied by the click size.
func (b *Builder) AddMouseHorizontalWheelScroll(amount int32) *Builder {
	return b.add(MouseInput{Data: amount, Flags: MouseEventHWheel})
}
