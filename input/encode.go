package input

import (
	"encoding/binary"
	"fmt"
	"math/bits"
)

// Layout describes the in-memory INPUT structure of a target architecture.
//
// INPUT layout (little-endian):
//
//	Offset 0: type (uint32)
//	Offset P: union, aligned to the pointer size P
//
// MOUSEINPUT (union member, the largest one):
//
//	+0 dx (int32), +4 dy (int32), +8 mouseData (uint32), +12 dwFlags (uint32),
//	+16 time (uint32), +align(20) dwExtraInfo (pointer-sized)
//
// KEYBDINPUT:
//
//	+0 wVk (uint16), +2 wScan (uint16), +4 dwFlags (uint32), +8 time (uint32),
//	+align(12) dwExtraInfo (pointer-sized)
//
// This gives 40 bytes per record on 64-bit Windows and 28 bytes on 32-bit.
type Layout struct {
	PointerSize int
}

var (
	Layout32     = Layout{PointerSize: 4}
	Layout64     = Layout{PointerSize: 8}
	NativeLayout = Layout{PointerSize: bits.UintSize / 8}
)

func (l Layout) align(n int) int {
	return (n + l.PointerSize - 1) &^ (l.PointerSize - 1)
}

func (l Layout) unionOffset() int { return l.PointerSize }

func (l Layout) mouseSize() int { return l.align(20) + l.PointerSize }

func (l Layout) keyboardExtraOffset() int { return l.align(12) }

func (l Layout) mouseExtraOffset() int { return l.align(20) }

// RecordSize returns sizeof(INPUT) for the layout.
func (l Layout) RecordSize() int {
	return l.align(l.unionOffset() + l.mouseSize())
}

func (l Layout) putPointer(b []byte, v uint64) {
	if l.PointerSize == 8 {
		binary.LittleEndian.PutUint64(b, v)
		return
	}
	binary.LittleEndian.PutUint32(b, uint32(v))
}

// AppendRecord appends the encoded form of r to dst.
func (l Layout) AppendRecord(dst []byte, r Record) ([]byte, error) {
	if l.PointerSize != 4 && l.PointerSize != 8 {
		return dst, fmt.Errorf("%w: unsupported pointer size %d", ErrInvalidArgument, l.PointerSize)
	}
	start := len(dst)
	dst = append(dst, make([]byte, l.RecordSize())...)
	b := dst[start:]
	u := b[l.unionOffset():]

	switch rec := r.(type) {
	case KeyboardInput:
		binary.LittleEndian.PutUint32(b[0:4], uint32(KindKeyboard))
		binary.LittleEndian.PutUint16(u[0:2], uint16(rec.VirtualKey))
		binary.LittleEndian.PutUint16(u[2:4], rec.ScanCode)
		binary.LittleEndian.PutUint32(u[4:8], uint32(rec.Flags))
		binary.LittleEndian.PutUint32(u[8:12], rec.Time)
		l.putPointer(u[l.keyboardExtraOffset():], rec.ExtraInfo)
	case MouseInput:
		binary.LittleEndian.PutUint32(b[0:4], uint32(KindMouse))
		binary.LittleEndian.PutUint32(u[0:4], uint32(rec.DX))
		binary.LittleEndian.PutUint32(u[4:8], uint32(rec.DY))
		binary.LittleEndian.PutUint32(u[8:12], uint32(rec.Data))
		binary.LittleEndian.PutUint32(u[12:16], uint32(rec.Flags))
		binary.LittleEndian.PutUint32(u[16:20], rec.Time)
		l.putPointer(u[l.mouseExtraOffset():], rec.ExtraInfo)
	case nil:
		return dst[:start], fmt.Errorf("%w: nil record", ErrInvalidArgument)
	default:
		return dst[:start], fmt.Errorf("%w: unsupported record %T", ErrInvalidArgument, r)
	}
	return dst, nil
}

// Encode returns the contiguous INPUT array for records.
func (l Layout) Encode(records []Record) ([]byte, error) {
	buf := make([]byte, 0, len(records)*l.RecordSize())
	for i, r := range records {
		var err error
		buf, err = l.AppendRecord(buf, r)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return buf, nil
}
