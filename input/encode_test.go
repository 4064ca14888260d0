package input_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputsim/input"
	"github.com/Alia5/inputsim/vk"
)

func TestRecordSize(t *testing.T) {
	assert.Equal(t, 40, input.Layout64.RecordSize())
	assert.Equal(t, 28, input.Layout32.RecordSize())
}

func TestEncodeKeyboard(t *testing.T) {
	rec := input.KeyboardInput{
		VirtualKey: vk.RControl,
		ScanCode:   0x1D,
		Flags:      input.KeyEventKeyUp | input.KeyEventExtendedKey,
	}

	tests := []struct {
		name   string
		layout input.Layout
		want   []byte
	}{
		{
			name:   "64-bit",
			layout: input.Layout64,
			want: []byte{
				0x01, 0x00, 0x00, 0x00, // type
				0x00, 0x00, 0x00, 0x00, // padding
				0xA3, 0x00, // wVk
				0x1D, 0x00, // wScan
				0x03, 0x00, 0x00, 0x00, // dwFlags
				0x00, 0x00, 0x00, 0x00, // time
				0x00, 0x00, 0x00, 0x00, // padding
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // dwExtraInfo
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // union tail
			},
		},
		{
			name:   "32-bit",
			layout: input.Layout32,
			want: []byte{
				0x01, 0x00, 0x00, 0x00, // type
				0xA3, 0x00, // wVk
				0x1D, 0x00, // wScan
				0x03, 0x00, 0x00, 0x00, // dwFlags
				0x00, 0x00, 0x00, 0x00, // time
				0x00, 0x00, 0x00, 0x00, // dwExtraInfo
				0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, // union tail
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.layout.Encode([]input.Record{rec})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEncodeMouse(t *testing.T) {
	rec := input.MouseInput{DX: -1, DY: 65535, Data: -120, Flags: input.MouseEventWheel}

	got, err := input.Layout64.Encode([]input.Record{rec})
	require.NoError(t, err)
	require.Len(t, got, 40)

	assert.Equal(t, uint32(input.KindMouse), binary.LittleEndian.Uint32(got[0:4]))
	assert.Equal(t, int32(-1), int32(binary.LittleEndian.Uint32(got[8:12])))
	assert.Equal(t, int32(65535), int32(binary.LittleEndian.Uint32(got[12:16])))
	assert.Equal(t, int32(-120), int32(binary.LittleEndian.Uint32(got[16:20])))
	assert.Equal(t, uint32(input.MouseEventWheel), binary.LittleEndian.Uint32(got[20:24]))
	assert.Equal(t, make([]byte, 16), got[24:40])
}

func TestEncodeBatchIsContiguous(t *testing.T) {
	records := input.NewBuilder(testScan).
		AddKeyPress(vk.A).
		AddMouseButtonClick(input.LeftButton).
		Records()

	got, err := input.Layout64.Encode(records)
	require.NoError(t, err)
	require.Len(t, got, 4*40)

	kinds := []input.Kind{input.KindKeyboard, input.KindKeyboard, input.KindMouse, input.KindMouse}
	for i, want := range kinds {
		assert.Equal(t, uint32(want), binary.LittleEndian.Uint32(got[i*40:]), "record %d", i)
	}
	assert.Equal(t, uint32(input.MouseEventLeftUp), binary.LittleEndian.Uint32(got[3*40+20:]))
}

func TestEncodeRejectsNilRecord(t *testing.T) {
	_, err := input.Layout64.Encode([]input.Record{input.KeyboardInput{}, nil})
	assert.ErrorIs(t, err, input.ErrInvalidArgument)
}

func TestEncodeRejectsUnknownPointerSize(t *testing.T) {
	_, err := input.Layout{PointerSize: 2}.Encode([]input.Record{input.MouseInput{}})
	assert.ErrorIs(t, err, input.ErrInvalidArgument)
}
