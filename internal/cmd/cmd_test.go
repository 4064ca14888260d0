package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Alia5/inputsim/input"
	"github.com/Alia5/inputsim/internal/config"
	"github.com/Alia5/inputsim/internal/log"
	"github.com/Alia5/inputsim/simulator"
	"github.com/Alia5/inputsim/vk"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
}

func newTestSession(t *testing.T, opts ...simulator.Option) (*Session, *input.Recorder, *bytes.Buffer) {
	t.Helper()
	rec := input.NewRecorder()
	out := &bytes.Buffer{}
	opts = append([]simulator.Option{simulator.WithScanCodes(func(vk.Code) uint16 { return 0 })}, opts...)
	s := &Session{
		Ctx: context.Background(),
		Sim: simulator.New(rec, opts...),
		Out: out,
	}
	s.Screen = func() (simulator.Rect, error) {
		return simulator.Rect{Width: 1921, Height: 1081}, nil
	}
	return s, rec, out
}

func keyboardRecords(t *testing.T, records []input.Record) []input.KeyboardInput {
	t.Helper()
	out := make([]input.KeyboardInput, 0, len(records))
	for _, r := range records {
		ki, ok := r.(input.KeyboardInput)
		require.True(t, ok, "got %T", r)
		out = append(out, ki)
	}
	return out
}

func mouseRecords(t *testing.T, records []input.Record) []input.MouseInput {
	t.Helper()
	out := make([]input.MouseInput, 0, len(records))
	for _, r := range records {
		mi, ok := r.(input.MouseInput)
		require.True(t, ok, "got %T", r)
		out = append(out, mi)
	}
	return out
}

func TestKeyCommand(t *testing.T) {
	s, rec, _ := newTestSession(t)

	require.NoError(t, (&Key{Keys: []string{"a", "Enter"}}).Run(s, discardLogger()))
	require.Len(t, rec.Batches(), 1)
	got := keyboardRecords(t, rec.Records())
	require.Len(t, got, 4)
	assert.Equal(t, vk.A, got[0].VirtualKey)
	assert.Equal(t, vk.Return, got[3].VirtualKey)
	assert.True(t, got[3].KeyUp())
}

func TestKeyCommandDownUp(t *testing.T) {
	s, rec, _ := newTestSession(t)

	require.NoError(t, (&Key{Keys: []string{"shift", "a"}, Down: true}).Run(s, discardLogger()))
	require.NoError(t, (&Key{Keys: []string{"a"}, Up: true}).Run(s, discardLogger()))

	got := keyboardRecords(t, rec.Records())
	require.Len(t, got, 3)
	assert.False(t, got[0].KeyUp())
	assert.False(t, got[1].KeyUp())
	assert.True(t, got[2].KeyUp())
}

func TestKeyCommandUnknownKey(t *testing.T) {
	s, rec, _ := newTestSession(t)

	err := (&Key{Keys: []string{"a", "nope"}}).Run(s, discardLogger())
	assert.ErrorIs(t, err, vk.ErrUnknownKey)
	assert.Empty(t, rec.Batches())
}

func TestComboCommand(t *testing.T) {
	s, rec, _ := newTestSession(t)

	require.NoError(t, (&Combo{Combos: []string{"ctrl+shift+t", "f5"}}).Run(s, discardLogger()))
	batches := rec.Batches()
	require.Len(t, batches, 2)

	first := keyboardRecords(t, batches[0])
	want := []vk.Code{vk.Control, vk.Shift, vk.T, vk.T, vk.Shift, vk.Control}
	require.Len(t, first, len(want))
	for i, k := range want {
		assert.Equal(t, k, first[i].VirtualKey, "record %d", i)
	}
}

func TestComboCommandRejectsBadChordBeforeSending(t *testing.T) {
	s, rec, _ := newTestSession(t)

	err := (&Combo{Combos: []string{"ctrl+c", "ctrl+nope"}}).Run(s, discardLogger())
	assert.ErrorIs(t, err, vk.ErrUnknownKey)
	assert.Empty(t, rec.Batches())
}

func TestTypeCommand(t *testing.T) {
	tests := []struct {
		name    string
		cmd     Type
		want    int
		wantErr error
	}{
		{name: "argument", cmd: Type{Text: "hey"}, want: 6},
		{name: "stdin trims newline", cmd: Type{Stdin: strings.NewReader("hello\r\n")}, want: 10},
		{name: "empty stdin", cmd: Type{Stdin: strings.NewReader("\n")}, wantErr: input.ErrNoInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec, _ := newTestSession(t)
			err := tt.cmd.Run(s, discardLogger())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, rec.Batches())
				return
			}
			require.NoError(t, err)
			assert.Len(t, rec.Records(), tt.want)
		})
	}
}

func TestMoveCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  Move
		want input.MouseInput
	}{
		{
			name: "absolute",
			cmd:  Move{X: 100.9, Y: 200},
			want: input.MouseInput{DX: 100, DY: 200, Flags: input.MouseEventMove | input.MouseEventAbsolute},
		},
		{
			name: "relative",
			cmd:  Move{X: -3, Y: 7, Relative: true},
			want: input.MouseInput{DX: -3, DY: 7, Flags: input.MouseEventMove},
		},
		{
			name: "virtual desk",
			cmd:  Move{X: 1, Y: 2, VirtualDesk: true},
			want: input.MouseInput{DX: 1, DY: 2, Flags: input.MouseEventMove | input.MouseEventAbsolute | input.MouseEventVirtualDesk},
		},
		{
			name: "pixels",
			cmd:  Move{X: 960, Y: 540, Pixels: true},
			want: input.MouseInput{DX: 32767, DY: 32767, Flags: input.MouseEventMove | input.MouseEventAbsolute | input.MouseEventVirtualDesk},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec, _ := newTestSession(t)
			require.NoError(t, tt.cmd.Run(s, discardLogger()))
			got := mouseRecords(t, rec.Records())
			require.Len(t, got, 1)
			assert.Equal(t, tt.want, got[0])
		})
	}
}

func TestMoveCommandScreenError(t *testing.T) {
	s, rec, _ := newTestSession(t)
	s.Screen = func() (simulator.Rect, error) { return simulator.Rect{}, input.ErrUnsupported }

	err := (&Move{X: 1, Y: 1, Pixels: true}).Run(s, discardLogger())
	assert.ErrorIs(t, err, input.ErrUnsupported)
	assert.Empty(t, rec.Batches())
}

func TestClickCommand(t *testing.T) {
	tests := []struct {
		name string
		cmd  Click
		want []input.MouseInput
	}{
		{
			name: "left click",
			cmd:  Click{Button: "left"},
			want: []input.MouseInput{{Flags: input.MouseEventLeftDown}, {Flags: input.MouseEventLeftUp}},
		},
		{
			name: "right double",
			cmd:  Click{Button: "right", Double: true},
			want: []input.MouseInput{
				{Flags: input.MouseEventRightDown}, {Flags: input.MouseEventRightUp},
				{Flags: input.MouseEventRightDown}, {Flags: input.MouseEventRightUp},
			},
		},
		{
			name: "middle down",
			cmd:  Click{Button: "middle", Down: true},
			want: []input.MouseInput{{Flags: input.MouseEventMiddleDown}},
		},
		{
			name: "x button up",
			cmd:  Click{XButton: 2, Up: true},
			want: []input.MouseInput{{Data: 2, Flags: input.MouseEventXUp}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, rec, _ := newTestSession(t)
			require.NoError(t, tt.cmd.Run(s, discardLogger()))
			assert.Equal(t, tt.want, mouseRecords(t, rec.Records()))
		})
	}
}

func TestClickCommandInvalid(t *testing.T) {
	s, rec, _ := newTestSession(t)

	assert.Error(t, (&Click{Button: "left", Double: true, Down: true}).Run(s, discardLogger()))
	assert.ErrorIs(t, (&Click{Button: "left", XButton: 3}).Run(s, discardLogger()), input.ErrInvalidArgument)
	assert.ErrorIs(t, (&Click{Button: "thumb"}).Run(s, discardLogger()), input.ErrInvalidArgument)
	assert.Empty(t, rec.Batches())
}

func TestScrollCommand(t *testing.T) {
	s, rec, _ := newTestSession(t, simulator.WithWheelClickSize(100))

	require.NoError(t, (&Scroll{Clicks: -2}).Run(s, discardLogger()))
	require.NoError(t, (&Scroll{Clicks: 3, Horizontal: true}).Run(s, discardLogger()))

	assert.Equal(t, []input.MouseInput{
		{Data: -200, Flags: input.MouseEventWheel},
		{Data: 300, Flags: input.MouseEventHWheel},
	}, mouseRecords(t, rec.Records()))
}

type stubKeyState struct{}

func (stubKeyState) IsKeyDown(k vk.Code) (bool, error)             { return k == vk.Shift, nil }
func (stubKeyState) IsKeyUp(k vk.Code) (bool, error)               { return k != vk.Shift, nil }
func (stubKeyState) IsHardwareKeyDown(vk.Code) (bool, error)       { return false, nil }
func (stubKeyState) IsHardwareKeyUp(vk.Code) (bool, error)         { return true, nil }
func (stubKeyState) IsTogglingKeyInEffect(k vk.Code) (bool, error) { return k == vk.Capital, nil }

func TestStateCommand(t *testing.T) {
	s, _, out := newTestSession(t, simulator.WithKeyState(stubKeyState{}))

	require.NoError(t, (&State{Key: "shift"}).Run(s))
	require.NoError(t, (&State{Key: "caps"}).Run(s))

	assert.Equal(t,
		"shift (0x10): down=true hardware=false toggled=false\n"+
			"capslock (0x14): down=false hardware=false toggled=true\n",
		out.String())
}

func TestKeysCommand(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Keys{Out: &out}).Run())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, len(vk.Names()))
	assert.Contains(t, out.String(), "ctrl                 0x11\n")
}

func TestDelayHonoursContext(t *testing.T) {
	s, rec, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.Ctx = ctx
	s.Opt.Delay = time.Hour

	err := (&Key{Keys: []string{"a"}}).Run(s, discardLogger())
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.Batches())
}

func TestNewSessionDryRun(t *testing.T) {
	var logs, raw bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))

	s := NewSession(context.Background(), config.Input{DryRun: true, WheelClickSize: 120}, logger, log.NewRaw(&raw))
	require.NoError(t, s.Sim.Keyboard().KeyPress(vk.A))

	assert.Contains(t, logs.String(), "dry run")
	assert.Equal(t, 2, strings.Count(logs.String(), "dry run"))
	assert.Contains(t, raw.String(), "batch: 2 records")
	assert.Equal(t, int32(120), s.Sim.Mouse().WheelClickSize())
}

func TestConfigKey(t *testing.T) {
	typ := reflect.TypeOf(config.Input{})
	f, _ := typ.FieldByName("WheelClickSize")
	assert.Equal(t, "wheel_click_size", configKey(f))
	f, _ = typ.FieldByName("DryRun")
	assert.Equal(t, "dry_run", configKey(f))

	f, _ = reflect.TypeOf(ConfigInit{}).FieldByName("Force")
	assert.Equal(t, "force", configKey(f))
}

func TestConfigInitJSON(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "nested", "inputsim.json")
	c := &ConfigInit{Format: "json", Output: dest}
	require.NoError(t, c.Run(discardLogger()))

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))

	assert.Equal(t, map[string]any{
		"level":    "info",
		"file":     "",
		"raw_file": "",
	}, got["log"])
	assert.Equal(t, false, got["dry_run"])
	assert.Equal(t, float64(120), got["wheel_click_size"])
	assert.Equal(t, "0s", got["delay"])

	err = c.Run(discardLogger())
	assert.ErrorContains(t, err, "--force")

	c.Force = true
	assert.NoError(t, c.Run(discardLogger()))
}

func TestConfigInitOtherFormats(t *testing.T) {
	for _, format := range []string{"yaml", "toml"} {
		t.Run(format, func(t *testing.T) {
			dest := filepath.Join(t.TempDir(), "inputsim."+format)
			require.NoError(t, (&ConfigInit{Format: format, Output: dest}).Run(discardLogger()))

			data, err := os.ReadFile(dest)
			require.NoError(t, err)
			assert.Contains(t, string(data), "wheel_click_size")
			assert.Contains(t, string(data), "raw_file")
		})
	}

	assert.Error(t, (&ConfigInit{Format: "ini", Output: filepath.Join(t.TempDir(), "x")}).Run(discardLogger()))
}
