// Package simulator exposes keyboard and mouse facades over an input
// dispatcher. Every gesture builds one ordered batch of records and submits
// it with a single Dispatch call.
package simulator

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/Alia5/inputsim/input"
)

// DefaultWheelClickSize is the wheel delta of one notch.
const DefaultWheelClickSize int32 = 120

// Option configures a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger used for gesture diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Simulator) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithScanCodes overrides the virtual key to scan code mapping.
func WithScanCodes(scan input.ScanCodeMapper) Option {
	return func(s *Simulator) { s.scan = scan }
}

// WithWheelClickSize sets the initial wheel delta per scroll click.
func WithWheelClickSize(size int32) Option {
	return func(s *Simulator) { s.mouse.wheelClickSize.Store(size) }
}

// WithKeyState replaces the device state reader.
func WithKeyState(state KeyState) Option {
	return func(s *Simulator) {
		if state != nil {
			s.keyState = state
		}
	}
}

// Simulator bundles the keyboard and mouse facades sharing one dispatcher.
type Simulator struct {
	dispatcher input.Dispatcher
	logger     *slog.Logger
	scan       input.ScanCodeMapper
	keyState   KeyState

	keyboard *Keyboard
	mouse    *Mouse
}

// New returns a Simulator submitting through d. A nil dispatcher selects the
// system dispatcher.
func New(d input.Dispatcher, opts ...Option) *Simulator {
	s := &Simulator{
		dispatcher: d,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		keyState:   SystemKeyState(),
	}
	s.keyboard = &Keyboard{sim: s, maxText: MaxTextLength}
	s.mouse = &Mouse{sim: s}
	s.mouse.wheelClickSize.Store(DefaultWheelClickSize)

	for _, opt := range opts {
		opt(s)
	}
	if s.dispatcher == nil {
		s.dispatcher = input.NewSystemDispatcher(input.WithDispatchLogger(s.logger))
	}
	return s
}

// Keyboard returns the keyboard facade.
func (s *Simulator) Keyboard() *Keyboard { return s.keyboard }

// Mouse returns the mouse facade.
func (s *Simulator) Mouse() *Mouse { return s.mouse }

// KeyState returns the device state reader.
func (s *Simulator) KeyState() KeyState { return s.keyState }

func (s *Simulator) newBuilder() *input.Builder {
	return input.NewBuilder(s.scan)
}

// send dispatches the batch accumulated in b as a single gesture.
func (s *Simulator) send(gesture string, b *input.Builder) error {
	records := b.Records()
	s.logger.Debug("dispatching gesture", "gesture", gesture, "records", len(records))
	if err := s.dispatcher.Dispatch(records); err != nil {
		return fmt.Errorf("%s: %w", gesture, err)
	}
	return nil
}
