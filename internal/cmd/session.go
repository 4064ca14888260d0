package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/inputsim/input"
	"github.com/Alia5/inputsim/internal/config"
	"github.com/Alia5/inputsim/internal/log"
	"github.com/Alia5/inputsim/simulator"
)

// Session carries what gesture commands need at run time.
type Session struct {
	Ctx context.Context
	Sim *simulator.Simulator
	Opt config.Input
	Out io.Writer

	// Screen reports the virtual screen for pixel based moves.
	Screen func() (simulator.Rect, error)
}

// NewSession wires a Simulator according to opts. In dry-run mode batches go
// to a Recorder and every record is logged at info.
func NewSession(ctx context.Context, opts config.Input, logger *slog.Logger, raw log.RawLogger) *Session {
	trace := func(batch []byte) { raw.LogBatch(batch, input.NativeLayout.RecordSize()) }

	var d input.Dispatcher
	if opts.DryRun {
		rec := input.NewRecorder()
		rec.Trace = trace
		d = &dryRun{rec: rec, logger: logger}
	} else {
		d = input.NewSystemDispatcher(
			input.WithDispatchLogger(logger),
			input.WithTrace(trace),
		)
	}

	sim := simulator.New(d,
		simulator.WithLogger(logger),
		simulator.WithWheelClickSize(opts.WheelClickSize),
	)
	return &Session{
		Ctx:    ctx,
		Sim:    sim,
		Opt:    opts,
		Out:    os.Stdout,
		Screen: simulator.VirtualScreen,
	}
}

// wait applies the configured start delay.
func (s *Session) wait(logger *slog.Logger) error {
	if s.Opt.Delay <= 0 {
		return nil
	}
	logger.Info("waiting before sending input", "delay", s.Opt.Delay)
	return s.Sim.Keyboard().Sleep(s.Ctx, s.Opt.Delay)
}

// dryRun records batches and logs them instead of sending.
type dryRun struct {
	rec    *input.Recorder
	logger *slog.Logger
}

func (d *dryRun) Dispatch(records []input.Record) error {
	if err := d.rec.Dispatch(records); err != nil {
		return err
	}
	for i, r := range records {
		d.logger.Info("dry run", "index", i, "record", r.String())
	}
	return nil
}
