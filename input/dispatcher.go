package input

import (
	"fmt"
	"io"
	"log/slog"
)

// Dispatcher submits a finished batch to the OS in one call.
type Dispatcher interface {
	Dispatch(records []Record) error
}

// DispatcherOption configures a SystemDispatcher.
type DispatcherOption func(*SystemDispatcher)

// WithDispatchLogger sets the logger used for delivery diagnostics.
func WithDispatchLogger(logger *slog.Logger) DispatcherOption {
	return func(d *SystemDispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// WithTrace registers a callback receiving every encoded INPUT array right
// before it is submitted.
func WithTrace(fn func(batch []byte)) DispatcherOption {
	return func(d *SystemDispatcher) { d.trace = fn }
}

// SystemDispatcher sends batches through SendInput. On platforms other than
// Windows every valid batch fails with ErrUnsupported.
type SystemDispatcher struct {
	layout Layout
	logger *slog.Logger
	trace  func([]byte)
}

// NewSystemDispatcher returns a dispatcher for the host OS.
func NewSystemDispatcher(opts ...DispatcherOption) *SystemDispatcher {
	d := &SystemDispatcher{
		layout: NativeLayout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Dispatch validates, encodes and submits records. Delivery is reported as
// all-or-nothing: a short count from the OS becomes a *DeliveryError and is
// never retried.
func (d *SystemDispatcher) Dispatch(records []Record) error {
	if err := validateBatch(records); err != nil {
		return err
	}
	buf, err := d.layout.Encode(records)
	if err != nil {
		return err
	}
	if d.trace != nil {
		d.trace(buf)
	}

	accepted, osErr := sendInput(buf, len(records), d.layout.RecordSize())
	if osErr == ErrUnsupported {
		return ErrUnsupported
	}
	if accepted != len(records) {
		derr := &DeliveryError{
			Submitted: len(records),
			Accepted:  accepted,
			Elevated:  processElevated(),
			Err:       osErr,
		}
		d.logger.Warn("input batch partially rejected", "submitted", derr.Submitted, "accepted", derr.Accepted, "error", osErr)
		return derr
	}
	d.logger.Debug("input batch sent", "records", len(records), "bytes", len(buf))
	return nil
}

// validateBatch checks the dispatcher preconditions.
func validateBatch(records []Record) error {
	if records == nil {
		return ErrNilBatch
	}
	if len(records) == 0 {
		return ErrEmptyBatch
	}
	for i, r := range records {
		if r == nil {
			return fmt.Errorf("%w: record %d is nil", ErrInvalidArgument, i)
		}
	}
	return nil
}
