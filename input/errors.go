package input

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is the root of every precondition failure. These are
	// reported before any record reaches the OS.
	ErrInvalidArgument = errors.New("invalid argument")

	ErrNilBatch    = fmt.Errorf("%w: input batch is nil", ErrInvalidArgument)
	ErrEmptyBatch  = fmt.Errorf("%w: input batch is empty", ErrInvalidArgument)
	ErrNoInput     = fmt.Errorf("%w: nothing to send", ErrInvalidArgument)
	ErrTextTooLong = fmt.Errorf("%w: text is too long", ErrInvalidArgument)

	// ErrPartialDelivery is matched by a *DeliveryError.
	ErrPartialDelivery = errors.New("simulated input was not fully delivered")

	// ErrUnsupported indicates input injection is not available on this platform.
	ErrUnsupported = errors.New("input injection is only supported on Windows")
)

// DeliveryError reports that the OS accepted fewer records than submitted.
// Some prefix of the batch may already be in the input queue.
type DeliveryError struct {
	Submitted int
	Accepted  int
	// Elevated is the UAC elevation state of the sending process, when known.
	Elevated *bool
	// Err is the OS error reported alongside the short count, if any.
	Err error
}

func (e *DeliveryError) Error() string {
	msg := fmt.Sprintf("%s: %d of %d records accepted; input is usually blocked by User Interface Privilege Isolation "+
		"(a process can only send input to applications of the same or lower integrity level) "+
		"or because the target only accepts accessibility input", ErrPartialDelivery, e.Accepted, e.Submitted)
	if e.Elevated != nil {
		msg += fmt.Sprintf(" (sender elevated: %t)", *e.Elevated)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DeliveryError) Is(target error) bool { return target == ErrPartialDelivery }

func (e *DeliveryError) Unwrap() error { return e.Err }
