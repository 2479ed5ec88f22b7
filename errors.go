package humandur

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDuration matches every error returned by Parse and its wrappers.
	ErrInvalidDuration = errors.New("invalid duration")
	// ErrOverflow reports a value that does not fit the target representation.
	ErrOverflow = errors.New("duration overflow")
	// ErrNegative reports a negative input; durations are never negative.
	ErrNegative = errors.New("negative duration")
)

// InvalidDurationError is returned when input matches neither the rich
// format nor a bare count of the fallback unit.
type InvalidDurationError struct {
	Input string
	Unit  Unit
	// Err is the underlying cause, if any (for example ErrOverflow).
	Err error
}

func (e *InvalidDurationError) Error() string {
	msg := fmt.Sprintf("invalid duration '%s' with unit '%s'", e.Input, e.Unit)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidDurationError) Is(target error) bool {
	return target == ErrInvalidDuration
}

func (e *InvalidDurationError) Unwrap() error {
	return e.Err
}
