package pinmap

import (
	"fmt"

	"github.com/pkg/errors"
)

// An UnmappedPinError is returned when a pin identifier does not name one of the GPIO contacts
// of the header in the requested scheme.
type UnmappedPinError struct {
	Scheme Scheme
	Value  int
}

// NewUnmappedPinError returns an UnmappedPinError for value in the given scheme.
func NewUnmappedPinError(s Scheme, value int) error {
	return UnmappedPinError{Scheme: s, Value: value}
}

func (e UnmappedPinError) Error() string {
	msg := fmt.Sprintf("%s pin %d is not a GPIO pin", e.Scheme, e.Value)
	if e.Scheme == Physical && e.Value >= 0 && e.Value <= HeaderSize {
		if p, ok := powerPins[PhysicalPin(e.Value)]; ok {
			msg += fmt.Sprintf(" (%s)", p.Name())
		}
	}
	return msg
}

// IsUnmappedPinError returns whether the error, or any error it wraps, is an UnmappedPinError.
func IsUnmappedPinError(err error) bool {
	var unmapped UnmappedPinError
	return errors.As(err, &unmapped)
}
