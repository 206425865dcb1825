package domain

import (
	"errors"
	"fmt"
)

// Common domain errors. Callers match them with errors.Is.
var (
	// ErrInvalidArgument reports a raw value that violates a type's
	// construction invariant. Not retryable; the caller must supply a
	// corrected value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrIncompatibleUnit reports an attempt to combine two currency
	// amounts whose units differ. Not retryable; unit compatibility must be
	// established upstream before combination is attempted.
	ErrIncompatibleUnit = errors.New("incompatible currency unit")
)

// ValidationError describes why a constructor rejected its input. It carries
// the offending field and value so callers can build a user-facing message
// without parsing the error string.
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %v: %s", e.Field, e.Value, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidArgument
}

// UnitMismatchError reports the two units involved in a rejected combination.
type UnitMismatchError struct {
	Left  string
	Right string
}

func (e *UnitMismatchError) Error() string {
	return fmt.Sprintf("incompatible currency unit: %s vs %s", e.Left, e.Right)
}

func (e *UnitMismatchError) Unwrap() error {
	return ErrIncompatibleUnit
}

// invalidArgument is the shared construction-time validation failure used by
// every constructor in this package.
func invalidArgument(field string, value any, reason string) error {
	return &ValidationError{Field: field, Value: value, Reason: reason}
}
