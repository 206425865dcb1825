package domain

import (
	"fmt"
)

// BoundedAmount is an immutable non-negative quantity with a floor of zero.
// The value field is never written after construction; Reduce returns a new
// instance instead of mutating the receiver.
type BoundedAmount struct {
	value int64
}

// NewBoundedAmount constructs a BoundedAmount. It fails with an error
// matching ErrInvalidArgument when value is negative.
func NewBoundedAmount(value int64) (BoundedAmount, error) {
	if value < 0 {
		return BoundedAmount{}, invalidArgument("bounded amount", value, "must not be negative")
	}
	return BoundedAmount{value: value}, nil
}

// MustBoundedAmount is like NewBoundedAmount but panics on invalid input.
// Intended for fixtures and values known valid at compile time.
func MustBoundedAmount(value int64) BoundedAmount {
	b, err := NewBoundedAmount(value)
	if err != nil {
		panic(err)
	}
	return b
}

// Value returns the current quantity.
func (b BoundedAmount) Value() int64 {
	return b.value
}

// Reduce returns a new BoundedAmount holding max(0, Value()-amount). The
// magnitude may be zero or negative; a negative magnitude increases the
// value at the caller's discretion. Reduce never fails: the clamp guarantees
// the result satisfies the non-negativity invariant.
func (b BoundedAmount) Reduce(amount int64) BoundedAmount {
	next := b.value - amount
	if next < 0 {
		next = 0
	}
	// The clamp makes validation a formality, but all derivations route
	// through the single construction point.
	return MustBoundedAmount(next)
}

// IsZero reports whether the quantity sits at the floor.
func (b BoundedAmount) IsZero() bool {
	return b.value == 0
}

// Equal reports value equality. Two instances with the same value are
// interchangeable regardless of how they were derived.
func (b BoundedAmount) Equal(other BoundedAmount) bool {
	return b.value == other.value
}

func (b BoundedAmount) String() string {
	return fmt.Sprintf("%d", b.value)
}
