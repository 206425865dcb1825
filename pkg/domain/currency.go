package domain

import (
	"fmt"
)

// CurrencyAmount is an immutable quantity tagged with a currency unit. The
// unit is an opaque token; two amounts are compatible only when their units
// are equal, and Add is defined only over compatible pairs. The amount's
// sign is unrestricted.
type CurrencyAmount struct {
	amount int64
	unit   string
}

// NewCurrencyAmount constructs a CurrencyAmount. It fails with an error
// matching ErrInvalidArgument when unit is empty.
func NewCurrencyAmount(amount int64, unit string) (CurrencyAmount, error) {
	if unit == "" {
		return CurrencyAmount{}, invalidArgument("currency unit", unit, "must not be empty")
	}
	return CurrencyAmount{amount: amount, unit: unit}, nil
}

// MustCurrencyAmount is like NewCurrencyAmount but panics on invalid input.
func MustCurrencyAmount(amount int64, unit string) CurrencyAmount {
	c, err := NewCurrencyAmount(amount, unit)
	if err != nil {
		panic(err)
	}
	return c
}

// Amount returns the quantity.
func (c CurrencyAmount) Amount() int64 {
	return c.amount
}

// Unit returns the currency unit token.
func (c CurrencyAmount) Unit() string {
	return c.unit
}

// Compatible reports whether the two amounts carry the same unit and can
// therefore be combined.
func (c CurrencyAmount) Compatible(other CurrencyAmount) bool {
	return c.unit == other.unit
}

// Add returns a new CurrencyAmount holding the sum of both quantities. It
// fails with an error matching ErrIncompatibleUnit when the units differ.
// Neither operand is modified.
func (c CurrencyAmount) Add(other CurrencyAmount) (CurrencyAmount, error) {
	if !c.Compatible(other) {
		return CurrencyAmount{}, &UnitMismatchError{Left: c.unit, Right: other.unit}
	}
	return NewCurrencyAmount(c.amount+other.amount, c.unit)
}

// GreaterThan reports whether c holds a larger quantity than other. Like
// Add, it is defined only over compatible pairs and fails with an error
// matching ErrIncompatibleUnit otherwise.
func (c CurrencyAmount) GreaterThan(other CurrencyAmount) (bool, error) {
	if !c.Compatible(other) {
		return false, &UnitMismatchError{Left: c.unit, Right: other.unit}
	}
	return c.amount > other.amount, nil
}

// Equal reports value equality over both attributes.
func (c CurrencyAmount) Equal(other CurrencyAmount) bool {
	return c.amount == other.amount && c.unit == other.unit
}

func (c CurrencyAmount) String() string {
	return fmt.Sprintf("%d %s", c.amount, c.unit)
}
