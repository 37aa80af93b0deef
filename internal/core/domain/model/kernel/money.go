package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Money is a value object representing a non-negative amount of currency,
// stored as integer cents. All billing arithmetic happens on integers so
// subtotal, tax, and total compose without floating point drift.
//
// The zero value is a valid zero amount; Money is immutable and safe for
// concurrent use.
//
// Example:
//
//	price, _ := kernel.NewMoneyFromUnits(250) // 250.00
//	lineTotal, _ := price.MultiplyQty(2)      // 500.00
type Money struct {
	cents int64
}

// NewMoney creates a Money from integer cents.
// Returns an error for negative amounts; the engine has no refund path, so
// negative money never exists.
func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"money",
			fmt.Errorf("%d cents is negative", cents),
		)
	}
	return Money{cents: cents}, nil
}

// NewMoneyFromUnits creates a Money from whole currency units.
// Catalog prices are quoted in whole units.
func NewMoneyFromUnits(units int64) (Money, error) {
	return NewMoney(units * 100)
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Cents returns the amount as integer cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// MultiplyQty returns the amount multiplied by a line quantity.
// Returns an error if qty is negative.
func (m Money) MultiplyQty(qty int) (Money, error) {
	if qty < 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", qty),
		)
	}
	return Money{cents: m.cents * int64(qty)}, nil
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.cents == 0
}

// IsEqual compares two amounts for equality.
func (m Money) IsEqual(other Money) bool {
	return m.cents == other.cents
}

// String formats the amount with two decimal places, e.g. "588.00".
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}
