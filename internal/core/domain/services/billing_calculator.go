package services

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

const (
	// DefaultTaxRateBasisPoints is the standard tax rate applied to every
	// bill: 500 basis points, i.e. 5%.
	DefaultTaxRateBasisPoints = 500

	// maxTaxRateBasisPoints caps the configurable rate at 100%.
	maxTaxRateBasisPoints = 10000
)

var (
	// ErrCartIsEmpty is returned when a bill is requested for an empty line
	// snapshot. Billing and placement reject empty carts rather than
	// producing a zero-total order.
	ErrCartIsEmpty = errors.New("cart is empty")

	// ErrBillIsNotConstructed is returned when a Bill was not created via the calculator.
	ErrBillIsNotConstructed = errors.New("Bill must be created via BillingCalculator.Calculate")

	// ErrTaxRateIsInvalid is returned for a tax rate outside [0, 10000] basis points.
	ErrTaxRateIsInvalid = errors.New("tax rate must be between 0 and 10000 basis points")
)

// Bill is the immutable result of billing a line snapshot:
// subtotal, tax, and total with total == subtotal + tax exactly.
type Bill struct {
	subtotal kernel.Money
	tax      kernel.Money
	total    kernel.Money

	guard guard.ConstructorGuard
}

// Validate ensures the bill was produced by the calculator.
func (b Bill) Validate() error {
	return b.guard.Validate(ErrBillIsNotConstructed)
}

// Subtotal returns the sum of line totals before tax.
func (b Bill) Subtotal() kernel.Money {
	return b.subtotal
}

// Tax returns the tax amount, rounded half-up to cent precision.
func (b Bill) Tax() kernel.Money {
	return b.tax
}

// Total returns subtotal + tax. The total is derived from the rounded tax
// rather than rounded independently, so the identity holds exactly.
func (b Bill) Total() kernel.Money {
	return b.total
}

// BillingCalculator is a domain service deriving a Bill from cart lines.
// It is a pure calculation with no side effects.
//
// Billing rules:
//   - subtotal = sum of unit price x quantity over all lines
//   - tax = subtotal x rate, rounded half-up at cent precision
//   - total = subtotal + tax
//   - empty line snapshots are rejected with ErrCartIsEmpty
//
// Example usage:
//
//	calc, _ := services.NewBillingCalculator(services.DefaultTaxRateBasisPoints)
//	bill, err := calc.Calculate(activeCart.Lines())
//	if errors.Is(err, services.ErrCartIsEmpty) {
//	    // Nothing to bill yet
//	    return
//	}
type BillingCalculator struct {
	taxRateBasisPoints int64
}

// NewBillingCalculator creates a calculator with the given tax rate in basis
// points (500 = 5%). Returns ErrTaxRateIsInvalid for rates outside [0, 10000].
func NewBillingCalculator(taxRateBasisPoints int) (BillingCalculator, error) {
	if taxRateBasisPoints < 0 || taxRateBasisPoints > maxTaxRateBasisPoints {
		return BillingCalculator{}, fmt.Errorf("%w: got %d", ErrTaxRateIsInvalid, taxRateBasisPoints)
	}

	return BillingCalculator{taxRateBasisPoints: int64(taxRateBasisPoints)}, nil
}

// Calculate derives the bill for a line snapshot.
//
// Returns:
//   - ErrCartIsEmpty if lines is empty
//   - a validation error if any line is malformed
func (c BillingCalculator) Calculate(lines []cart.Line) (Bill, error) {
	if len(lines) == 0 {
		return Bill{}, ErrCartIsEmpty
	}

	subtotal := kernel.Zero()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return Bill{}, err
		}

		lineTotal, err := line.Total()
		if err != nil {
			return Bill{}, err
		}
		subtotal = subtotal.Add(lineTotal)
	}

	tax, err := c.taxFor(subtotal)
	if err != nil {
		return Bill{}, err
	}

	return Bill{
		subtotal: subtotal,
		tax:      tax,
		total:    subtotal.Add(tax),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// taxFor computes subtotal x rate with half-up rounding at cent precision.
// Integer arithmetic only: (cents x rate + 5000) / 10000 rounds halves away
// from zero for the non-negative amounts Money permits.
func (c BillingCalculator) taxFor(subtotal kernel.Money) (kernel.Money, error) {
	taxCents := (subtotal.Cents()*c.taxRateBasisPoints + maxTaxRateBasisPoints/2) / maxTaxRateBasisPoints
	return kernel.NewMoney(taxCents)
}
