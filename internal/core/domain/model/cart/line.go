package cart

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

// minLineQuantity is the smallest quantity a cart line may carry.
// Lines below it are rejected at the boundary, never stored.
const minLineQuantity = 1

// ErrLineIsNotConstructed is returned when a Line was not created via NewLine.
var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// ErrQuantityIsInvalid is the unwrap target for quantity validation failures.
// Callers classify rejected add-to-cart requests with errors.Is.
var ErrQuantityIsInvalid = errors.New("quantity must be at least 1")

// NewQuantityIsInvalidError builds the rejection error for an out-of-range
// add-to-cart quantity. The error unwraps to ErrQuantityIsInvalid.
func NewQuantityIsInvalidError(quantity int) error {
	return fmt.Errorf("%w: got %d", ErrQuantityIsInvalid, quantity)
}

// Line is an immutable cart line: an item reference with the unit price
// captured at add time and an accumulated quantity.
type Line struct {
	itemName  string
	unitPrice kernel.Money
	quantity  int

	isConstructed bool
}

// NewLine creates a cart line. The item name must be non-empty and the
// quantity at least 1.
func NewLine(itemName string, unitPrice kernel.Money, quantity int) (Line, error) {
	if itemName == "" {
		return Line{}, errs.NewValueIsRequiredError("itemName")
	}
	if quantity < minLineQuantity {
		return Line{}, NewQuantityIsInvalidError(quantity)
	}

	return Line{
		itemName:      itemName,
		unitPrice:     unitPrice,
		quantity:      quantity,
		isConstructed: true,
	}, nil
}

// Validate ensures the line was created through the constructor.
func (l Line) Validate() error {
	if !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ItemName returns the item name identifying this line.
func (l Line) ItemName() string {
	return l.itemName
}

// UnitPrice returns the price captured when the item was first added.
func (l Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the accumulated quantity.
func (l Line) Quantity() int {
	return l.quantity
}

// Total returns unit price multiplied by quantity.
func (l Line) Total() (kernel.Money, error) {
	return l.unitPrice.MultiplyQty(l.quantity)
}

// addQuantity returns a copy of the line with the quantity increased,
// keeping the originally captured unit price.
func (l Line) addQuantity(quantity int) (Line, error) {
	if quantity < minLineQuantity {
		return Line{}, NewQuantityIsInvalidError(quantity)
	}

	merged := l
	merged.quantity += quantity
	return merged, nil
}
