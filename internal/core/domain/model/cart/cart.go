package cart

import (
	"errors"
	"fmt"

	"foodorder/internal/core/domain/model/menu"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not created
	// through the NewCart factory method.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart constructor")
)

// Cart is the mutable, pre-placement collection of selected items for the
// active session. It maintains insertion order of lines and merges repeated
// adds of the same item by summing quantities.
//
// Cart invariants:
//   - Every line has quantity >= 1; a zero-quantity line never exists
//   - One line per item name; repeated adds accumulate quantity
//   - The unit price of a line is the price captured on first add
//
// Cart is not safe for concurrent mutation; the application layer serializes
// access to the active session's cart.
type Cart struct {
	lines []Line
	index map[string]int

	isConstructed bool
}

// NewCart creates an empty cart for a new session.
func NewCart() *Cart {
	return &Cart{
		lines:         make([]Line, 0),
		index:         make(map[string]int),
		isConstructed: true,
	}
}

// RestoreCart reconstructs a cart from persisted lines, preserving their order.
// Used by cart repository implementations.
func RestoreCart(lines []Line) (*Cart, error) {
	c := NewCart()
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.index[line.ItemName()]; exists {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"lines",
				fmt.Errorf("duplicate line for item %q", line.ItemName()),
			)
		}
		c.index[line.ItemName()] = len(c.lines)
		c.lines = append(c.lines, line)
	}

	return c, nil
}

// Validate ensures the Cart instance was properly constructed through NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}

	return nil
}

// AddItem adds quantity units of a catalog item to the cart.
//
// Business rules:
//   - quantity must be at least 1, otherwise ErrQuantityIsInvalid (wrapped)
//   - if a line for the item already exists, quantities sum and the
//     originally captured unit price is kept
//   - otherwise a new line is appended at the item's current catalog price
func (c *Cart) AddItem(item menu.Item, quantity int) error {
	if err := item.Validate(); err != nil {
		return err
	}

	if quantity < minLineQuantity {
		return NewQuantityIsInvalidError(quantity)
	}

	if pos, exists := c.index[item.Name()]; exists {
		merged, err := c.lines[pos].addQuantity(quantity)
		if err != nil {
			return err
		}
		c.lines[pos] = merged
		return nil
	}

	line, err := NewLine(item.Name(), item.UnitPrice(), quantity)
	if err != nil {
		return err
	}

	c.index[item.Name()] = len(c.lines)
	c.lines = append(c.lines, line)
	return nil
}

// Lines returns a read-only snapshot of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	snapshot := make([]Line, len(c.lines))
	copy(snapshot, c.lines)
	return snapshot
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear removes all lines. Called after a successful order placement.
func (c *Cart) Clear() {
	c.lines = c.lines[:0]
	clear(c.index)
}
