// Package menu provides the catalog-side value objects for the food ordering
// domain. The catalog itself (vendor -> category -> item -> price) is a
// read-only external collaborator reached through ports.MenuCatalog; this
// package defines the Item value that lookups return.
package menu

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrItemNameIsRequired is returned when an item name is empty.
	ErrItemNameIsRequired = errors.New("item name is required")

	// ErrItemPriceIsInvalid is returned when an item price is not positive.
	ErrItemPriceIsInvalid = errors.New("item price must be greater than 0")
)

// Item is an immutable priced catalog entry. Identity is the item name within
// its vendor and category scope; the price is the unit price captured from the
// catalog at lookup time.
type Item struct {
	name      string
	unitPrice kernel.Money

	guard guard.ConstructorGuard
}

// NewItem creates a catalog item with a non-empty name and a positive unit price.
func NewItem(name string, unitPrice kernel.Money) (Item, error) {
	if name == "" {
		return Item{}, ErrItemNameIsRequired
	}
	if unitPrice.IsZero() {
		return Item{}, ErrItemPriceIsInvalid
	}

	return Item{
		name:      name,
		unitPrice: unitPrice,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the item was created through the constructor.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the item name.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price captured from the catalog.
func (i Item) UnitPrice() kernel.Money {
	return i.unitPrice
}
