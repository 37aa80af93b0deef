package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/pkg/guard"
)

var (
	ErrAddCartItemCommandIsNotConstructed = errors.New(
		"AddCartItemCommand must be created via NewAddCartItemCommand constructor",
	)
	ErrVendorIsRequired   = errors.New("vendor is required")
	ErrCategoryIsRequired = errors.New("category is required")
	ErrItemNameIsRequired = errors.New("item name is required")
)

// AddCartItemCommand represents a request to add a catalog item to the active
// session's cart. The item is addressed by its vendor, category, and name;
// the current catalog price is captured at add time.
//
// Example:
//
//	cmd, err := NewAddCartItemCommand("Domino's", "Pizza", "Margherita", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid cart request: %w", err)
//	}
//
//	handler := NewAddCartItemCommandHandler(cartRepo, catalog)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add to cart: %w", err)
//	}
type AddCartItemCommand struct { //nolint:recvcheck //using for validation
	vendor   string
	category string
	itemName string
	quantity int

	guard guard.ConstructorGuard
}

// NewAddCartItemCommand creates a command to add an item to the cart.
// Validates that the vendor, category, and item name are non-empty and that
// the quantity is at least 1. Returns an error if any validation fails.
func NewAddCartItemCommand(vendor, category, itemName string, quantity int) (AddCartItemCommand, error) {
	command := AddCartItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setVendor(vendor),
		command.setCategory(category),
		command.setItemName(itemName),
		command.setQuantity(quantity),
	); err != nil {
		return AddCartItemCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCartItemCommandIsNotConstructed if validation fails.
func (c AddCartItemCommand) Validate() error {
	return c.guard.Validate(ErrAddCartItemCommandIsNotConstructed)
}

// Vendor returns the vendor name the item belongs to.
func (c AddCartItemCommand) Vendor() string {
	return c.vendor
}

// Category returns the menu category within the vendor.
func (c AddCartItemCommand) Category() string {
	return c.category
}

// ItemName returns the name of the item to add.
func (c AddCartItemCommand) ItemName() string {
	return c.itemName
}

// Quantity returns the number of units to add.
func (c AddCartItemCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartItemCommand) setVendor(vendor string) error {
	if vendor == "" {
		return ErrVendorIsRequired
	}

	c.vendor = vendor
	return nil
}

func (c *AddCartItemCommand) setCategory(category string) error {
	if category == "" {
		return ErrCategoryIsRequired
	}

	c.category = category
	return nil
}

func (c *AddCartItemCommand) setItemName(itemName string) error {
	if itemName == "" {
		return ErrItemNameIsRequired
	}

	c.itemName = itemName
	return nil
}

func (c *AddCartItemCommand) setQuantity(quantity int) error {
	if quantity < 1 {
		return cart.NewQuantityIsInvalidError(quantity)
	}

	c.quantity = quantity
	return nil
}
