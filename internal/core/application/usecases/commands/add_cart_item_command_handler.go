package commands

import (
	"context"

	"foodorder/internal/core/ports"
)

// AddCartItemCommandHandler handles the business logic for adding items to
// the active session's cart. Resolves the item against the catalog so the
// current price is captured at add time, then merges it into the cart.
//
// Example:
//
//	handler := NewAddCartItemCommandHandler(cartRepo, catalog)
//	cmd, _ := NewAddCartItemCommand("Burger King", "Fries", "Peri Peri Fries", 1)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("add to cart failed: %w", err)
//	}
type AddCartItemCommandHandler struct {
	cartRepo ports.CartRepository
	catalog  ports.MenuCatalog
}

// NewAddCartItemCommandHandler creates a handler for add-to-cart operations.
// Requires the cart repository and the read-only menu catalog.
func NewAddCartItemCommandHandler(cartRepo ports.CartRepository, catalog ports.MenuCatalog) AddCartItemCommandHandler {
	return AddCartItemCommandHandler{
		cartRepo: cartRepo,
		catalog:  catalog,
	}
}

// Handle processes the add-to-cart command.
// Fails with an ObjectNotFoundError if the vendor, category, or item is not
// on the menu; the cart is left unchanged on any failure.
func (h AddCartItemCommandHandler) Handle(ctx context.Context, cmd AddCartItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	item, err := h.catalog.Item(ctx, cmd.Vendor(), cmd.Category(), cmd.ItemName())
	if err != nil {
		return err
	}

	activeCart, err := h.cartRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err = activeCart.AddItem(item, cmd.Quantity()); err != nil {
		return err
	}

	return h.cartRepo.Save(ctx, activeCart)
}
