package commands

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a request to turn the active session's cart
// into a placed order. The cart is snapshotted, billed, enqueued, credited to
// the revenue ledger, and cleared in one operation.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, cartRepo, billing)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to place order: %w", err)
//	}
//	fmt.Printf("Order %s placed and queued for processing", orderID)
type PlaceOrderCommand struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place the current cart as an
// order with the given identifier. Validates that the order ID is valid.
func NewPlaceOrderCommand(orderID kernel.UUID) (PlaceOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
