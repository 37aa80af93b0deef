package commands

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// PlaceOrderCommandHandler handles the business logic for order placement.
// Derives an immutable order from the cart snapshot, appends it to the FIFO
// queue in Queued status, and credits the revenue ledger — order and ledger
// writes share one transaction so revenue always matches placed orders.
//
// Revenue is credited at placement time, independent of delivery outcome.
//
// Example:
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, cartRepo, billing)
//	cmd, _ := NewPlaceOrderCommand(kernel.NewUUID())
//
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrCartIsEmpty) {
//	    // Nothing to place; cart unchanged
//	}
type PlaceOrderCommandHandler struct {
	uowFactory PlacementUoWFactory
	cartRepo   ports.CartRepository
	billing    services.BillingCalculator
}

// NewPlaceOrderCommandHandler creates a handler for order placement.
// Requires a PlacementUoWFactory for the atomic order+ledger write, the cart
// repository, and the billing calculator.
func NewPlaceOrderCommandHandler(
	uowFactory PlacementUoWFactory,
	cartRepo ports.CartRepository,
	billing services.BillingCalculator,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		cartRepo:   cartRepo,
		billing:    billing,
	}
}

// Handle processes the placement command.
// Fails with services.ErrCartIsEmpty when the cart has no lines; the cart is
// cleared only after the placement transaction commits.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	activeCart, err := h.cartRepo.Get(ctx)
	if err != nil {
		return err
	}

	bill, err := h.billing.Calculate(activeCart.Lines())
	if err != nil {
		return err
	}

	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		activeCart.Lines(),
		bill.Subtotal(),
		bill.Tax(),
		bill.Total(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return err
	}

	if err = uow.LedgerRepository().Record(ctx, newOrder.Total()); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return h.cartRepo.Clear(ctx)
}
