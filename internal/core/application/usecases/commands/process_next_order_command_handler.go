package commands

import (
	"context"
	"errors"
	"log/slog"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/ports"
	"foodorder/internal/pkg/errs"
)

// ProcessNextOrderCommandHandler handles dequeuing the next order for
// delivery. The order leaves the queue exactly once, transitioning from
// Queued to Preparing inside a transaction; the delivery tracking job then
// advances it on subsequent ticks.
type ProcessNextOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderStatusPublisher
	logger     *slog.Logger
}

// NewProcessNextOrderCommandHandler creates a handler for order processing.
// Requires an OrderUoWFactory for the dequeue transaction, a status publisher
// for the transition notification, and a logger for publish failures.
func NewProcessNextOrderCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
	logger *slog.Logger,
) ProcessNextOrderCommandHandler {
	return ProcessNextOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		logger:     logger,
	}
}

// Handle processes the dequeue command and returns the ID of the order that
// entered Preparing.
//
// Returns:
//   - ErrNoQueuedOrders if the queue is empty; no state changes
//   - the order ID and nil on success
//
// The status-changed notification is emitted after the transaction commits;
// a publish failure is logged, never propagated, because the transition
// itself already happened.
func (h ProcessNextOrderCommandHandler) Handle(
	ctx context.Context,
	cmd ProcessNextOrderCommand,
) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	next, err := orderRepo.GetNextQueued(ctx)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return kernel.UUID{}, ErrNoQueuedOrders
		}
		return kernel.UUID{}, err
	}

	if err = next.StartPreparing(); err != nil {
		return kernel.UUID{}, err
	}

	if err = orderRepo.Update(ctx, next); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	if err = h.publisher.PublishStatusChanged(ctx, next.ID(), next.Status()); err != nil {
		h.logger.ErrorContext(ctx, "Failed to publish status change",
			"orderId", next.ID().String(), "status", next.Status().String(), "error", err)
	}

	return next.ID(), nil
}
