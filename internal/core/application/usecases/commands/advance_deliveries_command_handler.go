package commands

import (
	"context"
	"log/slog"
	"time"

	"foodorder/internal/core/ports"
)

// AdvanceDeliveriesCommandHandler handles one tick of the delivery
// simulation. Every in-flight order advances exactly one step per tick, so
// per-order transitions stay strictly ordered even with several deliveries
// running at once; the serialized transactional write path keeps each order
// archived exactly once.
//
// When an order reaches Delivered the full history export is regenerated,
// overwriting the previous snapshot.
type AdvanceDeliveriesCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderStatusPublisher
	exporter   ports.HistoryExporter
	logger     *slog.Logger
}

// NewAdvanceDeliveriesCommandHandler creates a handler for delivery ticks.
// Requires an OrderUoWFactory for the transition transaction, a status
// publisher, the history exporter, and a logger for side-effect failures.
func NewAdvanceDeliveriesCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderStatusPublisher,
	exporter ports.HistoryExporter,
	logger *slog.Logger,
) AdvanceDeliveriesCommandHandler {
	return AdvanceDeliveriesCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		exporter:   exporter,
		logger:     logger,
	}
}

// Handle advances every in-flight order one step and commits the batch in a
// single transaction. Notifications and the history export run after commit;
// their failures are logged, not propagated, since the transitions are
// already durable.
func (h AdvanceDeliveriesCommandHandler) Handle(ctx context.Context, cmd AdvanceDeliveriesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	inFlight, err := orderRepo.GetAllInFlight(ctx)
	if err != nil {
		return err
	}

	if len(inFlight) == 0 {
		return nil
	}

	now := time.Now().UTC()
	anyDelivered := false
	for _, o := range inFlight {
		if err = o.Advance(now); err != nil {
			return err
		}

		if err = orderRepo.Update(ctx, o); err != nil {
			return err
		}

		anyDelivered = anyDelivered || o.IsDelivered()
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	for _, o := range inFlight {
		if pubErr := h.publisher.PublishStatusChanged(ctx, o.ID(), o.Status()); pubErr != nil {
			h.logger.ErrorContext(ctx, "Failed to publish status change",
				"orderId", o.ID().String(), "status", o.Status().String(), "error", pubErr)
		}
	}

	if anyDelivered {
		if expErr := h.exportHistory(ctx); expErr != nil {
			h.logger.ErrorContext(ctx, "Failed to export order history", "error", expErr)
		}
	}

	return nil
}

// exportHistory regenerates the history export from the committed state.
// Uses a fresh read-only unit of work so the export reflects exactly what
// was persisted.
func (h AdvanceDeliveriesCommandHandler) exportHistory(ctx context.Context) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	delivered, err := uow.OrderRepository().GetAllDelivered(ctx)
	if err != nil {
		return err
	}

	return h.exporter.Export(ctx, delivered)
}
