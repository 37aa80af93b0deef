package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderStatusPublisher emits a status-changed notification for external
// observers (displays, downstream services) every time an order transitions.
// Publishing happens after the transition is committed; a publish failure is
// logged but never rolls back the transition.
type OrderStatusPublisher interface {
	// PublishStatusChanged announces that orderID moved to newStatus.
	PublishStatusChanged(ctx context.Context, orderID kernel.UUID, newStatus order.Status) error
}
