package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders based on
// their position in the fulfillment lifecycle.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetNextQueued retrieves the queued order with the earliest placement
	// time. This is the FIFO guarantee: orders are handed out for processing
	// strictly in placement order. Returns an ObjectNotFoundError when the
	// queue is empty.
	GetNextQueued(ctx context.Context) (*order.Order, error)

	// GetAllInFlight retrieves all orders currently in the delivery
	// simulation (Preparing or OnTheWay), ordered by placement time.
	GetAllInFlight(ctx context.Context) ([]*order.Order, error)

	// GetAllDelivered retrieves all delivered orders, most recent delivery
	// first. Used for history display and export.
	GetAllDelivered(ctx context.Context) ([]*order.Order, error)
}
