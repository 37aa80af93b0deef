package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetQueuedOrdersQueryIsNotConstructed = errors.New(
		"GetQueuedOrdersQuery must be created via NewGetQueuedOrdersQuery constructor",
	)
)

// GetQueuedOrdersQuery retrieves all orders waiting in the FIFO queue, in
// placement order. The queue depth for display is the length of the result.
type GetQueuedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetQueuedOrdersQuery creates a query for the pending order queue.
func NewGetQueuedOrdersQuery() GetQueuedOrdersQuery {
	return GetQueuedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetQueuedOrdersQueryIsNotConstructed if validation fails.
func (q GetQueuedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetQueuedOrdersQueryIsNotConstructed)
}

// GetQueuedOrdersQueryResponse represents one pending order in the queue view.
type GetQueuedOrdersQueryResponse struct {
	ID       kernel.UUID
	Total    kernel.Money
	PlacedAt time.Time
}
