package queries

import (
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetHistoryQueryIsNotConstructed = errors.New(
		"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
	)

	// ErrHistoryIsEmpty is returned when no order has completed delivery yet.
	ErrHistoryIsEmpty = errors.New("no delivered orders in history")
)

// GetHistoryQuery retrieves all delivered orders, most recently delivered
// first. Fails with ErrHistoryIsEmpty when nothing has been delivered yet.
type GetHistoryQuery struct {
	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates a query for the delivered order history.
func NewGetHistoryQuery() GetHistoryQuery {
	return GetHistoryQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetHistoryQueryIsNotConstructed if validation fails.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// GetHistoryQueryResponse represents one completed order in the history view.
type GetHistoryQueryResponse struct {
	ID          kernel.UUID
	Total       kernel.Money
	DeliveredAt time.Time
}
