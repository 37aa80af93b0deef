package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetRevenueQueryIsNotConstructed = errors.New(
		"GetRevenueQuery must be created via NewGetRevenueQuery constructor",
	)
)

// GetRevenueQuery retrieves the accumulated revenue total. Revenue is
// credited once per order at placement and never reversed.
type GetRevenueQuery struct {
	guard guard.ConstructorGuard
}

// NewGetRevenueQuery creates a query for the revenue ledger total.
func NewGetRevenueQuery() GetRevenueQuery {
	return GetRevenueQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetRevenueQueryIsNotConstructed if validation fails.
func (q GetRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetRevenueQueryIsNotConstructed)
}

// GetRevenueQueryResponse carries the ledger total.
type GetRevenueQueryResponse struct {
	Total kernel.Money
}
