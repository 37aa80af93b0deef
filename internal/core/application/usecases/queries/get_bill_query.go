// Package queries contains read-only operations exposing system state to the
// display layer. Implements the Query side of the CQRS architecture: queries
// never mutate state and read either the active cart or the database directly.
package queries

import (
	"errors"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/guard"
)

var (
	ErrGetBillQueryIsNotConstructed = errors.New(
		"GetBillQuery must be created via NewGetBillQuery constructor",
	)
)

// GetBillQuery retrieves the current cart lines together with their bill
// breakdown (subtotal, tax, total).
//
// Example:
//
//	query := NewGetBillQuery()
//	handler := NewGetBillQueryHandler(cartRepo, billing)
//
//	bill, err := handler.Handle(ctx, query)
//	if errors.Is(err, services.ErrCartIsEmpty) {
//	    // No items in the cart
//	    return
//	}
//	fmt.Printf("Total: %s\n", bill.Total)
type GetBillQuery struct {
	guard guard.ConstructorGuard
}

// NewGetBillQuery creates a query for the active cart's bill.
// This is a parameterless query; the engine has a single active session.
func NewGetBillQuery() GetBillQuery {
	return GetBillQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetBillQueryIsNotConstructed if validation fails.
func (q GetBillQuery) Validate() error {
	return q.guard.Validate(ErrGetBillQueryIsNotConstructed)
}

// GetBillQueryResponse is the cart display model: the ordered lines and the
// derived bill amounts, with Total always equal to Subtotal plus Tax.
type GetBillQueryResponse struct {
	Lines    []BillLineResponse
	Subtotal kernel.Money
	Tax      kernel.Money
	Total    kernel.Money
}

// BillLineResponse represents one cart line in the bill display.
type BillLineResponse struct {
	ItemName  string
	UnitPrice kernel.Money
	Quantity  int
	LineTotal kernel.Money
}
