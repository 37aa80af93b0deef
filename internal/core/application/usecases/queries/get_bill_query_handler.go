package queries

import (
	"context"

	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

// GetBillQueryHandler computes the bill view for the active session's cart.
// Unlike the database-backed queries, this reads the cart repository and the
// pure billing calculator: the cart is session state, not persisted history.
type GetBillQueryHandler struct {
	cartRepo ports.CartRepository
	billing  services.BillingCalculator
}

// NewGetBillQueryHandler creates a handler for bill display queries.
func NewGetBillQueryHandler(cartRepo ports.CartRepository, billing services.BillingCalculator) GetBillQueryHandler {
	return GetBillQueryHandler{cartRepo: cartRepo, billing: billing}
}

// Handle executes the query and returns the line-by-line bill breakdown.
// Fails with services.ErrCartIsEmpty when the cart has no lines, mirroring
// the placement precondition.
func (h GetBillQueryHandler) Handle(ctx context.Context, query GetBillQuery) (GetBillQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBillQueryResponse{}, err
	}

	activeCart, err := h.cartRepo.Get(ctx)
	if err != nil {
		return GetBillQueryResponse{}, err
	}

	lines := activeCart.Lines()
	bill, err := h.billing.Calculate(lines)
	if err != nil {
		return GetBillQueryResponse{}, err
	}

	response := GetBillQueryResponse{
		Lines:    make([]BillLineResponse, 0, len(lines)),
		Subtotal: bill.Subtotal(),
		Tax:      bill.Tax(),
		Total:    bill.Total(),
	}

	for _, line := range lines {
		lineTotal, totalErr := line.Total()
		if totalErr != nil {
			return GetBillQueryResponse{}, totalErr
		}

		response.Lines = append(response.Lines, BillLineResponse{
			ItemName:  line.ItemName(),
			UnitPrice: line.UnitPrice(),
			Quantity:  line.Quantity(),
			LineTotal: lineTotal,
		})
	}

	return response, nil
}
