package queries

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetRevenueQueryHandler retrieves the running revenue total from the
// single-row ledger table.
type GetRevenueQueryHandler struct {
	db *gorm.DB
}

// NewGetRevenueQueryHandler creates a handler for revenue queries.
// Requires a GORM database connection for query execution.
func NewGetRevenueQueryHandler(db *gorm.DB) GetRevenueQueryHandler {
	return GetRevenueQueryHandler{db: db}
}

// Handle executes the query and returns the current revenue total.
// A ledger with no credits yet reports zero, not an error.
func (h GetRevenueQueryHandler) Handle(
	ctx context.Context,
	query GetRevenueQuery,
) (GetRevenueQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	var totalCents int64
	row := h.db.WithContext(ctx).Raw(`
		SELECT total_cents
		FROM revenue_ledger
		LIMIT 1
	`).Row()
	if err := row.Scan(&totalCents); err != nil {
		return GetRevenueQueryResponse{}, err
	}

	total, err := kernel.NewMoney(totalCents)
	if err != nil {
		return GetRevenueQueryResponse{}, err
	}

	return GetRevenueQueryResponse{Total: total}, nil
}
