package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetHistoryQueryHandler retrieves delivered orders from the database,
// most recent delivery first.
type GetHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetHistoryQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetHistoryQueryHandler(db *gorm.DB) GetHistoryQueryHandler {
	return GetHistoryQueryHandler{db: db}
}

// Handle executes the query to retrieve the delivered order history.
// Returns ErrHistoryIsEmpty when no order has been delivered yet, so the
// caller can distinguish an empty archive from a lookup failure.
func (h GetHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetHistoryQuery,
) ([]GetHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history := make([]GetHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_cents,
			delivered_at
		FROM orders
		WHERE status = ?
		ORDER BY delivered_at DESC
	`, order.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var totalCents int64
		var deliveredAt time.Time

		if err = rows.Scan(&id, &totalCents, &deliveredAt); err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}

		total, totalErr := kernel.NewMoney(totalCents)
		if totalErr != nil {
			return nil, totalErr
		}

		history = append(history, GetHistoryQueryResponse{
			ID:          orderID,
			Total:       total,
			DeliveredAt: deliveredAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	if len(history) == 0 {
		return nil, ErrHistoryIsEmpty
	}

	return history, nil
}
