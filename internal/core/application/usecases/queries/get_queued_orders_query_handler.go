package queries

import (
	"context"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetQueuedOrdersQueryHandler retrieves pending orders from the database.
// Results are sorted by placement time so the view shows the exact order in
// which processing will pick them up.
type GetQueuedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetQueuedOrdersQueryHandler creates a handler for queue display queries.
// Requires a GORM database connection for query execution.
func NewGetQueuedOrdersQueryHandler(db *gorm.DB) GetQueuedOrdersQueryHandler {
	return GetQueuedOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all queued orders, oldest first.
func (h GetQueuedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetQueuedOrdersQuery,
) ([]GetQueuedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetQueuedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			total_cents,
			placed_at
		FROM orders
		WHERE status = ?
		ORDER BY placed_at
	`, order.Queued).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id uuid.UUID
		var totalCents int64
		var placedAt time.Time

		if err = rows.Scan(&id, &totalCents, &placedAt); err != nil {
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

		orders = append(orders, GetQueuedOrdersQueryResponse{
			ID:       orderID,
			Total:    total,
			PlacedAt: placedAt,
		})
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
