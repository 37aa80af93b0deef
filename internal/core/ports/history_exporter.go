package ports

import (
	"context"

	"foodorder/internal/core/domain/model/order"
)

// HistoryExporter writes a tabular snapshot (order id, total) of the
// delivered-order history for external persistence. Each call regenerates the
// snapshot in full, overwriting any prior export; the file format and
// location are the exporter's concern, not the engine's.
type HistoryExporter interface {
	// Export overwrites the export target with the given delivered orders.
	Export(ctx context.Context, delivered []*order.Order) error
}
