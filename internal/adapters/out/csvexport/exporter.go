// Package csvexport writes the delivered-order history as a CSV snapshot.
// Every export regenerates the file in full, so the snapshot on disk always
// matches the history at the time of the last delivery.
package csvexport

import (
	"context"
	"encoding/csv"
	"os"

	"foodorder/internal/core/domain/model/order"
)

// HistoryExporter implements the history export port by writing a two-column
// (order id, total) CSV file.
type HistoryExporter struct {
	path string
}

// NewHistoryExporter creates an exporter writing to the given file path.
func NewHistoryExporter(path string) *HistoryExporter {
	return &HistoryExporter{path: path}
}

// Export overwrites the target file with the given delivered orders, in the
// order provided (most recent delivery first).
func (e *HistoryExporter) Export(_ context.Context, delivered []*order.Order) error {
	file, err := os.Create(e.path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err = writer.Write([]string{"Order ID", "Total"}); err != nil {
		return err
	}

	for _, o := range delivered {
		if err = writer.Write([]string{o.ID().String(), o.Total().String()}); err != nil {
			return err
		}
	}

	writer.Flush()
	if err = writer.Error(); err != nil {
		return err
	}

	return file.Sync()
}
