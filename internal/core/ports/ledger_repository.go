package ports

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"
)

// LedgerRepository defines the persistence contract for the revenue ledger.
// The ledger is a single cumulative total that only grows: each placed order
// credits it exactly once, by that order's total, at placement time. There is
// no decrement operation because the system has no refund or cancellation path.
type LedgerRepository interface {
	// Record adds an order total to the running revenue sum.
	// Called exactly once per placed order, within the placement transaction.
	Record(ctx context.Context, total kernel.Money) error

	// Total returns the current cumulative revenue.
	Total(ctx context.Context) (kernel.Money, error)
}
