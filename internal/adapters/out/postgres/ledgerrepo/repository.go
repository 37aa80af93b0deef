// Package ledgerrepo persists the revenue ledger: a single database row
// holding the cumulative total of all placed orders. The row is seeded at
// startup and only ever incremented, inside the placement transaction, so
// the ledger and the order table can never disagree.
package ledgerrepo

import (
	"context"

	"foodorder/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// ledgerRowID is the primary key of the single ledger row.
const ledgerRowID = 1

// LedgerDTO represents the single-row revenue ledger table.
type LedgerDTO struct {
	ID         int   `gorm:"primaryKey"`
	TotalCents int64 `gorm:"type:bigint"`
}

// TableName specifies the database table name for the revenue ledger.
func (LedgerDTO) TableName() string {
	return "revenue_ledger"
}

// GormLedgerRepository implements LedgerRepository using GORM.
type GormLedgerRepository struct {
	db *gorm.DB
}

// NewGormLedgerRepository creates a new GORM ledger repository.
func NewGormLedgerRepository(db *gorm.DB) *GormLedgerRepository {
	return &GormLedgerRepository{db: db}
}

// Record adds an order total to the running revenue sum. The increment is a
// single UPDATE so concurrent placements serialize on the row lock instead
// of losing credits to read-modify-write races.
func (r *GormLedgerRepository) Record(ctx context.Context, total kernel.Money) error {
	return r.db.WithContext(ctx).Exec(`
		UPDATE revenue_ledger
		SET total_cents = total_cents + ?
		WHERE id = ?
	`, total.Cents(), ledgerRowID).Error
}

// Total returns the current cumulative revenue.
func (r *GormLedgerRepository) Total(ctx context.Context) (kernel.Money, error) {
	var dto LedgerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", ledgerRowID).Error; err != nil {
		return kernel.Money{}, err
	}

	return kernel.NewMoney(dto.TotalCents)
}

// Seed ensures the ledger row exists, creating it with a zero total when the
// table is empty. Called once at startup after migration.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Exec(`
		INSERT INTO revenue_ledger (id, total_cents)
		VALUES (?, 0)
		ON CONFLICT (id) DO NOTHING
	`, ledgerRowID).Error
}
