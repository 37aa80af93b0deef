// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows. The line
// snapshot is stored as a JSONB document because lines are immutable after
// placement and never queried individually.
package orderrepo

import (
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Status and placement time are indexed because both queue dispatch (earliest
// queued row) and delivery ticks (all in-flight rows) filter on them.
type OrderDTO struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Lines         []LineDTO  `gorm:"serializer:json;type:jsonb"`
	SubtotalCents int64      `gorm:"type:bigint"`
	TaxCents      int64      `gorm:"type:bigint"`
	TotalCents    int64      `gorm:"type:bigint"`
	Status        int        `gorm:"index"`
	PlacedAt      time.Time  `gorm:"type:timestamptz;index"`
	DeliveredAt   *time.Time `gorm:"type:timestamptz"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineDTO represents one cart line inside the order's JSONB snapshot.
type LineDTO struct {
	ItemName       string `json:"itemName"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Quantity       int    `json:"quantity"`
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	domainLines := aggregate.Lines()
	lines := make([]LineDTO, 0, len(domainLines))
	for _, line := range domainLines {
		lines = append(lines, LineDTO{
			ItemName:       line.ItemName(),
			UnitPriceCents: line.UnitPrice().Cents(),
			Quantity:       line.Quantity(),
		})
	}

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Lines:         lines,
		SubtotalCents: aggregate.Subtotal().Cents(),
		TaxCents:      aggregate.Tax().Cents(),
		TotalCents:    aggregate.Total().Cents(),
		Status:        int(aggregate.Status()),
		PlacedAt:      aggregate.PlacedAt(),
		DeliveredAt:   aggregate.DeliveredAt(),
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder, so every row read from the database passes the same
// invariants as a freshly placed order.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(dto.Lines))
	for _, lineDTO := range dto.Lines {
		unitPrice, priceErr := kernel.NewMoney(lineDTO.UnitPriceCents)
		if priceErr != nil {
			return nil, priceErr
		}

		line, lineErr := cart.NewLine(lineDTO.ItemName, unitPrice, lineDTO.Quantity)
		if lineErr != nil {
			return nil, lineErr
		}

		lines = append(lines, line)
	}

	subtotal, err := kernel.NewMoney(dto.SubtotalCents)
	if err != nil {
		return nil, err
	}

	tax, err := kernel.NewMoney(dto.TaxCents)
	if err != nil {
		return nil, err
	}

	total, err := kernel.NewMoney(dto.TotalCents)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, lines, subtotal, tax, total, order.Status(dto.Status), dto.PlacedAt, dto.DeliveredAt)
}
