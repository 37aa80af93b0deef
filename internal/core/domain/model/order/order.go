package order

import (
	"errors"
	"fmt"
	"time"

	"foodorder/internal/core/domain/model/cart"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoLines is returned when an order would be created from an
	// empty line snapshot. Placement rejects empty carts before this point;
	// the aggregate enforces it again as a hard invariant.
	ErrOrderHasNoLines = errors.New("order must contain at least one line")

	// ErrOrderTotalsMismatch is returned when subtotal + tax does not equal total.
	ErrOrderTotalsMismatch = errors.New("order total must equal subtotal plus tax")
)

// Order represents a placed order in the system. It is the aggregate root
// tracking an immutable priced snapshot of cart lines from placement through
// delivery.
//
// Order follows these invariants:
//   - Must have a valid unique identifier
//   - Carries at least one line; the line snapshot never changes after placement
//   - total == subtotal + tax, all captured at placement time
//   - Status transitions are monotonic: Queued -> Preparing -> OnTheWay -> Delivered
//   - deliveredAt is set exactly when the Delivered status is reached
//
// Only the status pointer and delivery timestamp mutate after creation;
// everything else is a frozen billing snapshot.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// lines is the immutable snapshot of cart lines at placement time
	lines []cart.Line

	// subtotal, tax, and total are the billed amounts captured at placement
	subtotal kernel.Money
	tax      kernel.Money
	total    kernel.Money

	// placedAt is the creation time; FIFO processing order derives from it
	placedAt time.Time

	// deliveredAt is set once, when the order reaches Delivered
	deliveredAt *time.Time

	// status represents the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a newly placed order in Queued status from a cart line
// snapshot and its computed bill.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - lines: non-empty cart line snapshot
//   - subtotal, tax, total: billed amounts; total must equal subtotal + tax
//   - placedAt: placement time (must be non-zero)
//
// Returns a validation error if any invariant is violated.
func NewOrder(
	id kernel.UUID,
	lines []cart.Line,
	subtotal, tax, total kernel.Money,
	placedAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Queued,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setLines(lines),
		o.setAmounts(subtotal, tax, total),
		o.setPlacedAt(placedAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its current
// status and delivery timestamp. A Delivered order must carry a delivery
// timestamp and a non-delivered order must not.
func RestoreOrder(
	id kernel.UUID,
	lines []cart.Line,
	subtotal, tax, total kernel.Money,
	status Status,
	placedAt time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	o, err := NewOrder(id, lines, subtotal, tax, total, placedAt)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if (status == Delivered) != (deliveredAt != nil) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"deliveredAt",
			fmt.Errorf("delivery timestamp does not match %s status", status),
		)
	}

	o.status = status
	o.deliveredAt = deliveredAt
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Lines returns a copy of the immutable line snapshot.
func (o *Order) Lines() []cart.Line {
	snapshot := make([]cart.Line, len(o.lines))
	copy(snapshot, o.lines)
	return snapshot
}

// Subtotal returns the billed subtotal.
func (o *Order) Subtotal() kernel.Money {
	return o.subtotal
}

// Tax returns the billed tax.
func (o *Order) Tax() kernel.Money {
	return o.tax
}

// Total returns the billed total (subtotal + tax).
func (o *Order) Total() kernel.Money {
	return o.total
}

// PlacedAt returns the placement time.
func (o *Order) PlacedAt() time.Time {
	return o.placedAt
}

// DeliveredAt returns the delivery time, or nil if the order has not been
// delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// IsDelivered reports whether the order reached its terminal status.
func (o *Order) IsDelivered() bool {
	return o.status == Delivered
}

// StartPreparing marks the order as dequeued and begins the delivery
// simulation.
//
// Business rules:
//   - The order must be in Queued status
//   - Leaving the queue happens exactly once per order
func (o *Order) StartPreparing() error {
	newStatus, err := o.status.StartPreparing()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Advance moves the delivery simulation one step forward
// (Preparing -> OnTheWay -> Delivered). On reaching Delivered the delivery
// timestamp is recorded; further calls fail.
//
// Parameters:
//   - now: the transition time, recorded as deliveredAt on the final step
func (o *Order) Advance(now time.Time) error {
	newStatus, err := o.status.Advance()
	if err != nil {
		return err
	}

	o.status = newStatus
	if newStatus == Delivered {
		deliveredAt := now
		o.deliveredAt = &deliveredAt
	}
	return nil
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setLines validates and snapshots the cart lines.
// This is a private method used only during construction.
func (o *Order) setLines(lines []cart.Line) error {
	if len(lines) == 0 {
		return ErrOrderHasNoLines
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
	}

	o.lines = make([]cart.Line, len(lines))
	copy(o.lines, lines)
	return nil
}

// setAmounts validates and sets the billed amounts.
// This is a private method used only during construction.
func (o *Order) setAmounts(subtotal, tax, total kernel.Money) error {
	if !subtotal.Add(tax).IsEqual(total) {
		return ErrOrderTotalsMismatch
	}

	o.subtotal = subtotal
	o.tax = tax
	o.total = total
	return nil
}

// setPlacedAt validates and sets the placement time.
// This is a private method used only during construction.
func (o *Order) setPlacedAt(placedAt time.Time) error {
	if placedAt.IsZero() {
		return errs.NewValueIsRequiredError("placedAt")
	}
	o.placedAt = placedAt
	return nil
}
