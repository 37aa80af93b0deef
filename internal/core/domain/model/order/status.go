package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with monotonic transitions: no state is ever
// skipped or revisited.
//
// State transitions:
//
//	Queued ──> Preparing ──> OnTheWay ──> Delivered
//
// Queued is the pre-delivery state between placement and dequeue; the
// delivery simulation itself covers exactly Preparing, OnTheWay, and
// Delivered. Status is a value object; transition methods return a new value
// and never mutate the receiver.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Queued is the initial status at placement. Queued orders wait in the
	// FIFO queue and have not started delivery.
	Queued

	// Preparing is the first delivery status, entered when the order is
	// dequeued for processing.
	Preparing

	// OnTheWay indicates the order has left the vendor and is in transit.
	OnTheWay

	// Delivered indicates the order reached its destination. This is a final
	// state; the order is archived to history exactly once on entry.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Queued:    "Queued",
		Preparing: "Preparing",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Queued:    "Queued",
		Preparing: "Preparing",
		OnTheWay:  "OnTheWay",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Queued, Preparing, OnTheWay, and Delivered; Unknown (0)
// and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsInFlight reports whether the status belongs to an active delivery
// simulation (Preparing or OnTheWay).
func (s Status) IsInFlight() bool {
	return s == Preparing || s == OnTheWay
}

// StartPreparing transitions the status from Queued to Preparing.
//
// Valid transitions:
//   - Queued -> Preparing (order dequeued for processing)
//
// Any other starting state is rejected: an order can leave the queue exactly
// once, so Preparing is reachable only from Queued.
func (s Status) StartPreparing() (Status, error) {
	if s != Queued {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to start preparing", s.String()),
		)
	}

	return Preparing, nil
}

// Advance transitions the status one step forward in the delivery sequence.
//
// Valid transitions:
//   - Preparing -> OnTheWay
//   - OnTheWay  -> Delivered
//
// Invalid transitions:
//   - Queued (not yet dequeued; use StartPreparing)
//   - Delivered (terminal, no further transitions)
//   - Unknown or out-of-range values
func (s Status) Advance() (Status, error) {
	switch s {
	case Preparing:
		return OnTheWay, nil
	case OnTheWay:
		return Delivered, nil
	default:
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to advance", s.String()),
		)
	}
}
