// Package order provides domain entities and business logic for order
// management in the food ordering system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: the aggregate root holding the priced line snapshot and lifecycle
//   - Status: a state machine that enforces monotonic delivery transitions
//
// Key business rules:
//   - Orders carry an immutable snapshot of cart lines captured at placement
//   - total == subtotal + tax, fixed at placement time
//   - Status follows Queued -> Preparing -> OnTheWay -> Delivered with no
//     skipped, repeated, or backward transitions
//   - The delivery timestamp is recorded exactly once, on reaching Delivered
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
