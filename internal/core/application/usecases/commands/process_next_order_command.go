package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrProcessNextOrderCommandIsNotConstructed = errors.New(
		"ProcessNextOrderCommand must be created via NewProcessNextOrderCommand constructor",
	)

	// ErrNoQueuedOrders signals that processing was requested with an empty
	// queue. This is an expected, user-visible condition rather than a fault;
	// callers surface it as an informational result.
	ErrNoQueuedOrders = errors.New("no queued orders to process")
)

// ProcessNextOrderCommand dequeues the oldest queued order and starts its
// delivery simulation. Strict FIFO: the order handed out is always the one
// placed earliest among those still queued.
//
// Example:
//
//	cmd := NewProcessNextOrderCommand()
//	handler := NewProcessNextOrderCommandHandler(uowFactory, publisher, logger)
//
//	orderID, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrNoQueuedOrders) {
//	    // Nothing pending; state unchanged
//	    return
//	}
type ProcessNextOrderCommand struct {
	guard guard.ConstructorGuard
}

// NewProcessNextOrderCommand creates a command to process the next queued order.
// This is a parameterless command; the queue decides which order is next.
func NewProcessNextOrderCommand() ProcessNextOrderCommand {
	return ProcessNextOrderCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrProcessNextOrderCommandIsNotConstructed if validation fails.
func (c ProcessNextOrderCommand) Validate() error {
	return c.guard.Validate(ErrProcessNextOrderCommandIsNotConstructed)
}
