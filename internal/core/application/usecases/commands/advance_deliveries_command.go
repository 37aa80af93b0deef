package commands

import (
	"errors"

	"foodorder/internal/pkg/guard"
)

var (
	ErrAdvanceDeliveriesCommandIsNotConstructed = errors.New(
		"AdvanceDeliveriesCommand must be created via NewAdvanceDeliveriesCommand constructor",
	)
)

// AdvanceDeliveriesCommand moves every in-flight delivery one step forward
// (Preparing -> OnTheWay -> Delivered). This batch operation is the timer
// tick of the delivery simulation: the tracking job issues it on a fixed
// schedule, and orders reaching Delivered are archived to history.
//
// Example:
//
//	cmd := NewAdvanceDeliveriesCommand()
//	handler := NewAdvanceDeliveriesCommandHandler(uowFactory, publisher, exporter, logger)
//
//	// Run on the delivery tick
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Delivery tick failed: %v", err)
//	}
type AdvanceDeliveriesCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceDeliveriesCommand creates a command to advance all active deliveries.
// This is a parameterless command that processes every in-flight order.
func NewAdvanceDeliveriesCommand() AdvanceDeliveriesCommand {
	return AdvanceDeliveriesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceDeliveriesCommandIsNotConstructed if validation fails.
func (c AdvanceDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrAdvanceDeliveriesCommandIsNotConstructed)
}
