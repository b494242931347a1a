package commands

import (
	"errors"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/guard"
)

// ErrMarkOrderViewedCommandIsNotConstructed is returned when a
// MarkOrderViewedCommand was not created through its constructor.
var ErrMarkOrderViewedCommandIsNotConstructed = errors.New(
	"MarkOrderViewedCommand must be created via NewMarkOrderViewedCommand constructor",
)

// MarkOrderViewedCommand represents a driver acknowledging an order
// assigned to them.
type MarkOrderViewedCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkOrderViewedCommand creates a command to record the viewed flag.
func NewMarkOrderViewedCommand(actor kernel.Actor, orderID kernel.UUID) (MarkOrderViewedCommand, error) {
	cmd := MarkOrderViewedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkOrderViewedCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderViewedCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderViewedCommandIsNotConstructed)
}

// Actor returns the identity performing the operation.
func (c MarkOrderViewedCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the order being acknowledged.
func (c MarkOrderViewedCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderViewedCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *MarkOrderViewedCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
