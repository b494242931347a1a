package commands

import (
	"errors"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/pkg/guard"
)

// ErrChangeOrderStatusCommandIsNotConstructed is returned when a
// ChangeOrderStatusCommand was not created through its constructor.
var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// lifecycle status. A delay reason accompanies transitions into the delayed
// status and is ignored otherwise.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Actor
	orderID     kernel.UUID
	newStatus   order.Status
	delayReason string

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to transition an order.
// An unknown status fails here, before any state is touched.
func NewChangeOrderStatusCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	newStatus order.Status,
	delayReason string,
) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		delayReason: delayReason,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setNewStatus(newStatus),
	); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Actor returns the identity performing the operation.
func (c ChangeOrderStatusCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the order to transition.
func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

// NewStatus returns the target status.
func (c ChangeOrderStatusCommand) NewStatus() order.Status {
	return c.newStatus
}

// DelayReason returns the reason recorded when entering the delayed status.
func (c ChangeOrderStatusCommand) DelayReason() string {
	return c.delayReason
}

func (c *ChangeOrderStatusCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ChangeOrderStatusCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ChangeOrderStatusCommand) setNewStatus(newStatus order.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	c.newStatus = newStatus
	return nil
}
