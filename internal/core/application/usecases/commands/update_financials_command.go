package commands

import (
	"errors"

	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"
)

// ErrUpdateFinancialsCommandIsNotConstructed is returned when an
// UpdateFinancialsCommand was not created through its constructor.
var ErrUpdateFinancialsCommandIsNotConstructed = errors.New(
	"UpdateFinancialsCommand must be created via NewUpdateFinancialsCommand constructor",
)

// UpdateFinancialsCommand represents an edit of an order's cost figures.
// Only the provided figures change; nil fields keep their stored values.
type UpdateFinancialsCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID
	changes financial.CostChanges

	guard guard.ConstructorGuard
}

// NewUpdateFinancialsCommand creates a command to edit the ledger figures.
// A command carrying no figures at all is rejected.
func NewUpdateFinancialsCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	changes financial.CostChanges,
) (UpdateFinancialsCommand, error) {
	cmd := UpdateFinancialsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setChanges(changes),
	); err != nil {
		return UpdateFinancialsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateFinancialsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFinancialsCommandIsNotConstructed)
}

// Actor returns the identity performing the operation.
func (c UpdateFinancialsCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the order whose ledger changes.
func (c UpdateFinancialsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Changes returns the cost figures to apply.
func (c UpdateFinancialsCommand) Changes() financial.CostChanges {
	return c.changes
}

func (c *UpdateFinancialsCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *UpdateFinancialsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *UpdateFinancialsCommand) setChanges(changes financial.CostChanges) error {
	if changes.ClientCost == nil && changes.DriverCost == nil &&
		changes.ThirdPartyCost == nil && changes.FuelExpenses == nil {
		return errs.NewValueIsRequiredError("changes")
	}

	c.changes = changes
	return nil
}
