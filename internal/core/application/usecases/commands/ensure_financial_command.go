package commands

import (
	"errors"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/guard"
)

// ErrEnsureFinancialCommandIsNotConstructed is returned when an
// EnsureFinancialCommand was not created through its constructor.
var ErrEnsureFinancialCommandIsNotConstructed = errors.New(
	"EnsureFinancialCommand must be created via NewEnsureFinancialCommand constructor",
)

// EnsureFinancialCommand represents a get-or-create request for an order's
// financial record.
type EnsureFinancialCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewEnsureFinancialCommand creates a get-or-create command for the ledger.
func NewEnsureFinancialCommand(actor kernel.Actor, orderID kernel.UUID) (EnsureFinancialCommand, error) {
	cmd := EnsureFinancialCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return EnsureFinancialCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EnsureFinancialCommand) Validate() error {
	return c.guard.Validate(ErrEnsureFinancialCommandIsNotConstructed)
}

// Actor returns the identity performing the operation.
func (c EnsureFinancialCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the order whose ledger record is requested.
func (c EnsureFinancialCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *EnsureFinancialCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *EnsureFinancialCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}
