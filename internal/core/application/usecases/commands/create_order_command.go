package commands

import (
	"errors"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created through its constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new transport order.
// The order is created in the "created" status for the actor's company.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Actor
	orderID  kernel.UUID
	clientID kernel.UUID
	details  order.Details

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Cargo and schedule fields are validated the same way the Order
// constructor validates them, so invalid details fail fast here.
func NewCreateOrderCommand(
	actor kernel.Actor,
	orderID, clientID kernel.UUID,
	details order.Details,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setDetails(details),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Actor returns the identity performing the operation.
func (c CreateOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ClientID returns the customer the order is carried for.
func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

// Details returns the cargo and schedule details.
func (c CreateOrderCommand) Details() order.Details {
	return c.details
}

func (c *CreateOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return err
	}

	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setDetails(details order.Details) error {
	c.details = details
	return nil
}
