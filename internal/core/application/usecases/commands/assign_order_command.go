package commands

import (
	"errors"
	"fmt"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"
)

// ErrAssignOrderCommandIsNotConstructed is returned when an AssignOrderCommand
// was not created through its constructor.
var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand represents a request to put a driver and a vehicle on an
// order. Either side may be nil to clear that part of the assignment. The
// driver is passed as a resolved actor because user identity lives outside
// this service; the command only checks that the identity carries the driver
// role.
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	actor     kernel.Actor
	orderID   kernel.UUID
	driver    *kernel.Actor
	vehicleID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOrderCommand creates a command to change an order's assignment.
func NewAssignOrderCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	driver *kernel.Actor,
	vehicleID *kernel.UUID,
) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setDriver(driver),
		cmd.setVehicleID(vehicleID),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

// Actor returns the identity performing the operation.
func (c AssignOrderCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the order to reassign.
func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Driver returns the resolved identity of the driver to assign, nil to clear.
func (c AssignOrderCommand) Driver() *kernel.Actor {
	return c.driver
}

// VehicleID returns the vehicle to assign, nil to clear.
func (c AssignOrderCommand) VehicleID() *kernel.UUID {
	return c.vehicleID
}

func (c *AssignOrderCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *AssignOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AssignOrderCommand) setDriver(driver *kernel.Actor) error {
	if driver == nil {
		return nil
	}
	if err := driver.Validate(); err != nil {
		return err
	}
	if driver.Role() != kernel.RoleDriver {
		return errs.NewValueIsInvalidErrorWithCause("driver",
			fmt.Errorf("assignee has role %s, want %s", driver.Role(), kernel.RoleDriver))
	}

	c.driver = driver
	return nil
}

func (c *AssignOrderCommand) setVehicleID(vehicleID *kernel.UUID) error {
	if vehicleID == nil {
		return nil
	}
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}
