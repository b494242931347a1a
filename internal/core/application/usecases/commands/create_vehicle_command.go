package commands

import (
	"errors"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"
)

// ErrCreateVehicleCommandIsNotConstructed is returned when a
// CreateVehicleCommand was not created through its constructor.
var ErrCreateVehicleCommandIsNotConstructed = errors.New(
	"CreateVehicleCommand must be created via NewCreateVehicleCommand constructor",
)

// CreateVehicleCommand represents a request to register a vehicle in the
// actor's fleet.
type CreateVehicleCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Actor
	vehicleID  kernel.UUID
	regNumber  string
	model      string
	capacityKg int

	guard guard.ConstructorGuard
}

// NewCreateVehicleCommand creates a command to register a vehicle.
func NewCreateVehicleCommand(
	actor kernel.Actor,
	vehicleID kernel.UUID,
	regNumber, model string,
	capacityKg int,
) (CreateVehicleCommand, error) {
	cmd := CreateVehicleCommand{
		model:      model,
		capacityKg: capacityKg,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setVehicleID(vehicleID),
		cmd.setRegNumber(regNumber),
	); err != nil {
		return CreateVehicleCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateVehicleCommand) Validate() error {
	return c.guard.Validate(ErrCreateVehicleCommandIsNotConstructed)
}

// Actor returns the identity performing the operation.
func (c CreateVehicleCommand) Actor() kernel.Actor {
	return c.actor
}

// VehicleID returns the unique identifier for the new vehicle.
func (c CreateVehicleCommand) VehicleID() kernel.UUID {
	return c.vehicleID
}

// RegNumber returns the registration plate.
func (c CreateVehicleCommand) RegNumber() string {
	return c.regNumber
}

// Model returns the vehicle's make and model.
func (c CreateVehicleCommand) Model() string {
	return c.model
}

// CapacityKg returns the payload limit in kilograms.
func (c CreateVehicleCommand) CapacityKg() int {
	return c.capacityKg
}

func (c *CreateVehicleCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateVehicleCommand) setVehicleID(vehicleID kernel.UUID) error {
	if err := vehicleID.Validate(); err != nil {
		return err
	}

	c.vehicleID = vehicleID
	return nil
}

func (c *CreateVehicleCommand) setRegNumber(regNumber string) error {
	if regNumber == "" {
		return errs.NewValueIsRequiredError("regNumber")
	}

	c.regNumber = regNumber
	return nil
}
