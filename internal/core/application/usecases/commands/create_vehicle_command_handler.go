package commands

import (
	"context"

	"flowgic/internal/core/domain/model/vehicle"
	"flowgic/internal/pkg/errs"
)

// CreateVehicleCommandHandler registers vehicles in a company's fleet.
// Dispatchers and managers only. Registration numbers are unique per
// company; a duplicate is rejected by the storage layer.
type CreateVehicleCommandHandler struct {
	uowFactory FleetUoWFactory
}

// NewCreateVehicleCommandHandler creates a handler for fleet registration.
func NewCreateVehicleCommandHandler(uowFactory FleetUoWFactory) CreateVehicleCommandHandler {
	return CreateVehicleCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the vehicle registration command.
func (h CreateVehicleCommandHandler) Handle(ctx context.Context, cmd CreateVehicleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role().CanManageOrders() {
		return errs.NewPermissionDeniedError(actor.Role().String(), "register vehicles")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := vehicle.NewVehicle(cmd.VehicleID(), actor.CompanyID(), cmd.RegNumber(), cmd.Model(), cmd.CapacityKg())
	if err != nil {
		return err
	}

	if err = uow.VehicleRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
