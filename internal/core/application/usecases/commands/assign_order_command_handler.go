package commands

import (
	"context"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/orderevent"
	"flowgic/internal/pkg/errs"
)

// AssignOrderCommandHandler handles transport assignment for orders.
// Dispatchers and managers only. The assigned driver must belong to the
// actor's company, and the vehicle must exist there.
type AssignOrderCommandHandler struct {
	uowFactory AssignUoWFactory
}

// NewAssignOrderCommandHandler creates a handler for assignment operations.
func NewAssignOrderCommandHandler(uowFactory AssignUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command.
// Commits without an event when the requested assignment equals the current
// one. Assignment never changes the order's lifecycle status.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role().CanManageOrders() {
		return errs.NewPermissionDeniedError(actor.Role().String(), "assign orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if !aggregate.CompanyID().IsEqual(actor.CompanyID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	var driverID *kernel.UUID
	if driver := cmd.Driver(); driver != nil {
		if !driver.CompanyID().IsEqual(actor.CompanyID()) {
			return errs.NewObjectNotFoundError("driverID", driver.UserID())
		}
		id := driver.UserID()
		driverID = &id
	}

	if vehicleID := cmd.VehicleID(); vehicleID != nil {
		vehicle, vehicleErr := uow.VehicleRepository().Get(ctx, *vehicleID)
		if vehicleErr != nil {
			return vehicleErr
		}
		if !vehicle.CompanyID().IsEqual(actor.CompanyID()) {
			return errs.NewObjectNotFoundError("vehicleID", *vehicleID)
		}
	}

	changed, err := aggregate.AssignTransport(driverID, cmd.VehicleID())
	if err != nil {
		return err
	}
	if !changed {
		return uow.Commit(ctx)
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := orderevent.New(kernel.NewUUID(), aggregate.ID(), orderevent.TypeAssigned, orderevent.Data{
		"driver_id":  uuidPtrString(aggregate.Driver()),
		"vehicle_id": uuidPtrString(aggregate.Vehicle()),
		"actor":      actor.UserID().String(),
	}, time.Now())
	if err != nil {
		return err
	}
	if err = uow.OrderEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// uuidPtrString renders an optional id for event payloads, nil as empty.
func uuidPtrString(id *kernel.UUID) string {
	if id == nil {
		return ""
	}
	return id.String()
}
