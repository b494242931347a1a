package commands

import (
	"context"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/core/domain/model/orderevent"
	"flowgic/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler handles order lifecycle transitions.
// Dispatchers and managers may apply any valid status; a driver may only
// move their own order through loading, in_transit and delivered.
// Every applied transition appends one status_changed event atomically
// with the order update.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewChangeOrderStatusCommandHandler creates a handler for status transitions.
func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status transition command.
// Returns errs.ErrStatusUnchanged without mutation or event when the order
// is already in the target status. Orders from other companies are reported
// as not found.
func (h ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
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

	actor := cmd.Actor()
	if !aggregate.CompanyID().IsEqual(actor.CompanyID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}
	if err = checkTransitionAllowed(actor, aggregate, cmd.NewStatus()); err != nil {
		return err
	}

	oldStatus := aggregate.Status()
	if err = aggregate.ChangeStatus(cmd.NewStatus(), cmd.DelayReason()); err != nil {
		return err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	event, err := orderevent.New(kernel.NewUUID(), aggregate.ID(), orderevent.TypeStatusChanged, orderevent.Data{
		"old_status": oldStatus.String(),
		"new_status": aggregate.Status().String(),
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

// checkTransitionAllowed applies the role rules for status changes.
func checkTransitionAllowed(actor kernel.Actor, aggregate *order.Order, newStatus order.Status) error {
	if actor.Role().CanManageOrders() {
		return nil
	}

	if actor.Role() == kernel.RoleDriver {
		driverID := aggregate.Driver()
		if driverID == nil || !driverID.IsEqual(actor.UserID()) {
			return errs.NewPermissionDeniedError(actor.Role().String(), "change another driver's order")
		}
		if !newStatus.AllowedForDriver() {
			return errs.NewPermissionDeniedError(actor.Role().String(), "apply status "+newStatus.String())
		}
		return nil
	}

	return errs.NewPermissionDeniedError(actor.Role().String(), "change order status")
}
