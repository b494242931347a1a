package commands

import (
	"context"

	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/pkg/errs"
)

// CreateOrderCommandHandler handles the business logic for order registration.
// Only dispatchers and managers may create orders.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order registration.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order registration command.
// The order starts in "created" status, unassigned, scoped to the actor's
// company. No audit event is recorded for creation.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role().CanManageOrders() {
		return errs.NewPermissionDeniedError(actor.Role().String(), "create orders")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(cmd.OrderID(), actor.CompanyID(), cmd.ClientID(), actor.UserID(), cmd.Details())
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
