package commands

import (
	"context"

	"flowgic/internal/pkg/errs"
)

// MarkOrderViewedCommandHandler records that the assigned driver has seen
// their order. The flag is one-way: once set it stays set, and repeated
// calls are silent no-ops. Actors other than the assigned driver leave the
// flag untouched without an error.
type MarkOrderViewedCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderViewedCommandHandler creates a handler for the viewed flag.
func NewMarkOrderViewedCommandHandler(uowFactory OrderUoWFactory) MarkOrderViewedCommandHandler {
	return MarkOrderViewedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acknowledgement command.
func (h MarkOrderViewedCommandHandler) Handle(ctx context.Context, cmd MarkOrderViewedCommand) error {
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
	if !aggregate.CompanyID().IsEqual(cmd.Actor().CompanyID()) {
		return errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	if !aggregate.MarkViewedBy(cmd.Actor().UserID()) {
		return uow.Commit(ctx)
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
