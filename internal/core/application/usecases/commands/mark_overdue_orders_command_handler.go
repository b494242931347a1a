package commands

import (
	"context"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/core/domain/model/orderevent"
)

// delayedBySchedule is the reason the sweep records on orders it delays.
const delayedBySchedule = "delivery deadline passed"

// MarkOverdueOrdersCommandHandler moves overdue in-transit orders to the
// delayed status, one status_changed event each, all within one transaction.
type MarkOverdueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOverdueOrdersCommandHandler creates a handler for the delay sweep.
func NewMarkOverdueOrdersCommandHandler(uowFactory OrderUoWFactory) MarkOverdueOrdersCommandHandler {
	return MarkOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sweep and returns how many orders were delayed.
func (h MarkOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd MarkOverdueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	overdue, err := uow.OrderRepository().GetAllInTransitDueBefore(ctx, cmd.Now())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range overdue {
		oldStatus := aggregate.Status()
		if err = aggregate.ChangeStatus(order.StatusDelayed, delayedBySchedule); err != nil {
			return 0, err
		}
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return 0, err
		}

		event, eventErr := orderevent.New(kernel.NewUUID(), aggregate.ID(), orderevent.TypeStatusChanged, orderevent.Data{
			"old_status": oldStatus.String(),
			"new_status": aggregate.Status().String(),
			"actor":      "delay-scan",
		}, cmd.Now())
		if eventErr != nil {
			return 0, eventErr
		}
		if err = uow.OrderEventRepository().Add(ctx, event); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(overdue), nil
}
