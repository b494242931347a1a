package commands

import (
	"context"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/orderevent"
	"flowgic/internal/pkg/errs"
)

// ApplyPaymentCommandHandler updates an order's payment state.
// The ledger record is created with defaults when the order has none yet.
// A payment_updated event is appended only when the payment status actually
// moved. Marking an already paid ledger as paid touches nothing and returns
// errs.ErrPaymentUnchanged; a repeat installment at the same status still
// persists the overwritten payment plan, just without an event.
type ApplyPaymentCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewApplyPaymentCommandHandler creates a handler for payment updates.
func NewApplyPaymentCommandHandler(uowFactory LedgerUoWFactory) ApplyPaymentCommandHandler {
	return ApplyPaymentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command.
func (h ApplyPaymentCommandHandler) Handle(ctx context.Context, cmd ApplyPaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role().CanEditFinancials() {
		return errs.NewPermissionDeniedError(actor.Role().String(), "update payments")
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

	record, created, err := getOrCreateFinancial(ctx, uow, aggregate)
	if err != nil {
		return err
	}

	var changed bool
	var action string
	if cmd.MarkPaid() {
		changed = record.MarkPaid()
		if !changed {
			return errs.ErrPaymentUnchanged
		}
		action = "marked_as_paid"
	} else {
		changed, err = record.ApplyPartialPayment(*cmd.PartialAmount(), actor.UserID().String(), time.Now())
		if err != nil {
			return err
		}
		action = "partial_payment"
	}

	if created {
		err = uow.FinancialRepository().Add(ctx, record)
	} else {
		err = uow.FinancialRepository().Update(ctx, record)
	}
	if err != nil {
		return err
	}

	if changed {
		data := orderevent.Data{
			"action": action,
			"actor":  actor.UserID().String(),
		}
		if amount := cmd.PartialAmount(); amount != nil {
			data["amount"] = amount.String()
		}

		event, eventErr := orderevent.New(kernel.NewUUID(), aggregate.ID(), orderevent.TypePaymentUpdated, data, time.Now())
		if eventErr != nil {
			return eventErr
		}
		if err = uow.OrderEventRepository().Add(ctx, event); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
