package commands

import (
	"context"

	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/pkg/errs"
)

// EnsureFinancialCommandHandler returns an order's financial record, lazily
// creating it on first access. The operation is idempotent and records no
// audit event.
type EnsureFinancialCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewEnsureFinancialCommandHandler creates a handler for ledger get-or-create.
func NewEnsureFinancialCommandHandler(uowFactory LedgerUoWFactory) EnsureFinancialCommandHandler {
	return EnsureFinancialCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the get-or-create command and returns the record.
// Orders from other companies are reported as not found.
func (h EnsureFinancialCommandHandler) Handle(
	ctx context.Context,
	cmd EnsureFinancialCommand,
) (*financial.Financial, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	actor := cmd.Actor()
	if !actor.Role().CanEditFinancials() {
		return nil, errs.NewPermissionDeniedError(actor.Role().String(), "access financials")
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if !aggregate.CompanyID().IsEqual(actor.CompanyID()) {
		return nil, errs.NewObjectNotFoundError("orderID", cmd.OrderID())
	}

	record, created, err := getOrCreateFinancial(ctx, uow, aggregate)
	if err != nil {
		return nil, err
	}

	if created {
		if err = uow.FinancialRepository().Add(ctx, record); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
