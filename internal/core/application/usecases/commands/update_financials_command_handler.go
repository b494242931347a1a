package commands

import (
	"context"
	"time"

	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/orderevent"
	"flowgic/internal/pkg/errs"
)

// UpdateFinancialsCommandHandler applies cost edits to an order's ledger.
// Profit is rederived on every write, a supplied fuel figure is overridden
// by the distance formula when the order carries a distance, and an edited
// client cost is mirrored onto the order's agreed price. A
// financials_updated event is appended only when a figure actually changed.
type UpdateFinancialsCommandHandler struct {
	uowFactory LedgerUoWFactory
}

// NewUpdateFinancialsCommandHandler creates a handler for ledger edits.
func NewUpdateFinancialsCommandHandler(uowFactory LedgerUoWFactory) UpdateFinancialsCommandHandler {
	return UpdateFinancialsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cost edit command.
func (h UpdateFinancialsCommandHandler) Handle(ctx context.Context, cmd UpdateFinancialsCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	actor := cmd.Actor()
	if !actor.Role().CanEditFinancials() {
		return errs.NewPermissionDeniedError(actor.Role().String(), "update financials")
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

	oldFigures := ledgerFigures(record)
	changed, err := record.UpdateCosts(cmd.Changes(), aggregate.DistanceKm())
	if err != nil {
		return err
	}

	if created {
		err = uow.FinancialRepository().Add(ctx, record)
	} else if changed {
		err = uow.FinancialRepository().Update(ctx, record)
	}
	if err != nil {
		return err
	}

	if clientCost := cmd.Changes().ClientCost; clientCost != nil && changed {
		aggregate.UpdateAgreedPrice(*clientCost)
		if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
			return err
		}
	}

	if changed {
		event, eventErr := orderevent.New(kernel.NewUUID(), aggregate.ID(), orderevent.TypeFinancialsUpdated, orderevent.Data{
			"old":   oldFigures,
			"new":   ledgerFigures(record),
			"actor": actor.UserID().String(),
		}, time.Now())
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

// ledgerFigures snapshots a record's money columns for event payloads.
func ledgerFigures(record *financial.Financial) map[string]any {
	return map[string]any{
		"client_cost":      record.ClientCost().String(),
		"driver_cost":      record.DriverCost().String(),
		"third_party_cost": record.ThirdPartyCost().String(),
		"fuel_expenses":    record.FuelExpenses().String(),
		"profit":           record.Profit().String(),
	}
}
