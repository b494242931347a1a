package commands

import (
	"context"
	"errors"

	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/pkg/errs"
)

// getOrCreateFinancial loads an order's ledger record, building a fresh one
// with defaults when none exists. The created flag tells the caller whether
// to Add or Update when persisting; the fresh record is not persisted here.
// Defaults: clientCost from the order's agreed price (zero when unset), fuel
// derived from the order's distance, payment status unpaid.
func getOrCreateFinancial(
	ctx context.Context,
	uow LedgerUoW,
	aggregate *order.Order,
) (record *financial.Financial, created bool, err error) {
	record, err = uow.FinancialRepository().GetByOrder(ctx, aggregate.ID())
	if err == nil {
		return record, false, nil
	}
	if !errors.Is(err, errs.ErrObjectNotFound) {
		return nil, false, err
	}

	clientCost := kernel.ZeroMoney()
	if price := aggregate.AgreedPrice(); price != nil {
		clientCost = *price
	}

	record, err = financial.NewFinancial(kernel.NewUUID(), aggregate.ID(), clientCost, aggregate.DistanceKm())
	if err != nil {
		return nil, false, err
	}

	return record, true, nil
}
