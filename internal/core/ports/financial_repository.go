package ports

import (
	"context"

	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
)

// FinancialRepository defines the persistence contract for the per-order
// financial ledger. The storage layer enforces the one-record-per-order
// invariant with a unique index on the order reference.
type FinancialRepository interface {
	// Add persists a new financial record.
	// Fails when the order already has one.
	Add(ctx context.Context, aggregate *financial.Financial) error

	// Update persists changes to an existing financial record, guarded by
	// optimistic concurrency the same way order updates are.
	Update(ctx context.Context, aggregate *financial.Financial) error

	// GetByOrder retrieves the financial record of an order.
	// Returns errs.ObjectNotFoundError when the order has none yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (*financial.Financial, error)
}
