// Package ports defines repository interfaces for the logistics domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Writes are guarded by optimistic concurrency: when the stored row has
	// moved past the version the aggregate was loaded at, the update fails
	// with errs.ErrVersionConflict and nothing is written.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllActive retrieves a company's orders that are not in a terminal
	// status, oldest first.
	GetAllActive(ctx context.Context, companyID kernel.UUID) ([]*order.Order, error)

	// GetAllInTransitDueBefore retrieves orders still in transit whose agreed
	// delivery time has passed the given deadline. Used by the delay scan.
	GetAllInTransitDueBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error)
}
