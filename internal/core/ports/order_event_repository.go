package ports

import (
	"context"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/orderevent"
)

// OrderEventRepository defines the persistence contract for the audit trail.
// The trail is append-only: there is no update or delete operation.
type OrderEventRepository interface {
	// Add appends an event to an order's trail.
	Add(ctx context.Context, event *orderevent.OrderEvent) error

	// ListByOrder retrieves all events of an order, newest first. Events with
	// equal timestamps keep a stable order by insertion sequence.
	ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*orderevent.OrderEvent, error)
}
