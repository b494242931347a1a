package queries

import (
	"errors"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/guard"
)

// ErrGetOrderHistoryQueryIsNotConstructed is returned when a
// GetOrderHistoryQuery was not created through its constructor.
var ErrGetOrderHistoryQueryIsNotConstructed = errors.New(
	"GetOrderHistoryQuery must be created via NewGetOrderHistoryQuery constructor",
)

// GetOrderHistoryQuery retrieves an order's audit trail, newest event first.
type GetOrderHistoryQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderHistoryQuery creates a history query for one order.
func NewGetOrderHistoryQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderHistoryQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderHistoryQuery{}, err
	}

	return GetOrderHistoryQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderHistoryQueryIsNotConstructed)
}

// Actor returns the identity running the query.
func (q GetOrderHistoryQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderID returns the order whose trail is requested.
func (q GetOrderHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderHistoryQueryResponse is one audit trail entry.
type GetOrderHistoryQueryResponse struct {
	ID        kernel.UUID
	EventType string
	EventData map[string]any
	CreatedAt time.Time
}
