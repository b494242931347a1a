package queries

import (
	"errors"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/guard"
)

// ErrGetOrderSummaryQueryIsNotConstructed is returned when a
// GetOrderSummaryQuery was not created through its constructor.
var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves one order together with its ledger figures.
type GetOrderSummaryQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a detail query for one order.
func NewGetOrderSummaryQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := errors.Join(actor.Validate(), orderID.Validate()); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// Actor returns the identity running the query.
func (q GetOrderSummaryQuery) Actor() kernel.Actor {
	return q.actor
}

// OrderID returns the order requested.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderSummaryQueryResponse joins an order with its financial record.
// The ledger fields are nil when the order has no financial record yet.
type GetOrderSummaryQueryResponse struct {
	ID               kernel.UUID
	Number           string
	ClientID         kernel.UUID
	DriverID         *kernel.UUID
	VehicleID        *kernel.UUID
	CargoType        string
	CargoMassKg      int
	Origin           string
	Destination      string
	Status           string
	DelayReason      string
	PickupAt         time.Time
	DeliverAt        time.Time
	IsViewedByDriver bool

	ClientCost     *string
	DriverCost     *string
	ThirdPartyCost *string
	FuelExpenses   *string
	Profit         *string
	PaymentStatus  *string
}
