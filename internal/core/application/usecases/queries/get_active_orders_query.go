// Package queries contains read-side operations of the CQRS split.
// Query handlers go straight to the database with raw SQL and return plain
// response structs, bypassing the aggregates entirely.
package queries

import (
	"errors"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/guard"
)

// ErrGetActiveOrdersQueryIsNotConstructed is returned when a
// GetActiveOrdersQuery was not created through its constructor.
var ErrGetActiveOrdersQueryIsNotConstructed = errors.New(
	"GetActiveOrdersQuery must be created via NewGetActiveOrdersQuery constructor",
)

// GetActiveOrdersQuery retrieves a company's orders that are still in play,
// meaning every status except completed and cancelled.
type GetActiveOrdersQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetActiveOrdersQuery creates a query scoped to the actor's company.
func NewGetActiveOrdersQuery(actor kernel.Actor) (GetActiveOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetActiveOrdersQuery{}, err
	}

	return GetActiveOrdersQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetActiveOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetActiveOrdersQueryIsNotConstructed)
}

// Actor returns the identity running the query.
func (q GetActiveOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

// GetActiveOrdersQueryResponse is one row of the active orders listing.
type GetActiveOrdersQueryResponse struct {
	ID               kernel.UUID
	Number           string
	ClientID         kernel.UUID
	DriverID         *kernel.UUID
	VehicleID        *kernel.UUID
	Status           string
	DelayReason      string
	Origin           string
	Destination      string
	PickupAt         time.Time
	DeliverAt        time.Time
	IsViewedByDriver bool
}
