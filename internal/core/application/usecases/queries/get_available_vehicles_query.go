package queries

import (
	"errors"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/guard"
)

// ErrGetAvailableVehiclesQueryIsNotConstructed is returned when a
// GetAvailableVehiclesQuery was not created through its constructor.
var ErrGetAvailableVehiclesQueryIsNotConstructed = errors.New(
	"GetAvailableVehiclesQuery must be created via NewGetAvailableVehiclesQuery constructor",
)

// GetAvailableVehiclesQuery retrieves a company's vehicles that can take a
// new assignment.
type GetAvailableVehiclesQuery struct {
	actor kernel.Actor

	guard guard.ConstructorGuard
}

// NewGetAvailableVehiclesQuery creates a query scoped to the actor's company.
func NewGetAvailableVehiclesQuery(actor kernel.Actor) (GetAvailableVehiclesQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetAvailableVehiclesQuery{}, err
	}

	return GetAvailableVehiclesQuery{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableVehiclesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableVehiclesQueryIsNotConstructed)
}

// Actor returns the identity running the query.
func (q GetAvailableVehiclesQuery) Actor() kernel.Actor {
	return q.actor
}

// GetAvailableVehiclesQueryResponse is one row of the fleet listing.
type GetAvailableVehiclesQueryResponse struct {
	ID         kernel.UUID
	RegNumber  string
	Model      string
	CapacityKg int
	Status     string
}
