package ports

import (
	"context"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/vehicle"
)

// VehicleRepository defines the persistence contract for the fleet.
// The storage layer keeps registration numbers unique per company.
type VehicleRepository interface {
	// Add persists a new vehicle.
	// Fails when the company already has one with the same registration number.
	Add(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Update persists changes to an existing vehicle.
	Update(ctx context.Context, aggregate *vehicle.Vehicle) error

	// Get retrieves a vehicle by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error)

	// GetAllAvailable retrieves a company's vehicles free for assignment.
	GetAllAvailable(ctx context.Context, companyID kernel.UUID) ([]*vehicle.Vehicle, error)
}
