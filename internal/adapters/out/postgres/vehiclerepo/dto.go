// Package vehiclerepo persists the fleet.
// A composite unique index on (company_id, reg_number) keeps registration
// numbers unique per company.
package vehiclerepo

import (
	"time"

	"github.com/google/uuid"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/vehicle"
)

// VehicleDTO represents the database structure for fleet vehicles.
type VehicleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_vehicles_company_reg"`
	RegNumber  string    `gorm:"uniqueIndex:idx_vehicles_company_reg"`
	Model      string
	CapacityKg int
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the database table name for vehicles.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

// fromDomain converts a vehicle aggregate to its database representation.
func fromDomain(aggregate *vehicle.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:         aggregate.ID().Bytes(),
		CompanyID:  aggregate.CompanyID().Bytes(),
		RegNumber:  aggregate.RegNumber(),
		Model:      aggregate.Model(),
		CapacityKg: aggregate.Capacity(),
		Status:     aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to a vehicle aggregate.
func toDomain(dto VehicleDTO) (*vehicle.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	status, err := vehicle.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return vehicle.RestoreVehicle(id, companyID, dto.RegNumber, dto.Model, dto.CapacityKg, status)
}
