// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Carries a version column for optimistic concurrency control: every update
// is a compare-and-swap on (id, version).
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID  `gorm:"type:uuid;index"`
	ClientID         uuid.UUID  `gorm:"type:uuid;index"`
	CreatedBy        uuid.UUID  `gorm:"type:uuid"`
	DriverID         *uuid.UUID `gorm:"type:uuid;index"`
	VehicleID        *uuid.UUID `gorm:"type:uuid;index"`
	CargoType        string
	CargoMassKg      int
	Origin           string
	Destination      string
	AgreedPrice      decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	PickupAt         time.Time
	DeliverAt        time.Time `gorm:"index"`
	DistanceKm       decimal.NullDecimal `gorm:"type:numeric(10,2)"`
	Status           string              `gorm:"index"`
	DelayReason      string
	IsViewedByDriver bool
	Version          int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// The version column is managed by the repository, not by this mapping.
func fromDomain(aggregate *order.Order) OrderDTO {
	details := aggregate.Details()

	var agreedPrice decimal.NullDecimal
	if price := aggregate.AgreedPrice(); price != nil {
		agreedPrice = decimal.NewNullDecimal(price.Decimal())
	}
	var distanceKm decimal.NullDecimal
	if distance := aggregate.DistanceKm(); distance != nil {
		distanceKm = decimal.NewNullDecimal(*distance)
	}

	return OrderDTO{
		ID:               aggregate.ID().Bytes(),
		CompanyID:        aggregate.CompanyID().Bytes(),
		ClientID:         aggregate.ClientID().Bytes(),
		CreatedBy:        aggregate.CreatedBy().Bytes(),
		DriverID:         uuidPtr(aggregate.Driver()),
		VehicleID:        uuidPtr(aggregate.Vehicle()),
		CargoType:        details.CargoType,
		CargoMassKg:      details.CargoMassKg,
		Origin:           details.Origin,
		Destination:      details.Destination,
		AgreedPrice:      agreedPrice,
		PickupAt:         details.PickupAt,
		DeliverAt:        details.DeliverAt,
		DistanceKm:       distanceKm,
		Status:           aggregate.Status().String(),
		DelayReason:      aggregate.DelayReason(),
		IsViewedByDriver: aggregate.IsViewedByDriver(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}
	clientID, err := kernel.UUIDFromBytes(dto.ClientID[:])
	if err != nil {
		return nil, err
	}
	createdBy, err := kernel.UUIDFromBytes(dto.CreatedBy[:])
	if err != nil {
		return nil, err
	}
	driverID, err := kernelUUIDPtr(dto.DriverID)
	if err != nil {
		return nil, err
	}
	vehicleID, err := kernelUUIDPtr(dto.VehicleID)
	if err != nil {
		return nil, err
	}
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	var agreedPrice *kernel.Money
	if dto.AgreedPrice.Valid {
		price := kernel.NewMoneyFromDecimal(dto.AgreedPrice.Decimal)
		agreedPrice = &price
	}
	var distanceKm *decimal.Decimal
	if dto.DistanceKm.Valid {
		distance := dto.DistanceKm.Decimal
		distanceKm = &distance
	}

	details := order.Details{
		CargoType:   dto.CargoType,
		CargoMassKg: dto.CargoMassKg,
		Origin:      dto.Origin,
		Destination: dto.Destination,
		AgreedPrice: agreedPrice,
		PickupAt:    dto.PickupAt,
		DeliverAt:   dto.DeliverAt,
		DistanceKm:  distanceKm,
	}

	return order.RestoreOrder(id, companyID, clientID, createdBy, driverID, vehicleID,
		details, status, dto.DelayReason, dto.IsViewedByDriver)
}

func uuidPtr(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func kernelUUIDPtr(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
