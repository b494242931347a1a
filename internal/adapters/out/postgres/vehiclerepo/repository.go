package vehiclerepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/vehicle"
	"flowgic/internal/pkg/errs"
)

// GormVehicleRepository implements ports.VehicleRepository using GORM.
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GORM fleet repository.
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Add saves a new vehicle.
// The composite unique index rejects a duplicate (company, reg number) pair.
func (r *GormVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Update saves an existing vehicle.
func (r *GormVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&VehicleDTO{}).
		Where("id = ?", dto.ID).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("vehicle", aggregate.ID().String())
	}

	return nil
}

// Get retrieves a vehicle by ID.
func (r *GormVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto VehicleDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("vehicle", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves a company's vehicles free for assignment.
func (r *GormVehicleRepository) GetAllAvailable(ctx context.Context, companyID kernel.UUID) ([]*vehicle.Vehicle, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []VehicleDTO
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status = ?", companyID.Bytes(), vehicle.StatusAvailable.String()).
		Order("reg_number").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	vehicles := make([]*vehicle.Vehicle, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		vehicles = append(vehicles, aggregate)
	}

	return vehicles, nil
}
