package orderrepo

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/pkg/errs"
)

// versionTracker records the version each aggregate was loaded at so that
// later updates within the same unit of work can compare-and-swap on it.
type versionTracker interface {
	TrackVersion(id kernel.UUID, version int64)
	LoadedVersion(id kernel.UUID) (int64, bool)
}

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker versionTracker
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker versionTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database at version 1.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackVersion(aggregate.ID(), dto.Version)
	return nil
}

// Update saves an existing order, guarded by optimistic concurrency.
// The write only applies when the stored version still equals the version
// the aggregate was loaded at; otherwise errs.ErrVersionConflict is returned
// and nothing changes.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loaded, ok := r.tracker.LoadedVersion(aggregate.ID())
	if !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	dto := fromDomain(aggregate)
	dto.Version = loaded + 1
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, loaded).
		Select("*").Omit("id", "created_at").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.ErrVersionConflict
	}

	r.tracker.TrackVersion(aggregate.ID(), dto.Version)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	r.tracker.TrackVersion(id, dto.Version)
	return toDomain(dto)
}

// GetAllActive retrieves a company's non-terminal orders, oldest first.
func (r *GormOrderRepository) GetAllActive(ctx context.Context, companyID kernel.UUID) ([]*order.Order, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND status NOT IN (?, ?)",
			companyID.Bytes(), order.StatusCompleted.String(), order.StatusCancelled.String()).
		Order("created_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllInTransitDueBefore retrieves in-transit orders whose delivery
// deadline has passed.
func (r *GormOrderRepository) GetAllInTransitDueBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Where("status = ? AND deliver_at < ?", order.StatusInTransit.String(), deadline).
		Order("deliver_at").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormOrderRepository) toDomainAll(dtos []OrderDTO) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, err := toDomain(dto)
		if err != nil {
			return nil, err
		}

		r.tracker.TrackVersion(aggregate.ID(), dto.Version)
		orders = append(orders, aggregate)
	}

	return orders, nil
}
