package financialrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
)

// versionTracker records the version each aggregate was loaded at so that
// later updates within the same unit of work can compare-and-swap on it.
type versionTracker interface {
	TrackVersion(id kernel.UUID, version int64)
	LoadedVersion(id kernel.UUID) (int64, bool)
}

// GormFinancialRepository implements ports.FinancialRepository using GORM.
type GormFinancialRepository struct {
	db      *gorm.DB
	tracker versionTracker
}

// NewGormFinancialRepository creates a new GORM ledger repository.
func NewGormFinancialRepository(db *gorm.DB, tracker versionTracker) *GormFinancialRepository {
	return &GormFinancialRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new ledger record at version 1.
// The unique index on order_id rejects a second record for the same order.
func (r *GormFinancialRepository) Add(ctx context.Context, aggregate *financial.Financial) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackVersion(aggregate.ID(), dto.Version)
	return nil
}

// Update saves an existing ledger record, guarded by optimistic concurrency
// the same way order updates are.
func (r *GormFinancialRepository) Update(ctx context.Context, aggregate *financial.Financial) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	loaded, ok := r.tracker.LoadedVersion(aggregate.ID())
	if !ok {
		return errs.NewObjectNotFoundError("financial", aggregate.ID().String())
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version = loaded + 1
	result := r.db.WithContext(ctx).Model(&FinancialDTO{}).
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

// GetByOrder retrieves the ledger record of an order.
func (r *GormFinancialRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*financial.Financial, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dto FinancialDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("financial", orderID.String())
		}
		return nil, err
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackVersion(aggregate.ID(), dto.Version)
	return aggregate, nil
}
