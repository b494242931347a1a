package eventrepo

import (
	"context"

	"gorm.io/gorm"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/orderevent"
)

// GormOrderEventRepository implements ports.OrderEventRepository using GORM.
// The trail is insert-only; no update or delete exists here on purpose.
type GormOrderEventRepository struct {
	db *gorm.DB
}

// NewGormOrderEventRepository creates a new GORM audit trail repository.
func NewGormOrderEventRepository(db *gorm.DB) *GormOrderEventRepository {
	return &GormOrderEventRepository{db: db}
}

// Add appends an event to an order's trail.
func (r *GormOrderEventRepository) Add(ctx context.Context, event *orderevent.OrderEvent) error {
	if err := event.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(event)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Omit("seq").Create(&dto).Error
}

// ListByOrder retrieves all events of an order, newest first, stable by
// insertion sequence for equal timestamps.
func (r *GormOrderEventRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*orderevent.OrderEvent, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderEventDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at DESC, seq DESC").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	events := make([]*orderevent.OrderEvent, 0, len(dtos))
	for _, dto := range dtos {
		event, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, nil
}
