// Package eventrepo persists the append-only audit trail of orders.
// The seq column is a bigserial that fixes insertion order, so events with
// equal timestamps still come back in a stable order.
package eventrepo

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/orderevent"
)

// OrderEventDTO represents the database structure for audit events.
type OrderEventDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Seq       int64     `gorm:"type:bigserial;uniqueIndex;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	EventType string
	EventData []byte    `gorm:"type:jsonb"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for audit events.
func (OrderEventDTO) TableName() string {
	return "order_events"
}

// fromDomain converts an audit event to its database representation.
func fromDomain(event *orderevent.OrderEvent) (OrderEventDTO, error) {
	var payload []byte
	if data := event.EventData(); data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return OrderEventDTO{}, err
		}
		payload = raw
	}

	return OrderEventDTO{
		ID:        event.ID().Bytes(),
		OrderID:   event.OrderID().Bytes(),
		EventType: event.EventType().String(),
		EventData: payload,
		CreatedAt: event.CreatedAt(),
	}, nil
}

// toDomain converts a database DTO to an audit event.
func toDomain(dto OrderEventDTO) (*orderevent.OrderEvent, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	eventType, err := orderevent.TypeFromString(dto.EventType)
	if err != nil {
		return nil, err
	}

	var data orderevent.Data
	if len(dto.EventData) > 0 {
		if err = json.Unmarshal(dto.EventData, &data); err != nil {
			return nil, err
		}
	}

	return orderevent.New(id, orderID, eventType, data, dto.CreatedAt)
}
