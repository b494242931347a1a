package queries

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
)

// GetOrderHistoryQueryHandler reads an order's audit trail.
// Events come back newest first; events sharing a timestamp keep a stable
// order by insertion sequence. Orders outside the actor's company are
// reported as not found.
type GetOrderHistoryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderHistoryQueryHandler creates a handler for history queries.
func NewGetOrderHistoryQueryHandler(db *gorm.DB) GetOrderHistoryQueryHandler {
	return GetOrderHistoryQueryHandler{db: db}
}

// Handle executes the history query.
func (h GetOrderHistoryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderHistoryQuery,
) ([]GetOrderHistoryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var count int64
	err := h.db.WithContext(ctx).Raw(`
		SELECT COUNT(*) FROM orders WHERE id = ? AND company_id = ?
	`, query.OrderID().Bytes(), query.Actor().CompanyID().Bytes()).Scan(&count).Error
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	events := make([]GetOrderHistoryQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			event_type,
			event_data,
			created_at
		FROM order_events
		WHERE order_id = ?
		ORDER BY created_at DESC, seq DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrderHistoryQueryResponse
		var id uuid.UUID
		var payload []byte

		if err = rows.Scan(&id, &resp.EventType, &payload, &resp.CreatedAt); err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if len(payload) > 0 {
			if err = json.Unmarshal(payload, &resp.EventData); err != nil {
				return nil, err
			}
		}

		events = append(events, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}
