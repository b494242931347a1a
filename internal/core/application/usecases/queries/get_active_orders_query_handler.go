package queries

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
)

// GetActiveOrdersQueryHandler lists a company's non-terminal orders for the
// dispatch board, oldest first.
type GetActiveOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetActiveOrdersQueryHandler creates a handler for the active orders listing.
// Requires a GORM database connection for query execution.
func NewGetActiveOrdersQueryHandler(db *gorm.DB) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetActiveOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetActiveOrdersQuery,
) ([]GetActiveOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetActiveOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			client_id,
			driver_id,
			vehicle_id,
			status,
			delay_reason,
			origin,
			destination,
			pickup_at,
			deliver_at,
			is_viewed_by_driver
		FROM orders
		WHERE company_id = ? AND status NOT IN (?, ?)
		ORDER BY created_at
	`, query.Actor().CompanyID().Bytes(), order.StatusCompleted.String(), order.StatusCancelled.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetActiveOrdersQueryResponse
		var id uuid.UUID
		var clientID uuid.UUID
		var driverID, vehicleID uuid.NullUUID

		err = rows.Scan(
			&id,
			&clientID,
			&driverID,
			&vehicleID,
			&resp.Status,
			&resp.DelayReason,
			&resp.Origin,
			&resp.Destination,
			&resp.PickupAt,
			&resp.DeliverAt,
			&resp.IsViewedByDriver,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
			return nil, err
		}
		if resp.DriverID, err = optionalUUID(driverID); err != nil {
			return nil, err
		}
		if resp.VehicleID, err = optionalUUID(vehicleID); err != nil {
			return nil, err
		}
		resp.Number = strings.ToUpper(resp.ID.String()[:8])

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// optionalUUID converts a nullable database uuid into the kernel type.
func optionalUUID(id uuid.NullUUID) (*kernel.UUID, error) {
	if !id.Valid {
		return nil, nil
	}
	converted, err := kernel.UUIDFromBytes(id.UUID[:])
	if err != nil {
		return nil, err
	}
	return &converted, nil
}
