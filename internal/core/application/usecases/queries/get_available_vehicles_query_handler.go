package queries

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/vehicle"
)

// GetAvailableVehiclesQueryHandler lists a company's assignable vehicles,
// ordered by registration number.
type GetAvailableVehiclesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableVehiclesQueryHandler creates a handler for the fleet listing.
// Requires a GORM database connection for query execution.
func NewGetAvailableVehiclesQueryHandler(db *gorm.DB) GetAvailableVehiclesQueryHandler {
	return GetAvailableVehiclesQueryHandler{db: db}
}

// Handle executes the listing query.
func (h GetAvailableVehiclesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableVehiclesQuery,
) ([]GetAvailableVehiclesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	vehicles := make([]GetAvailableVehiclesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			reg_number,
			model,
			capacity_kg,
			status
		FROM vehicles
		WHERE company_id = ? AND status = ?
		ORDER BY reg_number
	`, query.Actor().CompanyID().Bytes(), vehicle.StatusAvailable.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableVehiclesQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.RegNumber,
			&resp.Model,
			&resp.CapacityKg,
			&resp.Status,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}

		vehicles = append(vehicles, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return vehicles, nil
}
