package queries

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
)

// GetOrderSummaryQueryHandler reads one order joined with its ledger record
// for the order detail surface.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order detail queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the detail query.
// Orders outside the actor's company are reported as not found.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.client_id,
			o.driver_id,
			o.vehicle_id,
			o.cargo_type,
			o.cargo_mass_kg,
			o.origin,
			o.destination,
			o.status,
			o.delay_reason,
			o.pickup_at,
			o.deliver_at,
			o.is_viewed_by_driver,
			f.client_cost,
			f.driver_cost,
			f.third_party_cost,
			f.fuel_expenses,
			f.profit,
			f.payment_status
		FROM orders o
		LEFT JOIN financials f ON f.order_id = o.id
		WHERE o.id = ? AND o.company_id = ?
	`, query.OrderID().Bytes(), query.Actor().CompanyID().Bytes()).Row()

	var resp GetOrderSummaryQueryResponse
	var id, clientID uuid.UUID
	var driverID, vehicleID uuid.NullUUID
	var clientCost, driverCost, thirdPartyCost, fuelExpenses, profit, paymentStatus sql.NullString

	err := row.Scan(
		&id,
		&clientID,
		&driverID,
		&vehicleID,
		&resp.CargoType,
		&resp.CargoMassKg,
		&resp.Origin,
		&resp.Destination,
		&resp.Status,
		&resp.DelayReason,
		&resp.PickupAt,
		&resp.DeliverAt,
		&resp.IsViewedByDriver,
		&clientCost,
		&driverCost,
		&thirdPartyCost,
		&fuelExpenses,
		&profit,
		&paymentStatus,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderSummaryQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	if resp.ClientID, err = kernel.UUIDFromBytes(clientID[:]); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	if resp.DriverID, err = optionalUUID(driverID); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	if resp.VehicleID, err = optionalUUID(vehicleID); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	resp.Number = strings.ToUpper(resp.ID.String()[:8])

	resp.ClientCost = nullableString(clientCost)
	resp.DriverCost = nullableString(driverCost)
	resp.ThirdPartyCost = nullableString(thirdPartyCost)
	resp.FuelExpenses = nullableString(fuelExpenses)
	resp.Profit = nullableString(profit)
	resp.PaymentStatus = nullableString(paymentStatus)

	return resp, nil
}

// nullableString converts a nullable column into an optional value.
func nullableString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
