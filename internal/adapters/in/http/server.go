// Package http exposes the back office over HTTP. The server is a thin
// shell: it resolves the caller's identity from gateway headers, translates
// JSON bodies into commands and queries, and maps domain errors onto status
// codes. No business rule lives here.
package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"flowgic/internal/core/application/usecases/commands"
	"flowgic/internal/core/application/usecases/queries"
	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/generated/servers"
	"flowgic/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Identity headers set by the gateway. They are trusted as given;
// authentication happens upstream.
const (
	headerUserID    = "X-User-Id"
	headerUserRole  = "X-User-Role"
	headerCompanyID = "X-Company-Id"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface so bound request bodies are checked against their struct tags.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator used for request bodies.
func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks a bound request body against its validation tags.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// Server implements the generated ServerInterface. It coordinates between
// HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler       commands.CreateOrderCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	assignOrderHandler       commands.AssignOrderCommandHandler
	markOrderViewedHandler   commands.MarkOrderViewedCommandHandler
	ensureFinancialHandler   commands.EnsureFinancialCommandHandler
	applyPaymentHandler      commands.ApplyPaymentCommandHandler
	updateFinancialsHandler  commands.UpdateFinancialsCommandHandler
	createVehicleHandler     commands.CreateVehicleCommandHandler

	// Query handlers
	getActiveOrdersHandler      queries.GetActiveOrdersQueryHandler
	getOrderSummaryHandler      queries.GetOrderSummaryQueryHandler
	getOrderHistoryHandler      queries.GetOrderHistoryQueryHandler
	getAvailableVehiclesHandler queries.GetAvailableVehiclesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	assignOrderHandler commands.AssignOrderCommandHandler,
	markOrderViewedHandler commands.MarkOrderViewedCommandHandler,
	ensureFinancialHandler commands.EnsureFinancialCommandHandler,
	applyPaymentHandler commands.ApplyPaymentCommandHandler,
	updateFinancialsHandler commands.UpdateFinancialsCommandHandler,
	createVehicleHandler commands.CreateVehicleCommandHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getOrderSummaryHandler queries.GetOrderSummaryQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getAvailableVehiclesHandler queries.GetAvailableVehiclesQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:          createOrderHandler,
		changeOrderStatusHandler:    changeOrderStatusHandler,
		assignOrderHandler:          assignOrderHandler,
		markOrderViewedHandler:      markOrderViewedHandler,
		ensureFinancialHandler:      ensureFinancialHandler,
		applyPaymentHandler:         applyPaymentHandler,
		updateFinancialsHandler:     updateFinancialsHandler,
		createVehicleHandler:        createVehicleHandler,
		getActiveOrdersHandler:      getActiveOrdersHandler,
		getOrderSummaryHandler:      getOrderSummaryHandler,
		getOrderHistoryHandler:      getOrderHistoryHandler,
		getAvailableVehiclesHandler: getAvailableVehiclesHandler,
	}
}

// actorFromRequest builds the caller identity from the gateway headers.
func (s *Server) actorFromRequest(ctx echo.Context) (kernel.Actor, error) {
	header := ctx.Request().Header

	userID, err := kernel.UUIDFromString(header.Get(headerUserID))
	if err != nil {
		return kernel.Actor{}, err
	}

	role, err := kernel.RoleFromString(header.Get(headerUserRole))
	if err != nil {
		return kernel.Actor{}, err
	}

	companyID, err := kernel.UUIDFromString(header.Get(headerCompanyID))
	if err != nil {
		return kernel.Actor{}, err
	}

	return kernel.NewActor(userID, role, companyID)
}

// writeError maps a domain error onto an HTTP status and a JSON error body.
func writeError(ctx echo.Context, err error) error {
	var code int
	switch {
	case errors.Is(err, errs.ErrStatusUnchanged),
		errors.Is(err, errs.ErrPaymentUnchanged),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	case errors.Is(err, errs.ErrPermissionDenied):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrVersionConflict):
		code = http.StatusConflict
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(code, servers.Error{
		Code:    code,
		Message: err.Error(),
	})
}

func badIdentity(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid identity headers",
	})
}

func badBody(ctx echo.Context) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request body",
	})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	var body servers.CreateOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badBody(ctx)
	}
	if err = ctx.Validate(&body); err != nil {
		return err
	}

	clientID, err := kernel.UUIDFromBytes(body.ClientId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	details := order.Details{
		CargoType:   body.CargoType,
		CargoMassKg: body.CargoMassKg,
		Origin:      body.Origin,
		Destination: body.Destination,
		PickupAt:    body.PickupAt,
		DeliverAt:   body.DeliverAt,
	}

	if body.AgreedPrice != nil {
		price, priceErr := kernel.MoneyFromString(*body.AgreedPrice)
		if priceErr != nil {
			return writeError(ctx, priceErr)
		}
		details.AgreedPrice = &price
	}

	if body.DistanceKm != nil {
		distance, distErr := decimal.NewFromString(*body.DistanceKm)
		if distErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("distanceKm", distErr))
		}
		details.DistanceKm = &distance
	}

	orderID := kernel.NewUUID()

	cmd, err := commands.NewCreateOrderCommand(actor, orderID, clientID, details)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderRef{
		Id:     orderID.Bytes(),
		Number: strings.ToUpper(orderID.String()[:8]),
	})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	query, err := queries.NewGetActiveOrdersQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = servers.Order{
			Id:               o.ID.Bytes(),
			Number:           o.Number,
			ClientId:         o.ClientID.Bytes(),
			DriverId:         optionalUUIDBytes(o.DriverID),
			VehicleId:        optionalUUIDBytes(o.VehicleID),
			Status:           o.Status,
			DelayReason:      optionalString(o.DelayReason),
			Origin:           o.Origin,
			Destination:      o.Destination,
			PickupAt:         o.PickupAt,
			DeliverAt:        o.DeliverAt,
			IsViewedByDriver: o.IsViewedByDriver,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderSummary handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrderSummary(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderSummaryQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	summary, err := s.getOrderSummaryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := servers.OrderSummary{
		Id:               summary.ID.Bytes(),
		Number:           summary.Number,
		ClientId:         summary.ClientID.Bytes(),
		DriverId:         optionalUUIDBytes(summary.DriverID),
		VehicleId:        optionalUUIDBytes(summary.VehicleID),
		CargoType:        summary.CargoType,
		CargoMassKg:      summary.CargoMassKg,
		Origin:           summary.Origin,
		Destination:      summary.Destination,
		Status:           summary.Status,
		DelayReason:      optionalString(summary.DelayReason),
		PickupAt:         summary.PickupAt,
		DeliverAt:        summary.DeliverAt,
		IsViewedByDriver: summary.IsViewedByDriver,
	}

	if summary.ClientCost != nil {
		response.Financials = &servers.Financial{
			ClientCost:     *summary.ClientCost,
			DriverCost:     derefOr(summary.DriverCost, "0.00"),
			ThirdPartyCost: derefOr(summary.ThirdPartyCost, "0.00"),
			FuelExpenses:   derefOr(summary.FuelExpenses, "0.00"),
			Profit:         derefOr(summary.Profit, "0.00"),
			PaymentStatus:  derefOr(summary.PaymentStatus, financial.PaymentUnpaid.String()),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AssignOrder handles POST /api/v1/orders/{orderId}/assign.
func (s *Server) AssignOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.AssignOrderJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badBody(ctx)
	}

	// The gateway resolves driver identity; the company scope is the
	// caller's own.
	var driver *kernel.Actor
	if body.DriverId != nil {
		driverID, idErr := kernel.UUIDFromBytes((*body.DriverId)[:])
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		resolved, actorErr := kernel.NewActor(driverID, kernel.RoleDriver, actor.CompanyID())
		if actorErr != nil {
			return writeError(ctx, actorErr)
		}
		driver = &resolved
	}

	var vehicleID *kernel.UUID
	if body.VehicleId != nil {
		converted, idErr := kernel.UUIDFromBytes((*body.VehicleId)[:])
		if idErr != nil {
			return writeError(ctx, idErr)
		}
		vehicleID = &converted
	}

	cmd, err := commands.NewAssignOrderCommand(actor, orderID, driver, vehicleID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateFinancials handles PATCH /api/v1/orders/{orderId}/financials.
func (s *Server) UpdateFinancials(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.UpdateFinancialsJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badBody(ctx)
	}

	var changes financial.CostChanges
	if changes.ClientCost, err = optionalMoney(body.ClientCost); err != nil {
		return writeError(ctx, err)
	}
	if changes.DriverCost, err = optionalMoney(body.DriverCost); err != nil {
		return writeError(ctx, err)
	}
	if changes.FuelExpenses, err = optionalMoney(body.FuelExpenses); err != nil {
		return writeError(ctx, err)
	}
	if changes.ThirdPartyCost, err = optionalMoney(body.ThirdPartyCost); err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateFinancialsCommand(actor, orderID, changes)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateFinancialsHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// EnsureFinancial handles POST /api/v1/orders/{orderId}/financials.
func (s *Server) EnsureFinancial(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewEnsureFinancialCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	record, err := s.ensureFinancialHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	response := servers.Financial{
		ClientCost:     record.ClientCost().String(),
		DriverCost:     record.DriverCost().String(),
		ThirdPartyCost: record.ThirdPartyCost().String(),
		FuelExpenses:   record.FuelExpenses().String(),
		Profit:         record.Profit().String(),
		PaymentStatus:  record.PaymentStatus().String(),
	}
	if plan := record.PaymentPlan(); plan != nil {
		response.PaymentPlan = &servers.PaymentPlan{
			Amount:    plan.Amount.String(),
			UpdatedBy: plan.UpdatedBy,
			UpdatedAt: plan.UpdatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrderHistory handles GET /api/v1/orders/{orderId}/history.
func (s *Server) GetOrderHistory(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetOrderHistoryQuery(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	events, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.OrderEvent, len(events))
	for i, event := range events {
		response[i] = servers.OrderEvent{
			Id:        event.ID.Bytes(),
			EventType: event.EventType,
			CreatedAt: event.CreatedAt,
		}
		if event.EventData != nil {
			data := map[string]interface{}(event.EventData)
			response[i].EventData = &data
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ApplyPayment handles POST /api/v1/orders/{orderId}/payments.
func (s *Server) ApplyPayment(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.ApplyPaymentJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badBody(ctx)
	}

	markPaid := body.MarkPaid != nil && *body.MarkPaid
	partialAmount, err := optionalMoney(body.PartialAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewApplyPaymentCommand(actor, orderID, markPaid, partialAmount)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.applyPaymentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles PATCH /api/v1/orders/{orderId}/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var body servers.ChangeOrderStatusJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badBody(ctx)
	}
	if err = ctx.Validate(&body); err != nil {
		return err
	}

	newStatus, err := order.StatusFromString(body.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	var delayReason string
	if body.DelayReason != nil {
		delayReason = *body.DelayReason
	}

	cmd, err := commands.NewChangeOrderStatusCommand(actor, orderID, newStatus, delayReason)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkOrderViewed handles POST /api/v1/orders/{orderId}/viewed.
func (s *Server) MarkOrderViewed(ctx echo.Context, orderId openapi_types.UUID) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderViewedCommand(actor, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.markOrderViewedHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateVehicle handles POST /api/v1/vehicles.
func (s *Server) CreateVehicle(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	var body servers.CreateVehicleJSONRequestBody
	if err = ctx.Bind(&body); err != nil {
		return badBody(ctx)
	}
	if err = ctx.Validate(&body); err != nil {
		return err
	}

	cmd, err := commands.NewCreateVehicleCommand(actor, kernel.NewUUID(), body.RegNumber, body.Model, body.CapacityKg)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createVehicleHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetAvailableVehicles handles GET /api/v1/vehicles/available.
func (s *Server) GetAvailableVehicles(ctx echo.Context) error {
	actor, err := s.actorFromRequest(ctx)
	if err != nil {
		return badIdentity(ctx)
	}

	query, err := queries.NewGetAvailableVehiclesQuery(actor)
	if err != nil {
		return writeError(ctx, err)
	}

	vehicles, err := s.getAvailableVehiclesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]servers.Vehicle, len(vehicles))
	for i, v := range vehicles {
		response[i] = servers.Vehicle{
			Id:         v.ID.Bytes(),
			RegNumber:  v.RegNumber,
			Model:      v.Model,
			CapacityKg: v.CapacityKg,
			Status:     v.Status,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func optionalUUIDBytes(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	converted := id.Bytes()
	return &converted
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optionalMoney(s *string) (*kernel.Money, error) {
	if s == nil {
		return nil, nil
	}
	amount, err := kernel.MoneyFromString(*s)
	if err != nil {
		return nil, err
	}
	return &amount, nil
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
