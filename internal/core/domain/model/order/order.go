package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrDeliveryBeforePickup is returned when the delivery timestamp
	// precedes the pickup timestamp.
	ErrDeliveryBeforePickup = errors.New("delivery datetime must not precede pickup datetime")
)

// Details carries the descriptive attributes of an order: what is being
// transported, where, when, and at what agreed price. The struct itself is
// plain data; validation happens inside NewOrder.
type Details struct {
	CargoType   string
	CargoMassKg int
	Origin      string
	Destination string
	AgreedPrice *kernel.Money
	PickupAt    time.Time
	DeliverAt   time.Time
	DistanceKm  *decimal.Decimal
}

// Order is the central aggregate of the back office: a single transport
// request from creation through completion or cancellation.
//
// Order maintains these invariants:
//   - client and company references are always set
//   - cargo mass is positive, origin/destination are non-empty
//   - delivery datetime is never before pickup datetime
//   - status is always a member of the closed status set
//   - the viewed-by-driver flag is set at most once
//
// The driver reference, if set, must carry role=driver; that check belongs to
// the assignment operation, which receives the resolved driver identity.
// Orders are never hard-deleted: cancellation is a status.
type Order struct {
	id        kernel.UUID
	companyID kernel.UUID
	clientID  kernel.UUID
	createdBy kernel.UUID

	driverID  *kernel.UUID
	vehicleID *kernel.UUID

	details Details

	status           Status
	delayReason      string
	isViewedByDriver bool

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in created status with validation.
//
// Parameters:
//   - id: unique identifier for the order
//   - companyID: the tenant the order belongs to
//   - clientID: the requesting client (must belong to the creator's company;
//     enforced at the entry point that resolves the client)
//   - createdBy: the dispatcher creating the order
//   - details: cargo, route, price and schedule attributes
//
// Returns a validation error if any identifier is invalid, cargo or route
// data is missing, mass is not positive, or delivery precedes pickup.
func NewOrder(id, companyID, clientID, createdBy kernel.UUID, details Details) (*Order, error) {
	order := &Order{
		status: StatusCreated,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setCompanyID(companyID),
		order.setClientID(clientID),
		order.setCreatedBy(createdBy),
		order.setDetails(details),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence with its full state.
// The same field validation as NewOrder applies, plus status membership.
func RestoreOrder(
	id, companyID, clientID, createdBy kernel.UUID,
	driverID, vehicleID *kernel.UUID,
	details Details,
	status Status,
	delayReason string,
	isViewedByDriver bool,
) (*Order, error) {
	order, err := NewOrder(id, companyID, clientID, createdBy, details)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	if driverID != nil {
		if err = driverID.Validate(); err != nil {
			return nil, err
		}
	}
	if vehicleID != nil {
		if err = vehicleID.Validate(); err != nil {
			return nil, err
		}
	}

	order.driverID = driverID
	order.vehicleID = vehicleID
	order.status = status
	order.delayReason = delayReason
	order.isViewedByDriver = isViewedByDriver
	return order, nil
}

// Validate ensures the Order was created through a factory method.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-short alias shown in dashboards and documents:
// the first eight hex digits of the UUID, upper-cased.
func (o *Order) Number() string {
	return strings.ToUpper(o.id.String()[:8])
}

// CompanyID returns the tenant the order belongs to.
func (o *Order) CompanyID() kernel.UUID {
	return o.companyID
}

// ClientID returns the requesting client.
func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// CreatedBy returns the dispatcher who created the order.
func (o *Order) CreatedBy() kernel.UUID {
	return o.createdBy
}

// Driver returns the assigned driver's user ID, or nil if unassigned.
func (o *Order) Driver() *kernel.UUID {
	return o.driverID
}

// Vehicle returns the assigned vehicle's ID, or nil if unassigned.
func (o *Order) Vehicle() *kernel.UUID {
	return o.vehicleID
}

// Details returns the order's descriptive attributes.
func (o *Order) Details() Details {
	return o.details
}

// AgreedPrice returns the price agreed with the client, or nil when none
// has been recorded yet.
func (o *Order) AgreedPrice() *kernel.Money {
	return o.details.AgreedPrice
}

// DistanceKm returns the planned route distance, or nil when unknown.
func (o *Order) DistanceKm() *decimal.Decimal {
	return o.details.DistanceKm
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// DelayReason returns the reason recorded for the most recent delay.
func (o *Order) DelayReason() string {
	return o.delayReason
}

// IsViewedByDriver reports whether the assigned driver has opened the order.
func (o *Order) IsViewedByDriver() bool {
	return o.isViewedByDriver
}

// ChangeStatus applies a status transition.
//
// The new status must be a member of the closed status set. When the new
// status equals the current one the order is left untouched and
// errs.ErrStatusUnchanged is returned, so callers can tell "nothing
// happened" apart from a real transition and skip the audit event.
//
// A transition to delayed records the given reason; any other transition
// clears it.
func (o *Order) ChangeStatus(newStatus Status, delayReason string) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	if newStatus == o.status {
		return errs.ErrStatusUnchanged
	}

	o.status = newStatus
	if newStatus == StatusDelayed {
		o.delayReason = delayReason
	} else {
		o.delayReason = ""
	}
	return nil
}

// AssignTransport replaces the order's driver and vehicle references.
// A nil value clears the corresponding field. Assignment does not itself
// change the order's status.
//
// Returns true when either reference actually changed, so the caller knows
// whether to append an assignment event.
func (o *Order) AssignTransport(driverID, vehicleID *kernel.UUID) (bool, error) {
	if driverID != nil {
		if err := driverID.Validate(); err != nil {
			return false, err
		}
	}
	if vehicleID != nil {
		if err := vehicleID.Validate(); err != nil {
			return false, err
		}
	}

	changed := !uuidPtrEqual(o.driverID, driverID) || !uuidPtrEqual(o.vehicleID, vehicleID)
	o.driverID = driverID
	o.vehicleID = vehicleID
	return changed, nil
}

// MarkViewedBy sets the viewed-by-driver flag the first time the assigned
// driver opens the order. Returns true only when the flag actually flipped;
// calls by anyone other than the assigned driver, or repeat calls, are
// silent no-ops.
func (o *Order) MarkViewedBy(driverID kernel.UUID) bool {
	if o.driverID == nil || !o.driverID.IsEqual(driverID) {
		return false
	}
	if o.isViewedByDriver {
		return false
	}
	o.isViewedByDriver = true
	return true
}

// UpdateAgreedPrice records a new agreed price on the order. The financial
// ledger mirrors this value as its client cost.
func (o *Order) UpdateAgreedPrice(price kernel.Money) {
	o.details.AgreedPrice = &price
}

func uuidPtrEqual(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.IsEqual(*b)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("companyId: %w", err)
	}
	o.companyID = id
	return nil
}

func (o *Order) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("clientId: %w", err)
	}
	o.clientID = id
	return nil
}

func (o *Order) setCreatedBy(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return fmt.Errorf("createdBy: %w", err)
	}
	o.createdBy = id
	return nil
}

func (o *Order) setDetails(details Details) error {
	if details.CargoType == "" {
		return errs.NewValueIsRequiredError("cargoType")
	}
	if details.CargoMassKg <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("cargoMassKg",
			fmt.Errorf("%d is not greater than 0", details.CargoMassKg))
	}
	if details.Origin == "" {
		return errs.NewValueIsRequiredError("origin")
	}
	if details.Destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	if details.PickupAt.IsZero() {
		return errs.NewValueIsRequiredError("pickupAt")
	}
	if details.DeliverAt.IsZero() {
		return errs.NewValueIsRequiredError("deliverAt")
	}
	if details.DeliverAt.Before(details.PickupAt) {
		return ErrDeliveryBeforePickup
	}
	if details.DistanceKm != nil && details.DistanceKm.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("distanceKm",
			fmt.Errorf("%s is negative", details.DistanceKm.String()))
	}
	if details.AgreedPrice != nil && details.AgreedPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("agreedPrice",
			fmt.Errorf("%s is negative", details.AgreedPrice.String()))
	}

	o.details = details
	return nil
}
