package orderevent

import (
	"errors"
	"fmt"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"
)

// ErrOrderEventIsNotConstructed is returned when an OrderEvent was not
// created through the New factory function.
var ErrOrderEventIsNotConstructed = errors.New("OrderEvent must be created via New constructor")

// Type enumerates the kinds of events the audit trail records.
type Type int

const (
	// TypeUnknown represents an invalid or undefined event type.
	TypeUnknown Type = iota

	// TypeAssigned records a driver/vehicle assignment change.
	TypeAssigned

	// TypeLoaded records cargo loading at the origin.
	TypeLoaded

	// TypeDeparted records departure from the origin.
	TypeDeparted

	// TypeTemperatureViolation records a cargo temperature excursion.
	TypeTemperatureViolation

	// TypeDelivered records arrival at the destination.
	TypeDelivered

	// TypeDocumentSigned records a signed transport document.
	TypeDocumentSigned

	// TypeStatusChanged records an order status transition.
	TypeStatusChanged

	// TypePaymentUpdated records a payment-status change.
	TypePaymentUpdated

	// TypeFinancialsUpdated records an edit of the ledger's cost figures.
	TypeFinancialsUpdated

	// TypeLocationUpdate records a reported vehicle position.
	TypeLocationUpdate
)

// getTypeStrings returns a map of Type values to their wire representations.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:              "unknown",
		TypeAssigned:             "assigned",
		TypeLoaded:               "loaded",
		TypeDeparted:             "departed",
		TypeTemperatureViolation: "temperature_violation",
		TypeDelivered:            "delivered",
		TypeDocumentSigned:       "document_signed",
		TypeStatusChanged:        "status_changed",
		TypePaymentUpdated:       "payment_updated",
		TypeFinancialsUpdated:    "financials_updated",
		TypeLocationUpdate:       "location_update",
	}
}

// getValidTypeStrings returns only the valid Type values.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // TypeUnknown is intentionally excluded as it's invalid
	m := getTypeStrings()
	delete(m, TypeUnknown)
	return m
}

// TypeFromString parses an event type from its wire representation.
func TypeFromString(s string) (Type, error) {
	for eventType, str := range getValidTypeStrings() {
		if str == s {
			return eventType, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause("eventType",
		fmt.Errorf("%q is not a valid event type", s))
}

// Validate checks if the Type is a member of the closed set.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("eventType",
			fmt.Errorf("%d is not a valid event type", t))
	}
	return nil
}

// String returns the wire name of the event type.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "unknown"
}

// Data is the open structured payload of an event. The core guarantees only
// the keys it writes itself (old/new status, amounts, actor); consumers must
// not assume a fixed schema beyond those.
type Data map[string]any

// OrderEvent is one immutable entry of an order's audit trail. Events are
// append-only: no update or delete operation exists anywhere in the contract,
// and repeated events of the same type per order are expected (for example
// one payment_updated per installment).
type OrderEvent struct {
	id        kernel.UUID
	orderID   kernel.UUID
	eventType Type
	data      Data
	createdAt time.Time

	guard guard.ConstructorGuard
}

// New creates an audit event for an order. The payload may be nil for events
// that carry no detail.
func New(id, orderID kernel.UUID, eventType Type, data Data, createdAt time.Time) (*OrderEvent, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		eventType.Validate(),
	); err != nil {
		return nil, err
	}
	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}

	return &OrderEvent{
		id:        id,
		orderID:   orderID,
		eventType: eventType,
		data:      data,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the event was created through New.
func (e *OrderEvent) Validate() error {
	if e == nil {
		return ErrOrderEventIsNotConstructed
	}
	return e.guard.Validate(ErrOrderEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e *OrderEvent) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order the event belongs to.
func (e *OrderEvent) OrderID() kernel.UUID {
	return e.orderID
}

// EventType returns the kind of change the event records.
func (e *OrderEvent) EventType() Type {
	return e.eventType
}

// EventData returns the opaque structured payload.
func (e *OrderEvent) EventData() Data {
	return e.data
}

// CreatedAt returns when the event was appended.
func (e *OrderEvent) CreatedAt() time.Time {
	return e.createdAt
}
