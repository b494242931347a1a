package order

import (
	"fmt"

	"flowgic/internal/pkg/errs"
)

// Status represents the lifecycle state of a transport order.
//
// The status domain is ordered but not strictly linear:
//
//	created ──> assigned ──> loading ──> in_transit ──┬──> delivered ──> completed
//	                                        ↑  │      │
//	                                        │  ↓      └──> cancelled
//	                                       delayed
//
// delayed and in_transit are mutually re-enterable: a delayed order can
// resume transit. The core validates only membership in the closed set and
// whether a transition actually changes anything; which statuses a given
// role may apply is decided by the caller's authorization gate.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusCreated is the initial status when an order is first created.
	StatusCreated

	// StatusAssigned indicates a driver and/or vehicle has been assigned.
	StatusAssigned

	// StatusLoading indicates cargo is being loaded at the origin.
	StatusLoading

	// StatusInTransit indicates the order is on the road.
	StatusInTransit

	// StatusDelayed indicates transport was interrupted; the order can
	// resume to in_transit.
	StatusDelayed

	// StatusDelivered indicates the cargo reached its destination.
	StatusDelivered

	// StatusCompleted indicates all follow-up on a delivered order is done.
	StatusCompleted

	// StatusCancelled marks an order as cancelled. Cancellation is a
	// status, not a deletion: the order and its audit trail remain.
	StatusCancelled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "unknown",
		StatusCreated:   "created",
		StatusAssigned:  "assigned",
		StatusLoading:   "loading",
		StatusInTransit: "in_transit",
		StatusDelayed:   "delayed",
		StatusDelivered: "delivered",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusCreated:   "created",
		StatusAssigned:  "assigned",
		StatusLoading:   "loading",
		StatusInTransit: "in_transit",
		StatusDelayed:   "delayed",
		StatusDelivered: "delivered",
		StatusCompleted: "completed",
		StatusCancelled: "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
// Unknown values are rejected with a ValueIsInvalidError.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status is a member of the closed status set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer and
// is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the order lifecycle.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// AllowedForDriver reports whether an assigned driver may apply this status
// to their own order. Drivers move orders only through the statuses of
// active transport; everything else is dispatcher/manager territory.
func (s Status) AllowedForDriver() bool {
	return s == StatusLoading || s == StatusInTransit || s == StatusDelivered
}
