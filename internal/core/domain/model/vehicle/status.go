package vehicle

import (
	"fmt"

	"flowgic/internal/pkg/errs"
)

// Status represents the operational state of a vehicle.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusAvailable means the vehicle is free to be assigned to an order.
	StatusAvailable

	// StatusInTrip means the vehicle is currently serving an order.
	StatusInTrip

	// StatusMaintenance means the vehicle is in the workshop.
	StatusMaintenance

	// StatusBlocked means the vehicle is administratively withdrawn from use.
	StatusBlocked
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:     "unknown",
		StatusAvailable:   "available",
		StatusInTrip:      "in_trip",
		StatusMaintenance: "maintenance",
		StatusBlocked:     "blocked",
	}
}

// getValidStatusStrings returns only the valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	m := getStatusStrings()
	delete(m, StatusUnknown)
	return m
}

// StatusFromString parses a vehicle status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid vehicle status", s))
}

// Validate checks if the Status is a member of the closed set.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid vehicle status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsAssignable reports whether a vehicle in this status may be put on an order.
func (s Status) IsAssignable() bool {
	return s == StatusAvailable
}
