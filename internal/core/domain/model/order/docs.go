// Package order provides the central aggregate of the flowgic back office:
// the transport order, its status state machine, driver/vehicle assignment,
// and the viewed-by-driver flag.
//
// The package enforces the order's structural invariants (required client and
// route data, positive cargo mass, delivery not before pickup) and the status
// rules: only members of the closed status set are accepted, and a transition
// to the current status is reported as a distinct no-op rather than silently
// succeeding, so callers never emit spurious audit events.
//
// Role gating is deliberately outside this package: handlers combine
// kernel.Role capability checks with Status.AllowedForDriver to decide who may
// apply which transition.
package order
