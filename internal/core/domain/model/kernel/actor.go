package kernel

import (
	"errors"
	"fmt"

	"flowgic/internal/pkg/errs"
)

// Role represents the closed set of user roles in the system. Every operation
// in the core is gated through explicit capability checks on Role rather than
// ad-hoc string comparisons at the entry points.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleDispatcher creates orders and manages assignment, status,
	// payments and financial figures.
	RoleDispatcher

	// RoleManager has the same order-workflow capabilities as a dispatcher.
	RoleManager

	// RoleDriver executes transport: a driver may only move their own
	// assigned orders through the active-transport statuses.
	RoleDriver
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleDispatcher: "dispatcher",
		RoleManager:    "manager",
		RoleDriver:     "driver",
	}
}

// getValidRoleStrings returns only the valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleDispatcher: "dispatcher",
		RoleManager:    "manager",
		RoleDriver:     "driver",
	}
}

// RoleFromString parses a role from its wire representation.
// Returns a ValueIsInvalidError for anything outside the closed set.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is a member of the closed role set.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role. It implements fmt.Stringer and is
// safe to call on any Role value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// CanManageOrders reports whether the role may create orders, assign transport
// and apply arbitrary status transitions.
func (r Role) CanManageOrders() bool {
	return r == RoleDispatcher || r == RoleManager
}

// CanEditFinancials reports whether the role may update payment state and
// financial figures.
func (r Role) CanEditFinancials() bool {
	return r == RoleDispatcher || r == RoleManager
}

// ErrActorIsNotConstructed is returned when an Actor was not created through
// the NewActor factory function.
var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Actor identifies the authenticated caller of a core operation: who they
// are, what role they hold, and which company (tenant) they belong to.
//
// Identity resolution is an external concern; the core trusts the Actor it is
// handed. Actor is threaded explicitly through every state-changing call so
// that audit events can record who performed each change.
type Actor struct {
	userID    UUID
	role      Role
	companyID UUID
}

// NewActor creates a validated Actor.
func NewActor(userID UUID, role Role, companyID UUID) (Actor, error) {
	if err := errors.Join(
		userID.Validate(),
		role.Validate(),
		companyID.Validate(),
	); err != nil {
		return Actor{}, err
	}

	return Actor{
		userID:    userID,
		role:      role,
		companyID: companyID,
	}, nil
}

// Validate ensures the Actor was created via NewActor.
func (a Actor) Validate() error {
	if a.userID.Validate() != nil || a.role.Validate() != nil {
		return ErrActorIsNotConstructed
	}
	return nil
}

// UserID returns the actor's user identifier.
func (a Actor) UserID() UUID {
	return a.userID
}

// Role returns the actor's role.
func (a Actor) Role() Role {
	return a.role
}

// CompanyID returns the actor's tenant identifier.
func (a Actor) CompanyID() UUID {
	return a.companyID
}
