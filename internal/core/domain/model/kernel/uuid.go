package kernel

import (
	"fmt"

	"flowgic/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrUUIDIsNotConstructed is returned by Validate for a zero-value UUID,
// i.e. one that did not come out of a constructor function.
var ErrUUIDIsNotConstructed = errs.NewValueIsRequiredError("UUID must be created via NewUUID, UUIDFromString, or UUIDFromBytes")

// UUID is the identifier value object shared by every aggregate in the
// back office: orders, companies, drivers, vehicles, ledger records and
// audit events all carry one. It wraps github.com/google/uuid so that the
// rest of the domain never touches the library type directly.
//
// The zero value is invalid; obtain instances through NewUUID,
// UUIDFromString, or UUIDFromBytes. Values are immutable and safe to copy.
//
// Example:
//
//	orderID := kernel.NewUUID()
//
//	companyID, err := kernel.UUIDFromString("550e8400-e29b-41d4-a716-446655440000")
//	if err != nil {
//	    // handle error
//	}
type UUID struct {
	id uuid.UUID
}

// NewUUID generates a random version 4 UUID. This is how every new
// aggregate gets its identity.
func NewUUID() UUID {
	return UUID{
		id: uuid.New(),
	}
}

// UUIDFromString parses a UUID from its text form. The plain
// "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx" layout as well as the braced and
// urn:uuid: variants are accepted. It is the entry point for identifiers
// arriving over HTTP or read back from storage.
//
// Example:
//
//	driverID, err := kernel.UUIDFromString(header.Get("X-User-Id"))
//	if err != nil {
//	    return fmt.Errorf("invalid driver ID: %w", err)
//	}
func UUIDFromString(s string) (UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	return UUID{id: id}, nil
}

// UUIDFromBytes builds a UUID from a 16-byte slice, as produced by binary
// columns or wire formats. Unlike UUIDFromString it also rejects the nil
// UUID, since all-zero bytes almost always mean an unset column.
func UUIDFromBytes(b []byte) (UUID, error) {
	id, err := uuid.FromBytes(b)
	if err != nil {
		return UUID{}, fmt.Errorf("invalid UUID format: %w", err)
	}
	newID := UUID{id: id}
	if err = newID.Validate(); err != nil {
		return UUID{}, err
	}

	return newID, nil
}

// String renders the canonical "xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx"
// form. A zero value renders as all zeros.
func (u UUID) String() string {
	return u.id.String()
}

// Bytes exposes the wrapped uuid.UUID for persistence adapters that store
// identifiers as binary. Callers needing a slice can index it: id.Bytes()[:].
func (u UUID) Bytes() uuid.UUID {
	return u.id
}

// IsEqual reports whether both values identify the same entity.
//
// Example:
//
//	if aggregate.CompanyID().IsEqual(actor.CompanyID()) {
//	    // same tenant
//	}
func (u UUID) IsEqual(other UUID) bool {
	return u.id == other.id
}

// Validate returns ErrUUIDIsNotConstructed for the zero value. Aggregate
// constructors call it on every identifier they receive.
func (u UUID) Validate() error {
	if u.id == uuid.Nil {
		return ErrUUIDIsNotConstructed
	}
	return nil
}
