package commands

import (
	"errors"
	"time"

	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"
)

// ErrMarkOverdueOrdersCommandIsNotConstructed is returned when a
// MarkOverdueOrdersCommand was not created through its constructor.
var ErrMarkOverdueOrdersCommandIsNotConstructed = errors.New(
	"MarkOverdueOrdersCommand must be created via NewMarkOverdueOrdersCommand constructor",
)

// MarkOverdueOrdersCommand represents a sweep over in-transit orders whose
// agreed delivery time has passed. Issued by the delay scan job, not by
// users, so it carries no actor.
type MarkOverdueOrdersCommand struct { //nolint:recvcheck //using for validation
	now time.Time

	guard guard.ConstructorGuard
}

// NewMarkOverdueOrdersCommand creates a delay sweep command anchored at the
// given wall-clock instant.
func NewMarkOverdueOrdersCommand(now time.Time) (MarkOverdueOrdersCommand, error) {
	if now.IsZero() {
		return MarkOverdueOrdersCommand{}, errs.NewValueIsRequiredError("now")
	}

	return MarkOverdueOrdersCommand{
		now:   now,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueOrdersCommandIsNotConstructed)
}

// Now returns the instant the sweep compares delivery deadlines against.
func (c MarkOverdueOrdersCommand) Now() time.Time {
	return c.now
}
