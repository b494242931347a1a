package commands

import (
	"errors"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"
)

// ErrApplyPaymentCommandIsNotConstructed is returned when an
// ApplyPaymentCommand was not created through its constructor.
var ErrApplyPaymentCommandIsNotConstructed = errors.New(
	"ApplyPaymentCommand must be created via NewApplyPaymentCommand constructor",
)

// ApplyPaymentCommand represents a payment update for an order's ledger.
// Exactly one mode applies per command: mark the order fully paid, or record
// a partial installment of a given amount.
type ApplyPaymentCommand struct { //nolint:recvcheck //using for validation
	actor         kernel.Actor
	orderID       kernel.UUID
	markPaid      bool
	partialAmount *kernel.Money

	guard guard.ConstructorGuard
}

// NewApplyPaymentCommand creates a payment command.
// A command with neither mode, or with both, is rejected. A non-positive
// partial amount is rejected here, before any state is read.
func NewApplyPaymentCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	markPaid bool,
	partialAmount *kernel.Money,
) (ApplyPaymentCommand, error) {
	cmd := ApplyPaymentCommand{
		markPaid: markPaid,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
		cmd.setPartialAmount(markPaid, partialAmount),
	); err != nil {
		return ApplyPaymentCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyPaymentCommand) Validate() error {
	return c.guard.Validate(ErrApplyPaymentCommandIsNotConstructed)
}

// Actor returns the identity performing the operation.
func (c ApplyPaymentCommand) Actor() kernel.Actor {
	return c.actor
}

// OrderID returns the order whose payment state changes.
func (c ApplyPaymentCommand) OrderID() kernel.UUID {
	return c.orderID
}

// MarkPaid reports whether the command settles the order in full.
func (c ApplyPaymentCommand) MarkPaid() bool {
	return c.markPaid
}

// PartialAmount returns the installment amount, nil in full-payment mode.
func (c ApplyPaymentCommand) PartialAmount() *kernel.Money {
	return c.partialAmount
}

func (c *ApplyPaymentCommand) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *ApplyPaymentCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ApplyPaymentCommand) setPartialAmount(markPaid bool, partialAmount *kernel.Money) error {
	if partialAmount == nil {
		if !markPaid {
			return errs.NewValueIsRequiredError("payment")
		}
		return nil
	}
	if markPaid {
		return errs.NewValueIsInvalidError("payment: full and partial modes are mutually exclusive")
	}
	if !partialAmount.IsPositive() {
		return errs.NewValueIsInvalidError("partialAmount: must be positive")
	}

	c.partialAmount = partialAmount
	return nil
}
