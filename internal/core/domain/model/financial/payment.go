package financial

import (
	"fmt"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
)

// PaymentStatus tracks how much of the client cost has been settled.
// Transitions are driven exclusively by explicit caller action; the ledger
// never moves payment state on its own. In practice the status only moves
// forward (unpaid, partially paid, paid) but that is not enforced.
type PaymentStatus int

const (
	// PaymentUnknown represents an invalid or undefined payment status.
	PaymentUnknown PaymentStatus = iota

	// PaymentUnpaid is the initial state of every ledger.
	PaymentUnpaid

	// PaymentPartiallyPaid indicates at least one partial payment was declared.
	PaymentPartiallyPaid

	// PaymentPaid indicates the order was marked fully paid.
	PaymentPaid
)

// getPaymentStatusStrings returns a map of PaymentStatus values to their wire representations.
func getPaymentStatusStrings() map[PaymentStatus]string {
	return map[PaymentStatus]string{
		PaymentUnknown:       "unknown",
		PaymentUnpaid:        "unpaid",
		PaymentPartiallyPaid: "partially_paid",
		PaymentPaid:          "paid",
	}
}

// getValidPaymentStatusStrings returns only the valid PaymentStatus values.
func getValidPaymentStatusStrings() map[PaymentStatus]string {
	//nolint:exhaustive // PaymentUnknown is intentionally excluded as it's invalid
	return map[PaymentStatus]string{
		PaymentUnpaid:        "unpaid",
		PaymentPartiallyPaid: "partially_paid",
		PaymentPaid:          "paid",
	}
}

// PaymentStatusFromString parses a payment status from its wire representation.
func PaymentStatusFromString(s string) (PaymentStatus, error) {
	for status, str := range getValidPaymentStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return PaymentUnknown, errs.NewValueIsInvalidErrorWithCause("paymentStatus",
		fmt.Errorf("%q is not a valid payment status", s))
}

// Validate checks if the PaymentStatus is a member of the closed set.
func (s PaymentStatus) Validate() error {
	if _, ok := getValidPaymentStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("%d is not a valid payment status", s))
	}
	return nil
}

// String returns the wire name of the payment status.
func (s PaymentStatus) String() string {
	if str, ok := getPaymentStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// PaymentPlan records the most recent partial-payment declaration. It is not
// a ledger of individual payments: each new declaration overwrites the
// previous plan in full.
type PaymentPlan struct {
	Amount    kernel.Money
	UpdatedBy string
	UpdatedAt time.Time
}
