package kernel

import (
	"strings"

	"flowgic/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// moneyScale is the number of decimal places every monetary figure is stored at.
const moneyScale = 2

// Money is a value object for monetary amounts. It wraps decimal.Decimal to
// guarantee exact fixed-point arithmetic at two decimal places; binary floating
// point is never used for money anywhere in the domain.
//
// The zero value of Money is a valid 0.00 amount, so Money can be used directly
// as a field default. Money may be negative: profit figures are allowed to go
// below zero and are not floored.
//
// Example usage:
//
//	price := kernel.NewMoneyFromDecimal(decimal.NewFromInt(10000))
//	cost, err := kernel.MoneyFromString("2,50")
//	if err != nil {
//	    // handle malformed input
//	}
//	profit := price.Sub(cost)
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a 0.00 amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromDecimal creates a Money from a decimal, rounding to the ledger
// scale of two decimal places.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d.Round(moneyScale)}
}

// MoneyFromString parses a monetary amount from user-facing text.
// It tolerates the common paste artifacts seen in back-office forms: a comma
// used as the decimal separator and digit-grouping spaces, so "2,50" and
// "3 000" both parse. Returns a ValueIsInvalidError for anything that is not
// a number.
func MoneyFromString(s string) (Money, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	normalized = strings.ReplaceAll(normalized, " ", "")
	normalized = strings.ReplaceAll(normalized, " ", "")

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}

	return NewMoneyFromDecimal(d), nil
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns the difference of two amounts.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts by numeric value, so 5 and 5.00 are equal.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String renders the amount at the fixed ledger scale, e.g. "17220.00".
func (m Money) String() string {
	return m.amount.StringFixed(moneyScale)
}
