package financial

import (
	"errors"
	"time"

	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
	"flowgic/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// Fuel estimation parameters: a fixed fleet-average consumption of 30 liters
// per 100 km at 82 currency units per liter.
var (
	fuelConsumptionPer100Km = decimal.NewFromInt(30)
	fuelPricePerLiter       = decimal.NewFromInt(82)
	hundredKm               = decimal.NewFromInt(100)
)

var (
	// ErrFinancialIsNotConstructed is returned when a Financial instance was
	// not created through a factory method.
	ErrFinancialIsNotConstructed = errors.New("Financial must be created via NewFinancial constructor")
)

// EstimateFuelExpenses derives the fuel cost for a route:
//
//	(distance_km / 100) * 30 l/100km * 82 per liter
//
// rounded to the ledger scale. A nil or non-positive distance short-circuits
// to 0.00 rather than failing; local orders simply carry no fuel estimate.
// All intermediates use fixed-point arithmetic so the result is identical
// across platforms.
func EstimateFuelExpenses(distanceKm *decimal.Decimal) kernel.Money {
	if distanceKm == nil || !distanceKm.IsPositive() {
		return kernel.ZeroMoney()
	}

	liters := distanceKm.Div(hundredKm).Mul(fuelConsumptionPer100Km)
	return kernel.NewMoneyFromDecimal(liters.Mul(fuelPricePerLiter))
}

// CostChanges carries the caller-settable cost inputs of a ledger update.
// Nil fields are left untouched. Fuel expenses may be supplied here, but an
// order with a known positive distance always re-derives them on recompute;
// the supplied value only sticks for orders without a distance.
type CostChanges struct {
	ClientCost     *kernel.Money
	DriverCost     *kernel.Money
	ThirdPartyCost *kernel.Money
	FuelExpenses   *kernel.Money
}

// Financial is the cost/profit/payment record attached one-to-one to an
// order. The one-to-one relationship is enforced at the storage boundary:
// inserting a second ledger for the same order fails.
//
// The two derived figures, fuel expenses and profit, are never trusted from
// callers: every mutation recomputes them before the ledger is persisted.
// The canonical profit formula is
//
//	profit = client_cost - fuel_expenses - driver_cost
//
// Third-party cost is tracked but deliberately not subtracted; that matches
// the established bookkeeping of the back office and is pinned by tests.
// Profit may go negative; there is no floor at zero.
type Financial struct {
	id      kernel.UUID
	orderID kernel.UUID

	clientCost     kernel.Money
	driverCost     kernel.Money
	thirdPartyCost kernel.Money
	fuelExpenses   kernel.Money
	profit         kernel.Money

	paymentStatus PaymentStatus
	paymentPlan   *PaymentPlan

	guard guard.ConstructorGuard
}

// NewFinancial creates the ledger for an order with default figures:
// the given client cost (the order's agreed price, or zero), zero driver and
// third-party costs, and derived fuel/profit for the given route distance.
func NewFinancial(id, orderID kernel.UUID, clientCost kernel.Money, distanceKm *decimal.Decimal) (*Financial, error) {
	if err := errors.Join(id.Validate(), orderID.Validate()); err != nil {
		return nil, err
	}
	if clientCost.IsNegative() {
		return nil, errs.NewValueIsInvalidError("clientCost")
	}

	f := &Financial{
		id:            id,
		orderID:       orderID,
		clientCost:    clientCost,
		paymentStatus: PaymentUnpaid,
		guard:         guard.NewConstructorGuard(),
	}
	f.Recompute(distanceKm)
	return f, nil
}

// RestoreFinancial reconstructs a ledger from persistence. Stored figures are
// trusted as-is; recomputation happens on the next mutation.
func RestoreFinancial(
	id, orderID kernel.UUID,
	clientCost, driverCost, thirdPartyCost, fuelExpenses, profit kernel.Money,
	paymentStatus PaymentStatus,
	paymentPlan *PaymentPlan,
) (*Financial, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		paymentStatus.Validate(),
	); err != nil {
		return nil, err
	}

	return &Financial{
		id:             id,
		orderID:        orderID,
		clientCost:     clientCost,
		driverCost:     driverCost,
		thirdPartyCost: thirdPartyCost,
		fuelExpenses:   fuelExpenses,
		profit:         profit,
		paymentStatus:  paymentStatus,
		paymentPlan:    paymentPlan,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Financial was created through a factory method.
func (f *Financial) Validate() error {
	if f == nil {
		return ErrFinancialIsNotConstructed
	}
	return f.guard.Validate(ErrFinancialIsNotConstructed)
}

// ID returns the ledger's unique identifier.
func (f *Financial) ID() kernel.UUID {
	return f.id
}

// OrderID returns the order this ledger belongs to.
func (f *Financial) OrderID() kernel.UUID {
	return f.orderID
}

// ClientCost returns the amount charged to the client.
func (f *Financial) ClientCost() kernel.Money {
	return f.clientCost
}

// DriverCost returns the driver's fee.
func (f *Financial) DriverCost() kernel.Money {
	return f.driverCost
}

// ThirdPartyCost returns tracked third-party expenses.
func (f *Financial) ThirdPartyCost() kernel.Money {
	return f.thirdPartyCost
}

// FuelExpenses returns the current fuel figure.
func (f *Financial) FuelExpenses() kernel.Money {
	return f.fuelExpenses
}

// Profit returns the derived profit figure.
func (f *Financial) Profit() kernel.Money {
	return f.profit
}

// PaymentStatus returns the current payment state.
func (f *Financial) PaymentStatus() PaymentStatus {
	return f.paymentStatus
}

// PaymentPlan returns the most recent partial-payment declaration, or nil.
func (f *Financial) PaymentPlan() *PaymentPlan {
	return f.paymentPlan
}

// Recompute refreshes the derived figures from the current inputs and the
// linked order's distance. It must run before every persist of the ledger.
//
// A positive distance overwrites fuel expenses with the formula estimate; a
// nil or non-positive distance leaves the caller-maintained fuel figure in
// place. Profit is always recomputed.
func (f *Financial) Recompute(distanceKm *decimal.Decimal) {
	if distanceKm != nil && distanceKm.IsPositive() {
		f.fuelExpenses = EstimateFuelExpenses(distanceKm)
	}
	f.profit = f.clientCost.Sub(f.fuelExpenses).Sub(f.driverCost)
}

// UpdateCosts applies the provided cost inputs and recomputes the derived
// figures. Each provided amount must be non-negative.
//
// Returns true when any stored figure actually changed, so the caller knows
// whether a financials-updated audit event is due.
func (f *Financial) UpdateCosts(changes CostChanges, distanceKm *decimal.Decimal) (bool, error) {
	for name, amount := range map[string]*kernel.Money{
		"clientCost":     changes.ClientCost,
		"driverCost":     changes.DriverCost,
		"thirdPartyCost": changes.ThirdPartyCost,
		"fuelExpenses":   changes.FuelExpenses,
	} {
		if amount != nil && amount.IsNegative() {
			return false, errs.NewValueIsInvalidError(name)
		}
	}

	before := *f

	if changes.ClientCost != nil {
		f.clientCost = *changes.ClientCost
	}
	if changes.DriverCost != nil {
		f.driverCost = *changes.DriverCost
	}
	if changes.ThirdPartyCost != nil {
		f.thirdPartyCost = *changes.ThirdPartyCost
	}
	if changes.FuelExpenses != nil {
		f.fuelExpenses = *changes.FuelExpenses
	}

	f.Recompute(distanceKm)

	changed := !f.clientCost.IsEqual(before.clientCost) ||
		!f.driverCost.IsEqual(before.driverCost) ||
		!f.thirdPartyCost.IsEqual(before.thirdPartyCost) ||
		!f.fuelExpenses.IsEqual(before.fuelExpenses) ||
		!f.profit.IsEqual(before.profit)
	return changed, nil
}

// MarkPaid sets the payment status to paid regardless of declared amounts.
// Returns true when the status actually changed.
func (f *Financial) MarkPaid() bool {
	if f.paymentStatus == PaymentPaid {
		return false
	}
	f.paymentStatus = PaymentPaid
	return true
}

// ApplyPartialPayment declares a partial payment: the status moves to
// partially paid and the payment plan is replaced with the declared amount,
// actor and timestamp. The amount must be strictly positive.
//
// Returns true when the payment status actually changed. The plan is
// replaced even when the status did not change, to keep the latest
// installment visible.
func (f *Financial) ApplyPartialPayment(amount kernel.Money, updatedBy string, at time.Time) (bool, error) {
	if !amount.IsPositive() {
		return false, errs.NewValueIsInvalidErrorWithCause("amount",
			errors.New("partial payment amount must be positive"))
	}

	f.paymentPlan = &PaymentPlan{
		Amount:    amount,
		UpdatedBy: updatedBy,
		UpdatedAt: at,
	}

	if f.paymentStatus == PaymentPartiallyPaid {
		return false, nil
	}
	f.paymentStatus = PaymentPartiallyPaid
	return true, nil
}
