// Package financial owns the cost, profit and payment bookkeeping attached
// one-to-one to every order.
//
// The ledger has three caller-settable cost inputs (client cost, driver cost,
// third-party cost, plus a fuel figure for orders without a known route
// distance) and two derived figures that callers can never set directly:
// fuel expenses, estimated from the order's distance with a fixed consumption
// rate and fuel price, and profit. Every mutation recomputes both before the
// ledger is persisted.
//
// Payment state is a small caller-driven machine (unpaid, partially paid,
// paid) with the most recent partial-payment declaration kept as an
// overwritten plan record, not a payment history; the audit trail of payment
// changes lives in the order's event log.
package financial
