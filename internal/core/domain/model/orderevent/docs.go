// Package orderevent provides the append-only audit trail of an order.
//
// Every state-changing core operation appends exactly one event per logical
// change: a status transition, an assignment change, a payment-status change,
// or an edit of the financial figures. Events are never updated or deleted,
// and history queries return them newest-first with a stable tie-break on
// insertion order for equal timestamps.
//
// Event payloads are open maps. The keys each event type is expected to
// carry:
//
//	status_changed     old_status, new_status, actor
//	assigned           driver_id, vehicle_id, actor
//	payment_updated    action ("marked_as_paid" | "partial_payment"), amount?, actor
//	financials_updated old, new, actor
//
// Anything beyond these keys is opaque to the core.
package orderevent
