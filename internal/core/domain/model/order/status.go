package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Paid ──> Shipped ──> Delivered
//	   │          │
//	   └──────────┴──> Cancelled
//
// Delivered and Cancelled are terminal states with no transitions out.
// Preparing is declared for schema compatibility but no transition leads
// in or out of it; it is reachable only by direct external data
// manipulation, never by the state machine itself.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Items may be added or removed only while the order is Pending.
	Pending

	// Paid indicates payment has been received for the order.
	Paid

	// Preparing is declared but unreachable through the state machine.
	// Cancel accepts it, so externally-set Preparing orders can still be cancelled.
	Preparing

	// Shipped indicates the order has been handed to the carrier.
	Shipped

	// Delivered indicates the order reached the customer. Terminal state.
	Delivered

	// Cancelled indicates the order was cancelled before shipping. Terminal state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Paid:      "Paid",
		Preparing: "Preparing",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Paid:      "Paid",
		Preparing: "Preparing",
		Shipped:   "Shipped",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Paid, Preparing, Shipped, Delivered, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// It implements the fmt.Stringer interface and is safe to call on any
// Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// MarkAsPaid transitions the status to Paid.
//
// Valid transitions:
//   - Pending -> Paid
//
// Returns (Paid, nil) on a valid transition, or (0, InvalidStateError)
// when the order is not Pending.
func (s Status) MarkAsPaid() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateErrorWithCause(
			"Only pending orders can be paid",
			fmt.Errorf("current status is %s", s),
		)
	}

	return Paid, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Paid -> Shipped
//
// Returns (Shipped, nil) on a valid transition, or (0, InvalidStateError)
// when the order is not Paid.
func (s Status) Ship() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvalidStateErrorWithCause(
			"Only paid orders can be shipped",
			fmt.Errorf("current status is %s", s),
		)
	}

	return Shipped, nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Returns (Delivered, nil) on a valid transition, or (0, InvalidStateError)
// when the order is not Shipped. Delivered is a terminal state.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidStateErrorWithCause(
			"Only shipped orders can be delivered",
			fmt.Errorf("current status is %s", s),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Paid -> Cancelled
//   - Preparing -> Cancelled (only reachable for externally-set data)
//
// Invalid transitions:
//   - Shipped/Delivered -> Cancelled (the order already left the warehouse)
//   - Cancelled -> Cancelled (already terminal)
//
// Returns (Cancelled, nil) on a valid transition, or (0, InvalidStateError).
func (s Status) Cancel() (Status, error) {
	if s == Shipped || s == Delivered {
		return 0, errs.NewInvalidStateErrorWithCause(
			"Cannot cancel shipped or delivered orders",
			fmt.Errorf("current status is %s", s),
		)
	}
	if s == Cancelled {
		return 0, errs.NewInvalidStateErrorWithCause(
			"Order is already cancelled",
			fmt.Errorf("current status is %s", s),
		)
	}

	return Cancelled, nil
}

// AllowsItemChanges reports whether order items may be added or removed
// in this status. Only Pending orders can be modified.
func (s Status) AllowsItemChanges() bool {
	return s == Pending
}
