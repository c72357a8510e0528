package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Delivered   (deliver; also from Processing/Shipped)
//	          │
//	          └──> Cancelled   (cancel, only while unpaid)
//
// Processing and Shipped exist as intermediate states reachable by external
// fulfillment tooling; no operation in this service drives entry into them.
// Delivered and Cancelled are terminal: no transition leads out of either.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order.
	Pending

	// Processing indicates the order is being prepared for shipment.
	Processing

	// Shipped indicates the order has left the warehouse.
	Shipped

	// Delivered indicates the order reached the customer. Terminal.
	Delivered

	// Cancelled indicates the order was cancelled before payment. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// StatusFromString parses a status from its persisted form.
// Returns an error for anything outside the five valid states.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the five valid states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Pending, Processing, Shipped -> Delivered
//   - Delivered -> Delivered (redundant confirmation is tolerated)
//
// Invalid transitions:
//   - Cancelled -> Delivered (a cancelled order cannot be fulfilled)
//   - Unknown -> Delivered
//
// Returns (Delivered, nil) on a valid transition, (0, error) otherwise.
func (s Status) Deliver() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s == Cancelled {
		return 0, errs.NewInvalidStateError(fmt.Sprintf("%s is not a valid status to deliver", s))
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending, Processing, Shipped -> Cancelled
//
// Invalid transitions:
//   - Delivered -> Cancelled (terminal)
//   - Cancelled -> Cancelled (already terminal)
//   - Unknown -> Cancelled
//
// Returns (Cancelled, nil) on a valid transition, (0, error) otherwise.
// The payment precondition (only unpaid orders may be cancelled) is enforced
// by the aggregate, not here: status alone does not know about payment.
func (s Status) Cancel() (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if s.IsTerminal() {
		return 0, errs.NewInvalidStateError(fmt.Sprintf("%s is not a valid status to cancel", s))
	}

	return Cancelled, nil
}
