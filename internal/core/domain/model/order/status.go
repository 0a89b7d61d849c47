package order

import (
	"fmt"

	"crumbsy/internal/pkg/errs"
)

// Status represents the lifecycle state of a marketplace order.
//
// State transitions through the guarded API:
//
//	posted ──(assign)──► baker-assigned ──(advance)──► in-progress
//	   │                      │                             │
//	   │                      │(decline, within window)     ▼
//	   │                      ▼                      out-for-delivery
//	   │                   posted                           │
//	   ▼                                                    ▼
//	cancelled ◄──(cancel, within window)────           delivered
//
// Fulfillment advancement (in-progress, out-for-delivery, delivered) goes
// through the unconditional status setter; the guarded edges are assignment,
// cancellation, and decline. Delivered and cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Posted is the initial status: the order is open for baker quotes.
	Posted

	// BakerAssigned indicates a buyer accepted a quote and a baker is bound
	// to the order. The grace window for cancellation and decline runs from
	// the assignment instant.
	BakerAssigned

	// InProgress indicates the baker has started preparing the order.
	InProgress

	// OutForDelivery indicates the order left the bakery. An OTP code is
	// attached at this point for delivery confirmation.
	OutForDelivery

	// Delivered is a terminal status: the order reached the buyer.
	Delivered

	// Cancelled is a terminal status: the order was withdrawn by the buyer
	// or swept as stale.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Posted:         "posted",
		BakerAssigned:  "baker-assigned",
		InProgress:     "in-progress",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Posted:         "posted",
		BakerAssigned:  "baker-assigned",
		InProgress:     "in-progress",
		OutForDelivery: "out-for-delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses the wire representation used by the HTTP API and
// the database. Returns an error for unrecognized values.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the defined lifecycle states.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("posted", "baker-assigned", ...).
// Implements fmt.Stringer and is safe on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are meaningful from s.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether moving from s to next follows one of the
// enumerated lifecycle edges. The unconditional status setter on Order
// bypasses this check; it exists for the guarded operations and for tests
// asserting the shape of the machine.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case Posted:
		return next == BakerAssigned || next == Cancelled
	case BakerAssigned:
		return next == Posted || next == InProgress || next == Cancelled
	case InProgress:
		return next == OutForDelivery
	case OutForDelivery:
		return next == Delivered
	default:
		return false
	}
}
