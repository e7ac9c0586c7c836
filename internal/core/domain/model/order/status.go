package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Paid ──> Delivered
//	   │          │
//	   └──────────┘
//	(re-marking paid allowed)
//
// Delivered is final. There is no transition that reaches Delivered without
// passing through Paid, and none that moves backward.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Created is the initial status: checkout completed, payment pending.
	Created

	// Paid indicates payment has been confirmed for the order.
	Paid

	// Delivered indicates the paid order reached the customer. Final state.
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Created:   "Created",
		Paid:      "Paid",
		Delivered: "Delivered",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:   "Created",
		Paid:      "Paid",
		Delivered: "Delivered",
	}
}

// Validate checks that the Status holds one of the defined lifecycle states.
// Used when reconstructing orders from persistence.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPaid reports whether payment has been confirmed.
func (s Status) IsPaid() bool {
	return s == Paid || s == Delivered
}

// IsDelivered reports whether the order reached the customer.
func (s Status) IsDelivered() bool {
	return s == Delivered
}

// Pay transitions the status to Paid.
//
// Valid from Created (first confirmation) and from Paid (a repeated
// confirmation overwrites the payment result; there is deliberately no guard
// against double invocation). Delivered orders cannot be re-paid.
func (s Status) Pay() (Status, error) {
	if s != Created && s != Paid {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order cannot be paid",
			fmt.Errorf("status is %s", s.String()),
		)
	}

	return Paid, nil
}

// Deliver transitions the status to Delivered.
//
// Valid only from Paid: an order must be paid before delivery, and Delivered
// is final.
func (s Status) Deliver() (Status, error) {
	if s != Paid {
		return 0, errs.NewInvalidStateErrorWithCause(
			"order must be paid before delivery",
			fmt.Errorf("status is %s", s.String()),
		)
	}

	return Delivered, nil
}
