package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
		"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
	)
)

// PaymentDetails carries what the payment provider reported about a capture.
// Every field is optional; the handler substitutes defaults for anything the
// provider left blank.
type PaymentDetails struct {
	ID         string
	Status     string
	UpdateTime string
	PayerEmail string
}

// MarkOrderPaidCommand represents a payment confirmation for an order.
// AccountEmail is the authenticated user's email, used as the payer email
// when the provider did not report one.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	details      PaymentDetails
	accountEmail string

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates the command for a valid order identifier.
func NewMarkOrderPaidCommand(
	orderID kernel.UUID,
	details PaymentDetails,
	accountEmail string,
) (MarkOrderPaidCommand, error) {
	if err := orderID.Validate(); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return MarkOrderPaidCommand{
		orderID:      orderID,
		details:      details,
		accountEmail: accountEmail,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being paid.
func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Details returns the provider-reported payment details, possibly partial.
func (c MarkOrderPaidCommand) Details() PaymentDetails {
	return c.details
}

// AccountEmail returns the authenticated user's email address.
func (c MarkOrderPaidCommand) AccountEmail() string {
	return c.accountEmail
}
