package order

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrPaymentResultIsNotConstructed is returned when a PaymentResult instance
// was not created through the NewPaymentResult factory method.
var ErrPaymentResultIsNotConstructed = errors.New(
	"PaymentResult must be created via NewPaymentResult constructor")

// PaymentResult records the confirmation details attached when an order is
// marked paid. The gateway is stubbed, so callers normalize whatever payload
// they received into these four fields before constructing the value.
type PaymentResult struct {
	id         string
	status     string
	updateTime string
	payerEmail string

	guard guard.ConstructorGuard
}

// NewPaymentResult creates a payment result, requiring every field. Fallbacks
// for absent payload fields are the caller's concern (see MarkOrderPaid).
func NewPaymentResult(id, status, updateTime, payerEmail string) (PaymentResult, error) {
	if err := errors.Join(
		requirePaymentField("id", id),
		requirePaymentField("status", status),
		requirePaymentField("updateTime", updateTime),
		requirePaymentField("payerEmail", payerEmail),
	); err != nil {
		return PaymentResult{}, err
	}

	return PaymentResult{
		id:         id,
		status:     status,
		updateTime: updateTime,
		payerEmail: payerEmail,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the PaymentResult was constructed through NewPaymentResult.
func (p PaymentResult) Validate() error {
	return p.guard.Validate(ErrPaymentResultIsNotConstructed)
}

// ID returns the gateway transaction identifier.
func (p PaymentResult) ID() string {
	return p.id
}

// Status returns the gateway-reported status.
func (p PaymentResult) Status() string {
	return p.status
}

// UpdateTime returns the gateway-reported timestamp.
func (p PaymentResult) UpdateTime() string {
	return p.updateTime
}

// PayerEmail returns the payer's email address.
func (p PaymentResult) PayerEmail() string {
	return p.payerEmail
}

func requirePaymentField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("paymentResult." + name)
	}
	return nil
}
