package order

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through the NewOrder or RestoreOrder factory methods.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

// Order is the aggregate root of the fulfillment ledger: the immutable record
// of one checkout plus its mutable payment/delivery state.
//
// Invariants:
//   - at least one line item; line items and prices are fixed at creation
//   - totalPrice == itemsPrice + taxPrice + shippingPrice
//   - status transitions follow the Created -> Paid -> Delivered machine
//   - a delivered order is always a paid order
type Order struct {
	id              kernel.UUID
	userID          kernel.UUID
	lineItems       []*LineItem
	shippingAddress Address
	paymentMethod   string

	itemsPrice    kernel.Money
	taxPrice      kernel.Money
	shippingPrice kernel.Money
	totalPrice    kernel.Money

	status        Status
	paymentResult *PaymentResult
	paidAt        *time.Time
	deliveredAt   *time.Time
	createdAt     time.Time

	isConstructed bool
}

// NewOrder creates an order in Created status with its pricing fixed.
// The four price components must already satisfy the total invariant;
// they come from the PriceCalculator, never from client input.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	lineItems []*LineItem,
	shippingAddress Address,
	paymentMethod string,
	itemsPrice, taxPrice, shippingPrice, totalPrice kernel.Money,
) (*Order, error) {
	o := &Order{
		status:        Created,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setLineItems(lineItems),
		o.setShippingAddress(shippingAddress),
		o.setPaymentMethod(paymentMethod),
		o.setPrices(itemsPrice, taxPrice, shippingPrice, totalPrice),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including its
// lifecycle state and payment/delivery fields.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	lineItems []*LineItem,
	shippingAddress Address,
	paymentMethod string,
	itemsPrice, taxPrice, shippingPrice, totalPrice kernel.Money,
	status Status,
	paymentResult *PaymentResult,
	paidAt, deliveredAt *time.Time,
	createdAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, userID, lineItems, shippingAddress, paymentMethod,
		itemsPrice, taxPrice, shippingPrice, totalPrice)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	if status.IsPaid() && paidAt == nil {
		return nil, errs.NewValueIsRequiredError("paidAt")
	}
	if status.IsDelivered() && deliveredAt == nil {
		return nil, errs.NewValueIsRequiredError("deliveredAt")
	}
	if paymentResult != nil {
		if err = paymentResult.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.paymentResult = paymentResult
	o.paidAt = paidAt
	o.deliveredAt = deliveredAt
	o.createdAt = createdAt
	return o, nil
}

// Validate ensures the Order was constructed through a factory method.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the ordering user's identifier.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// LineItems returns the immutable order lines in checkout order.
func (o *Order) LineItems() []*LineItem {
	return o.lineItems
}

// ShippingAddress returns the destination captured at checkout.
func (o *Order) ShippingAddress() Address {
	return o.shippingAddress
}

// PaymentMethod returns the payment method chosen at checkout.
func (o *Order) PaymentMethod() string {
	return o.paymentMethod
}

// ItemsPrice returns the summed line-item price.
func (o *Order) ItemsPrice() kernel.Money {
	return o.itemsPrice
}

// TaxPrice returns the tax amount.
func (o *Order) TaxPrice() kernel.Money {
	return o.taxPrice
}

// ShippingPrice returns the shipping amount.
func (o *Order) ShippingPrice() kernel.Money {
	return o.shippingPrice
}

// TotalPrice returns the charged total.
func (o *Order) TotalPrice() kernel.Money {
	return o.totalPrice
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether payment has been confirmed.
func (o *Order) IsPaid() bool {
	return o.status.IsPaid()
}

// IsDelivered reports whether the order reached the customer.
func (o *Order) IsDelivered() bool {
	return o.status.IsDelivered()
}

// PaymentResult returns the recorded payment confirmation, nil before payment.
func (o *Order) PaymentResult() *PaymentResult {
	return o.paymentResult
}

// PaidAt returns when payment was confirmed, nil before payment.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// DeliveredAt returns when delivery was recorded, nil before delivery.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// MarkPaid confirms payment at the given time, recording the payment result.
// A repeated call on an already paid order succeeds and overwrites the
// result; pricing fields are untouched.
func (o *Order) MarkPaid(result PaymentResult, at time.Time) error {
	if err := result.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.paymentResult = &result
	o.paidAt = &at
	return nil
}

// MarkDelivered records delivery at the given time. Fails with InvalidState
// when the order has not been paid, leaving every field unchanged.
func (o *Order) MarkDelivered(at time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.deliveredAt = &at
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setLineItems(lineItems []*LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	for _, li := range lineItems {
		if err := li.Validate(); err != nil {
			return err
		}
	}
	o.lineItems = lineItems
	return nil
}

func (o *Order) setShippingAddress(shippingAddress Address) error {
	if err := shippingAddress.Validate(); err != nil {
		return err
	}
	o.shippingAddress = shippingAddress
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod string) error {
	if paymentMethod == "" {
		return errs.NewValueIsRequiredError("paymentMethod")
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setPrices(itemsPrice, taxPrice, shippingPrice, totalPrice kernel.Money) error {
	sum := itemsPrice.Add(taxPrice).Add(shippingPrice)
	if !totalPrice.IsEqual(sum) {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%s does not equal %s", totalPrice, sum))
	}

	o.itemsPrice = itemsPrice
	o.taxPrice = taxPrice
	o.shippingPrice = shippingPrice
	o.totalPrice = totalPrice
	return nil
}
