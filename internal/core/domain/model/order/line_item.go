package order

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrLineItemIsNotConstructed is returned when a LineItem instance was not
// created through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one immutable order line. Its price is the authoritative
// catalog price captured at order-creation time, never a client value and
// never the cart's add-time snapshot.
type LineItem struct {
	productID kernel.UUID
	name      string
	image     string
	price     kernel.Money
	qty       int

	isConstructed bool
}

// NewLineItem creates an order line with validation. Callers must pass the
// price fetched from the catalog during checkout.
func NewLineItem(productID kernel.UUID, name, image string, price kernel.Money, qty int) (*LineItem, error) {
	li := &LineItem{
		isConstructed: true,
	}

	if err := errors.Join(
		li.setProductID(productID),
		li.setName(name),
		li.setQty(qty),
	); err != nil {
		return nil, err
	}

	li.image = image
	li.price = price
	return li, nil
}

// Validate ensures the LineItem was constructed through NewLineItem.
func (li *LineItem) Validate() error {
	if li == nil || !li.isConstructed {
		return ErrLineItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced catalog product.
func (li *LineItem) ProductID() kernel.UUID {
	return li.productID
}

// Name returns the display name captured at order time.
func (li *LineItem) Name() string {
	return li.name
}

// Image returns the display image captured at order time.
func (li *LineItem) Image() string {
	return li.image
}

// Price returns the authoritative per-unit price captured at order time.
func (li *LineItem) Price() kernel.Money {
	return li.price
}

// Qty returns the ordered quantity.
func (li *LineItem) Qty() int {
	return li.qty
}

func (li *LineItem) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	li.productID = productID
	return nil
}

func (li *LineItem) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	li.name = name
	return nil
}

func (li *LineItem) setQty(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	li.qty = qty
	return nil
}
