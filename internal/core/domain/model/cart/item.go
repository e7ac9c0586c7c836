package cart

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrItemIsNotConstructed is returned when an Item instance was not created
// through the NewItem factory method.
var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one cart line: a product reference, the display fields captured at
// add time, the add-time price snapshot, and a quantity of at least 1.
type Item struct {
	productID  kernel.UUID
	name       string
	image      string
	priceAtAdd kernel.Money
	qty        int

	isConstructed bool
}

// NewItem creates a cart line item with validation.
// The price passed here becomes the immutable add-time snapshot.
func NewItem(productID kernel.UUID, name, image string, priceAtAdd kernel.Money, qty int) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setQty(qty),
	); err != nil {
		return nil, err
	}

	item.image = image
	item.priceAtAdd = priceAtAdd
	return item, nil
}

// Validate ensures the Item was constructed through NewItem.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced catalog product.
func (i *Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at add time.
func (i *Item) Name() string {
	return i.name
}

// Image returns the product image captured at add time.
func (i *Item) Image() string {
	return i.image
}

// PriceAtAdd returns the price snapshot taken when the item was first added.
func (i *Item) PriceAtAdd() kernel.Money {
	return i.priceAtAdd
}

// Qty returns the desired quantity, always at least 1.
func (i *Item) Qty() int {
	return i.qty
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	i.name = name
	return nil
}

func (i *Item) setQty(qty int) error {
	if qty < 1 {
		return errs.NewValueIsInvalidErrorWithCause("qty",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	i.qty = qty
	return nil
}
