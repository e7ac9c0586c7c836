package cart

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
	"storefront/internal/pkg/errs"
)

// ErrCartIsNotConstructed is returned when a Cart instance was not created
// through the NewCart or RestoreCart factory methods.
var ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

// Cart is the aggregate root for one user's pre-checkout item list.
//
// Invariants:
//   - identified by the owning user, at most one cart per user
//   - items are ordered and unique per product
//   - every stored item quantity is at least 1
//   - an item's price snapshot is fixed when the item is first added
type Cart struct {
	userID kernel.UUID
	items  []*Item

	isConstructed bool
}

// NewCart creates an empty cart for a user. Carts are created lazily on the
// first add and live for the lifetime of the user.
func NewCart(userID kernel.UUID) (*Cart, error) {
	if err := userID.Validate(); err != nil {
		return nil, err
	}

	return &Cart{
		userID:        userID,
		items:         make([]*Item, 0),
		isConstructed: true,
	}, nil
}

// RestoreCart reconstructs a cart from persistence with its stored items.
func RestoreCart(userID kernel.UUID, items []*Item) (*Cart, error) {
	c, err := NewCart(userID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if c.findItem(item.ProductID()) != nil {
			return nil, errs.NewValueIsInvalidError("items contain a duplicate product")
		}
		c.items = append(c.items, item)
	}

	return c, nil
}

// Validate ensures the Cart was constructed through a factory method.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's identifier.
func (c *Cart) UserID() kernel.UUID {
	return c.userID
}

// Items returns the line items in insertion order.
func (c *Cart) Items() []*Item {
	return c.items
}

// IsEmpty reports whether the cart currently holds no items.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// AddItem puts a catalog product into the cart with the given quantity.
//
// If a line for the product already exists, its quantity is set to qty in
// place and the original price snapshot is kept. Otherwise a new line is
// appended with the product's current catalog price as the snapshot.
func (c *Cart) AddItem(p *product.Product, qty int) error {
	if err := p.Validate(); err != nil {
		return err
	}

	if existing := c.findItem(p.ID()); existing != nil {
		return existing.setQty(qty)
	}

	item, err := NewItem(p.ID(), p.Name(), p.Image(), p.Price(), qty)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	return nil
}

// UpdateItem sets the quantity of an existing line item. A non-positive
// quantity removes the line. Returns ObjectNotFound when no line for the
// product exists.
func (c *Cart) UpdateItem(productID kernel.UUID, qty int) error {
	item := c.findItem(productID)
	if item == nil {
		return errs.NewObjectNotFoundError("cartItem", productID.String())
	}

	if qty < 1 {
		return c.RemoveItem(productID)
	}

	return item.setQty(qty)
}

// RemoveItem deletes the line for a product, returning ObjectNotFound and
// leaving the cart unchanged when no such line exists.
func (c *Cart) RemoveItem(productID kernel.UUID) error {
	for idx, item := range c.items {
		if item.ProductID().IsEqual(productID) {
			c.items = append(c.items[:idx], c.items[idx+1:]...)
			return nil
		}
	}

	return errs.NewObjectNotFoundError("cartItem", productID.String())
}

// Clear removes every item. The cart itself survives for reuse.
func (c *Cart) Clear() {
	c.items = make([]*Item, 0)
}

func (c *Cart) findItem(productID kernel.UUID) *Item {
	for _, item := range c.items {
		if item.ProductID().IsEqual(productID) {
			return item
		}
	}
	return nil
}
