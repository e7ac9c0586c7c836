// Package product holds the catalog read model. The storefront never writes
// the catalog; products enter the domain only through the ProductCatalog port
// and serve as the authoritative source of price, name, image, and stock.
package product

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
)

// ErrProductIsNotConstructed is returned when a Product instance was not
// created through the NewProduct factory method.
var ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")

// Product is an immutable snapshot of one catalog entry at lookup time.
type Product struct {
	id           kernel.UUID
	name         string
	image        string
	price        kernel.Money
	countInStock int

	isConstructed bool
}

// NewProduct creates a Product snapshot with validation.
// Name must be present and stock must not be negative.
func NewProduct(id kernel.UUID, name, image string, price kernel.Money, countInStock int) (*Product, error) {
	p := &Product{
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setStock(countInStock),
	); err != nil {
		return nil, err
	}

	p.image = image
	p.price = price
	return p, nil
}

// Validate ensures the Product was constructed through NewProduct.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

// ID returns the catalog identifier.
func (p *Product) ID() kernel.UUID {
	return p.id
}

// Name returns the display name.
func (p *Product) Name() string {
	return p.name
}

// Image returns the display image reference.
func (p *Product) Image() string {
	return p.image
}

// Price returns the current catalog price.
func (p *Product) Price() kernel.Money {
	return p.price
}

// CountInStock returns the units currently in stock.
func (p *Product) CountInStock() int {
	return p.countInStock
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Product) setStock(countInStock int) error {
	if countInStock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("countInStock",
			fmt.Errorf("%d is negative", countInStock))
	}
	p.countInStock = countInStock
	return nil
}
