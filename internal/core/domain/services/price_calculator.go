package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrPriceCalculatorIsNotConstructed is returned when a PriceCalculator was
// not created through the NewPriceCalculator factory method.
var ErrPriceCalculatorIsNotConstructed = errors.New(
	"PriceCalculator must be created via NewPriceCalculator constructor")

// PricedItem is the calculator's input: a quantity and a per-unit price.
type PricedItem struct {
	Qty   int
	Price kernel.Money
}

// Quote is the calculator's output. Total always equals
// Items + Shipping + Tax exactly, because all arithmetic stays in cents.
type Quote struct {
	Items    kernel.Money
	Shipping kernel.Money
	Tax      kernel.Money
	Total    kernel.Money
}

// PriceCalculator computes item, shipping, tax, and total amounts from
// authoritative line items. Shipping is free at or above a threshold,
// otherwise a flat fee applies; tax is a single rate on the item sum.
type PriceCalculator struct {
	taxRate         float64
	shippingFee     kernel.Money
	freeShippingMin kernel.Money

	guard guard.ConstructorGuard
}

// NewPriceCalculator creates a calculator with the pricing policy.
// The tax rate must lie in [0, 1].
func NewPriceCalculator(taxRate float64, shippingFee, freeShippingMin kernel.Money) (*PriceCalculator, error) {
	if taxRate < 0 || taxRate > 1 {
		return nil, errs.NewValueIsOutOfRangeError("taxRate", taxRate, 0, 1)
	}

	return &PriceCalculator{
		taxRate:         taxRate,
		shippingFee:     shippingFee,
		freeShippingMin: freeShippingMin,
		guard:           guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the calculator was constructed through NewPriceCalculator.
func (c *PriceCalculator) Validate() error {
	if c == nil {
		return ErrPriceCalculatorIsNotConstructed
	}
	return c.guard.Validate(ErrPriceCalculatorIsNotConstructed)
}

// Calculate derives the quote for the given line items.
//
// itemsPrice is the exact cent sum of qty times price; shippingPrice is zero
// at or above the free-shipping threshold and the flat fee below it;
// taxPrice is the item sum times the tax rate rounded to 2 decimals;
// totalPrice is the exact sum of the three components.
func (c *PriceCalculator) Calculate(items []PricedItem) (Quote, error) {
	if err := c.Validate(); err != nil {
		return Quote{}, err
	}
	if len(items) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("items")
	}

	var itemsPrice kernel.Money
	for _, item := range items {
		if item.Qty < 1 {
			return Quote{}, errs.NewValueIsInvalidErrorWithCause("qty",
				fmt.Errorf("%d is not greater than 0", item.Qty))
		}
		itemsPrice = itemsPrice.Add(item.Price.MulQty(item.Qty))
	}

	shippingPrice := c.shippingFee
	if itemsPrice.GreaterOrEqual(c.freeShippingMin) {
		shippingPrice = kernel.Money{}
	}

	taxPrice := itemsPrice.MulRate(c.taxRate)

	return Quote{
		Items:    itemsPrice,
		Shipping: shippingPrice,
		Tax:      taxPrice,
		Total:    itemsPrice.Add(shippingPrice).Add(taxPrice),
	}, nil
}
