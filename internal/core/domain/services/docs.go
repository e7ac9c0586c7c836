// Package services contains stateless domain services of the storefront.
//
// PriceCalculator derives the chargeable amounts for a set of line items.
// It is pure: the same input always yields the same quote, and the item
// order never matters because summation happens exactly in cents.
package services
