package order

import (
	"errors"

	"storefront/internal/pkg/errs"
	"storefront/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory method.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

// Address is the shipping destination captured at checkout. All fields are
// required; jurisdiction-aware handling of the country is out of scope.
type Address struct {
	street     string
	city       string
	postalCode string
	country    string

	guard guard.ConstructorGuard
}

// NewAddress creates a shipping address, requiring every field.
func NewAddress(street, city, postalCode, country string) (Address, error) {
	if err := errors.Join(
		requireField("street", street),
		requireField("city", city),
		requireField("postalCode", postalCode),
		requireField("country", country),
	); err != nil {
		return Address{}, err
	}

	return Address{
		street:     street,
		city:       city,
		postalCode: postalCode,
		country:    country,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Address was constructed through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// Street returns the street line.
func (a Address) Street() string {
	return a.street
}

// City returns the city.
func (a Address) City() string {
	return a.city
}

// PostalCode returns the postal code.
func (a Address) PostalCode() string {
	return a.postalCode
}

// Country returns the country.
func (a Address) Country() string {
	return a.country
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}
