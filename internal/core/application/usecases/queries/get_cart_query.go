// Package queries contains read-only projections over the storefront
// database. Query handlers bypass the domain aggregates and read with raw
// SQL, returning display-shaped response structs.
package queries

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetCartQueryIsNotConstructed = errors.New(
		"GetCartQuery must be created via NewGetCartQuery constructor",
	)
)

// GetCartQuery retrieves a user's cart for display, enriched with the
// current catalog state of each product.
//
// Example:
//
//	query, err := NewGetCartQuery(userID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetCartQueryHandler(db)
//
//	cartView, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get cart: %w", err)
//	}
//
//	for _, item := range cartView.Items {
//	    fmt.Printf("%s x%d at %s (now %s)\n",
//	        item.Name, item.Qty, item.PriceAtAdd, item.CurrentPrice)
//	}
type GetCartQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCartQuery creates a query for the given user's cart.
func NewGetCartQuery(userID kernel.UUID) (GetCartQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetCartQuery{}, err
	}

	return GetCartQuery{
		userID: userID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetCartQueryIsNotConstructed if validation fails.
func (q GetCartQuery) Validate() error {
	return q.guard.Validate(ErrGetCartQueryIsNotConstructed)
}

// UserID returns the cart owner's identifier.
func (q GetCartQuery) UserID() kernel.UUID {
	return q.userID
}

// GetCartQueryResponse is the display shape of a cart. A user without a
// cart gets the same shape with an empty item list.
type GetCartQueryResponse struct {
	UserID kernel.UUID
	Items  []CartItemResponse
}

// CartItemResponse is one cart line joined with the current catalog state.
// PriceAtAdd is the add-time snapshot and never changes; CurrentPrice,
// Name, Image, and CountInStock reflect the catalog now. For a product
// that has left the catalog the snapshot values are reported with a stock
// of zero.
type CartItemResponse struct {
	ProductID    kernel.UUID
	Name         string
	Image        string
	PriceAtAdd   kernel.Money
	CurrentPrice kernel.Money
	Qty          int
	CountInStock int
}
