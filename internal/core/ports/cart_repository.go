// Package ports defines the contracts between the storefront core and its
// infrastructure: repositories, the catalog price oracle, the notification
// sink, and the unit of work. These interfaces enable dependency inversion
// and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for cart aggregates.
// Uniqueness of one cart per user is enforced by keying storage on the
// user identifier.
type CartRepository interface {
	// Get retrieves the user's cart with its items in insertion order.
	// Returns ObjectNotFound when the user has never created a cart.
	Get(ctx context.Context, userID kernel.UUID) (*cart.Cart, error)

	// Save persists the cart's current state, creating the cart document
	// on first write and replacing its item list otherwise.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
