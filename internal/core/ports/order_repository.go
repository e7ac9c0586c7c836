package ports

import (
	"context"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are never deleted; Update touches only the mutable payment and
// delivery fields, leaving the pricing record intact.
type OrderRepository interface {
	// Add persists a new order aggregate with its line items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable lifecycle fields of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllUnpaidBefore retrieves orders still awaiting payment that were
	// created before the cutoff. Used by the payment reminder sweep.
	GetAllUnpaidBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
