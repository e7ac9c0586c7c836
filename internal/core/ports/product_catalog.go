package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"
)

// ProductCatalog is the authoritative source of current product price, name,
// image, and stock. The storefront only reads it; catalog management lives
// in another system.
type ProductCatalog interface {
	// FindByID retrieves one product, returning ObjectNotFound when the id
	// is absent from the catalog.
	FindByID(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// FindMany retrieves the products for the given ids, silently omitting
	// any id that is absent. Callers must compare the result length against
	// the distinct requested id count and treat a mismatch as a staleness
	// signal.
	FindMany(ctx context.Context, ids []kernel.UUID) ([]*product.Product, error)
}
