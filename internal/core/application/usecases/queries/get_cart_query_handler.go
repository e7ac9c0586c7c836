package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler reads a user's cart joined with the live catalog.
// The snapshot columns come from cart_items; the current columns fall back
// to the snapshot (and zero stock) when the product no longer exists.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart display queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the query. A user who never created a cart receives an
// empty item list, not an error. Items keep their insertion order.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	response := GetCartQueryResponse{
		UserID: query.UserID(),
		Items:  make([]CartItemResponse, 0),
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			ci.product_id,
			ci.price_at_add_cents,
			ci.qty,
			COALESCE(p.name, ci.name),
			COALESCE(p.image, ci.image),
			COALESCE(p.price_cents, ci.price_at_add_cents),
			COALESCE(p.count_in_stock, 0)
		FROM cart_items ci
		LEFT JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_user_id = ?
		ORDER BY ci.position
	`, query.UserID().Bytes()).Rows()
	if err != nil {
		return GetCartQueryResponse{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var item CartItemResponse
		var productID uuid.UUID
		var priceAtAddCents, currentPriceCents int64

		err = rows.Scan(
			&productID,
			&priceAtAddCents,
			&item.Qty,
			&item.Name,
			&item.Image,
			&currentPriceCents,
			&item.CountInStock,
		)
		if err != nil {
			return GetCartQueryResponse{}, err
		}

		id, idErr := kernel.UUIDFromBytes(productID[:])
		if idErr != nil {
			return GetCartQueryResponse{}, idErr
		}
		item.ProductID = id

		if item.PriceAtAdd, err = kernel.MoneyFromCents(priceAtAddCents); err != nil {
			return GetCartQueryResponse{}, err
		}
		if item.CurrentPrice, err = kernel.MoneyFromCents(currentPriceCents); err != nil {
			return GetCartQueryResponse{}, err
		}

		response.Items = append(response.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetCartQueryResponse{}, err
	}

	return response, nil
}
