package queries

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads one order and its line items from the database.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query. Returns ObjectNotFound for an unknown order id.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	response, err := h.readOrderRow(ctx, query)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	response.LineItems, err = h.readLineItems(ctx, query.OrderID())
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}

func (h GetOrderQueryHandler) readOrderRow(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			user_id,
			shipping_street,
			shipping_city,
			shipping_postal_code,
			shipping_country,
			payment_method,
			items_price_cents,
			tax_price_cents,
			shipping_price_cents,
			total_price_cents,
			status,
			payment_id,
			payment_status,
			payment_update_time,
			payment_payer_email,
			paid_at,
			delivered_at,
			created_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetOrderQueryResponse{}, err
		}
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderID", query.OrderID())
	}

	response := GetOrderQueryResponse{ID: query.OrderID()}
	var userID uuid.UUID
	var itemsCents, taxCents, shippingCents, totalCents int64
	var status int

	err = rows.Scan(
		&userID,
		&response.Street,
		&response.City,
		&response.PostalCode,
		&response.Country,
		&response.PaymentMethod,
		&itemsCents,
		&taxCents,
		&shippingCents,
		&totalCents,
		&status,
		&response.PaymentID,
		&response.PaymentStatus,
		&response.PaymentUpdateTime,
		&response.PayerEmail,
		&response.PaidAt,
		&response.DeliveredAt,
		&response.CreatedAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if response.UserID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ItemsPrice, err = kernel.MoneyFromCents(itemsCents); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.TaxPrice, err = kernel.MoneyFromCents(taxCents); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.ShippingPrice, err = kernel.MoneyFromCents(shippingCents); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if response.TotalPrice, err = kernel.MoneyFromCents(totalCents); err != nil {
		return GetOrderQueryResponse{}, err
	}
	response.Status = order.Status(status)

	return response, nil
}

func (h GetOrderQueryHandler) readLineItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]OrderLineItemResponse, error) {
	lineItems := make([]OrderLineItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			name,
			image,
			price_cents,
			qty
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderLineItemResponse
		var productID uuid.UUID
		var priceCents int64

		err = rows.Scan(
			&productID,
			&item.Name,
			&item.Image,
			&priceCents,
			&item.Qty,
		)
		if err != nil {
			return nil, err
		}

		if item.ProductID, err = kernel.UUIDFromBytes(productID[:]); err != nil {
			return nil, err
		}
		if item.Price, err = kernel.MoneyFromCents(priceCents); err != nil {
			return nil, err
		}

		lineItems = append(lineItems, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lineItems, nil
}
