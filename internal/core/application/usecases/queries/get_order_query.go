package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves one order with its line items, pricing record,
// and lifecycle state.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID)
//	if err != nil {
//	    return err
//	}
//	handler := NewGetOrderQueryHandler(db)
//
//	orderView, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %s: %s, total %s\n",
//	    orderView.ID, orderView.Status, orderView.TotalPrice)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the full display shape of one order.
type GetOrderQueryResponse struct {
	ID                kernel.UUID
	UserID            kernel.UUID
	LineItems         []OrderLineItemResponse
	Street            string
	City              string
	PostalCode        string
	Country           string
	PaymentMethod     string
	ItemsPrice        kernel.Money
	TaxPrice          kernel.Money
	ShippingPrice     kernel.Money
	TotalPrice        kernel.Money
	Status            order.Status
	PaymentID         string
	PaymentStatus     string
	PaymentUpdateTime string
	PayerEmail        string
	PaidAt            *time.Time
	DeliveredAt       *time.Time
	CreatedAt         time.Time
}

// OrderLineItemResponse is one priced order line. Price is the catalog
// price captured at checkout.
type OrderLineItemResponse struct {
	ProductID kernel.UUID
	Name      string
	Image     string
	Price     kernel.Money
	Qty       int
}
