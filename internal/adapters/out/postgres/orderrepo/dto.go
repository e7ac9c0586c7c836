// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Pricing and line items are written once at creation; only the
// lifecycle columns (status, payment result, timestamps) change afterwards.
type OrderDTO struct {
	ID                 uuid.UUID          `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID          `gorm:"type:uuid;not null;index"`
	LineItems          []OrderLineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	ShippingStreet     string             `gorm:"type:varchar(255);not null"`
	ShippingCity       string             `gorm:"type:varchar(255);not null"`
	ShippingPostalCode string             `gorm:"type:varchar(32);not null"`
	ShippingCountry    string             `gorm:"type:varchar(64);not null"`
	PaymentMethod      string             `gorm:"type:varchar(64);not null"`
	ItemsPriceCents    int64              `gorm:"type:bigint;not null"`
	TaxPriceCents      int64              `gorm:"type:bigint;not null"`
	ShippingPriceCents int64              `gorm:"type:bigint;not null"`
	TotalPriceCents    int64              `gorm:"type:bigint;not null"`
	Status             int                `gorm:"type:int;not null;index"`
	PaymentID          string             `gorm:"type:varchar(255)"`
	PaymentStatus      string             `gorm:"type:varchar(64)"`
	PaymentUpdateTime  string             `gorm:"type:varchar(64)"`
	PaymentPayerEmail  string             `gorm:"type:varchar(255)"`
	PaidAt             *time.Time
	DeliveredAt        *time.Time
	CreatedAt          time.Time `gorm:"not null"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineItemDTO represents one priced order line. PriceCents is the
// catalog price captured at checkout and never changes.
type OrderLineItemDTO struct {
	OrderID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	Image      string    `gorm:"type:varchar(512)"`
	PriceCents int64     `gorm:"type:bigint;not null"`
	Qty        int       `gorm:"type:int;not null;check:qty >= 1"`
	Position   int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for order line entities.
func (OrderLineItemDTO) TableName() string {
	return "order_line_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	lineItems := make([]OrderLineItemDTO, 0, len(aggregate.LineItems()))

	for position, li := range aggregate.LineItems() {
		lineItems = append(lineItems, OrderLineItemDTO{
			OrderID:    orderID,
			ProductID:  li.ProductID().Bytes(),
			Name:       li.Name(),
			Image:      li.Image(),
			PriceCents: li.Price().Cents(),
			Qty:        li.Qty(),
			Position:   position,
		})
	}

	dto := OrderDTO{
		ID:                 orderID,
		UserID:             aggregate.UserID().Bytes(),
		LineItems:          lineItems,
		ShippingStreet:     aggregate.ShippingAddress().Street(),
		ShippingCity:       aggregate.ShippingAddress().City(),
		ShippingPostalCode: aggregate.ShippingAddress().PostalCode(),
		ShippingCountry:    aggregate.ShippingAddress().Country(),
		PaymentMethod:      aggregate.PaymentMethod(),
		ItemsPriceCents:    aggregate.ItemsPrice().Cents(),
		TaxPriceCents:      aggregate.TaxPrice().Cents(),
		ShippingPriceCents: aggregate.ShippingPrice().Cents(),
		TotalPriceCents:    aggregate.TotalPrice().Cents(),
		Status:             int(aggregate.Status()),
		PaidAt:             aggregate.PaidAt(),
		DeliveredAt:        aggregate.DeliveredAt(),
		CreatedAt:          aggregate.CreatedAt(),
	}

	if result := aggregate.PaymentResult(); result != nil {
		dto.PaymentID = result.ID()
		dto.PaymentStatus = result.Status()
		dto.PaymentUpdateTime = result.UpdateTime()
		dto.PaymentPayerEmail = result.PayerEmail()
	}

	return dto
}

// toDomain converts a database DTO to an order domain aggregate.
// Line items must already be ordered by position.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	lineItems := make([]*order.LineItem, 0, len(dto.LineItems))
	for _, liDto := range dto.LineItems {
		li, liErr := lineItemToDomain(liDto)
		if liErr != nil {
			return nil, liErr
		}
		lineItems = append(lineItems, li)
	}

	address, err := order.NewAddress(
		dto.ShippingStreet, dto.ShippingCity, dto.ShippingPostalCode, dto.ShippingCountry)
	if err != nil {
		return nil, err
	}

	itemsPrice, err := kernel.MoneyFromCents(dto.ItemsPriceCents)
	if err != nil {
		return nil, err
	}
	taxPrice, err := kernel.MoneyFromCents(dto.TaxPriceCents)
	if err != nil {
		return nil, err
	}
	shippingPrice, err := kernel.MoneyFromCents(dto.ShippingPriceCents)
	if err != nil {
		return nil, err
	}
	totalPrice, err := kernel.MoneyFromCents(dto.TotalPriceCents)
	if err != nil {
		return nil, err
	}

	var paymentResult *order.PaymentResult
	if dto.PaymentID != "" {
		result, resultErr := order.NewPaymentResult(
			dto.PaymentID, dto.PaymentStatus, dto.PaymentUpdateTime, dto.PaymentPayerEmail)
		if resultErr != nil {
			return nil, resultErr
		}
		paymentResult = &result
	}

	return order.RestoreOrder(
		id, userID, lineItems, address, dto.PaymentMethod,
		itemsPrice, taxPrice, shippingPrice, totalPrice,
		order.Status(dto.Status), paymentResult,
		dto.PaidAt, dto.DeliveredAt, dto.CreatedAt,
	)
}

// lineItemToDomain converts an order line DTO to its domain entity.
func lineItemToDomain(dto OrderLineItemDTO) (*order.LineItem, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.MoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return order.NewLineItem(productID, dto.Name, dto.Image, price, dto.Qty)
}
