// Package cartrepo provides data transfer objects and mapping functions for
// cart persistence. It implements the repository pattern for the cart
// aggregate, converting between domain entities and database rows.
package cartrepo

import (
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
// The table is keyed by the owning user, which makes one-cart-per-user a
// storage-level fact rather than a rule to enforce.
type CartDTO struct {
	UserID uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Items  []CartItemDTO `gorm:"foreignKey:CartUserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for cart entities.
func (CartDTO) TableName() string {
	return "carts"
}

// CartItemDTO represents one cart line. Position preserves insertion order;
// PriceAtAddCents is the display snapshot taken when the line was created.
type CartItemDTO struct {
	CartUserID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name            string    `gorm:"type:varchar(255);not null"`
	Image           string    `gorm:"type:varchar(512)"`
	PriceAtAddCents int64     `gorm:"type:bigint;not null"`
	Qty             int       `gorm:"type:int;not null;check:qty >= 1"`
	Position        int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cart line entities.
func (CartItemDTO) TableName() string {
	return "cart_items"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) CartDTO {
	userID := aggregate.UserID().Bytes()
	items := make([]CartItemDTO, 0, len(aggregate.Items()))

	for position, item := range aggregate.Items() {
		items = append(items, CartItemDTO{
			CartUserID:      userID,
			ProductID:       item.ProductID().Bytes(),
			Name:            item.Name(),
			Image:           item.Image(),
			PriceAtAddCents: item.PriceAtAdd().Cents(),
			Qty:             item.Qty(),
			Position:        position,
		})
	}

	return CartDTO{
		UserID: userID,
		Items:  items,
	}
}

// toDomain converts a database DTO to a cart domain aggregate.
// Items must already be ordered by position.
func toDomain(dto CartDTO) (*cart.Cart, error) {
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*cart.Item, 0, len(dto.Items))
	for _, itemDto := range dto.Items {
		item, itemErr := itemToDomain(itemDto)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return cart.RestoreCart(userID, items)
}

// itemToDomain converts a cart line DTO to its domain entity.
func itemToDomain(dto CartItemDTO) (*cart.Item, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	priceAtAdd, err := kernel.MoneyFromCents(dto.PriceAtAddCents)
	if err != nil {
		return nil, err
	}

	return cart.NewItem(productID, dto.Name, dto.Image, priceAtAdd, dto.Qty)
}
