// Package productrepo provides read-only access to the product catalog.
// The storefront never writes this table; catalog management is another
// system's job.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure of a catalog product.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Image        string    `gorm:"type:varchar(512)"`
	PriceCents   int64     `gorm:"type:bigint;not null"`
	CountInStock int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// toDomain converts a database DTO to a product domain entity.
func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.MoneyFromCents(dto.PriceCents)
	if err != nil {
		return nil, err
	}

	return product.NewProduct(id, dto.Name, dto.Image, price, dto.CountInStock)
}
