// Package productrepo maps product aggregates to their relational
// representation.
package productrepo

import (
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/product"

	"github.com/google/uuid"
)

// ProductDTO represents the database structure for persisting product
// aggregates. Quantity is the authoritative on-hand count; in_stock is
// derived but stored so list queries can filter without arithmetic.
type ProductDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Price        float64   `gorm:"not null"`
	Quantity     int       `gorm:"type:int;not null"`
	InStock      bool      `gorm:"not null"`
	ReturnPolicy int       `gorm:"type:int;not null"`
}

// TableName overrides GORM's default naming to use "products".
func (ProductDTO) TableName() string {
	return "products"
}

func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Price:        aggregate.Price(),
		Quantity:     aggregate.Quantity(),
		InStock:      aggregate.InStock(),
		ReturnPolicy: int(aggregate.ReturnPolicy()),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return product.RestoreProduct(id, dto.Name, dto.Price, dto.Quantity,
		product.ReturnPolicy(dto.ReturnPolicy))
}
