// Package productrepo provides data transfer objects and mapping functions for
// product persistence. It implements the repository pattern for the product
// aggregate, converting between domain entities and database rows.
package productrepo

import (
	"time"

	"commerce/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for persisting product aggregates.
// Price is stored as numeric to keep monetary values exact.
type ProductDTO struct {
	ID        int64           `gorm:"primaryKey;autoIncrement"`
	Name      string          `gorm:"size:200;not null"`
	Price     decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	CreatedAt time.Time
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

// fromDomain converts a product domain aggregate to its database representation.
func fromDomain(aggregate *product.Product) ProductDTO {
	return ProductDTO{
		ID:        aggregate.ID(),
		Name:      aggregate.Name(),
		Price:     aggregate.Price(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// toDomain converts a database row to a product domain aggregate using RestoreProduct.
func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.RestoreProduct(dto.ID, dto.Name, dto.Price, dto.CreatedAt)
}
