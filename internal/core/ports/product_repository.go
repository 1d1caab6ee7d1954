package ports

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
type ProductRepository interface {
	// Add persists a new product and returns the identifier assigned by storage.
	Add(ctx context.Context, aggregate *product.Product) (int64, error)

	// Update persists changes to an existing product.
	Update(ctx context.Context, aggregate *product.Product) error

	// Delete removes the product with the given identifier.
	// Returns errs.ObjectNotFoundError when no such product exists.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a product aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such product exists.
	Get(ctx context.Context, id int64) (*product.Product, error)

	// GetAll retrieves every product ordered by identifier.
	GetAll(ctx context.Context) ([]*product.Product, error)

	// GetPaged retrieves one page of products ordered by identifier,
	// together with the total count across all pages.
	GetPaged(ctx context.Context, page kernel.PageRequest) (kernel.PagedResult[*product.Product], error)
}
