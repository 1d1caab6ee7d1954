package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"
	"commerce/internal/core/ports"
)

// GetProductsPagedQueryHandler retrieves one page of the product catalog.
type GetProductsPagedQueryHandler struct {
	products ports.ProductRepository
}

// NewGetProductsPagedQueryHandler creates a handler for paged catalog queries.
func NewGetProductsPagedQueryHandler(products ports.ProductRepository) GetProductsPagedQueryHandler {
	return GetProductsPagedQueryHandler{products: products}
}

// Handle executes the query. A page beyond the data yields an empty item
// list with the real total count, never an error.
func (h GetProductsPagedQueryHandler) Handle(
	ctx context.Context,
	query GetProductsPagedQuery,
) (kernel.PagedResult[ProductResponse], error) {
	if err := query.Validate(); err != nil {
		return kernel.PagedResult[ProductResponse]{}, err
	}

	page, err := h.products.GetPaged(ctx, query.Page())
	if err != nil {
		return kernel.PagedResult[ProductResponse]{}, err
	}

	return kernel.MapPagedResult(page, func(aggregate *product.Product) ProductResponse {
		return productToResponse(aggregate)
	}), nil
}
