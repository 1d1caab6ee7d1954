package queries

import (
	"context"

	"commerce/internal/core/ports"
)

// GetAllProductsQueryHandler retrieves the complete product catalog.
type GetAllProductsQueryHandler struct {
	products ports.ProductRepository
}

// NewGetAllProductsQueryHandler creates a handler for catalog list queries.
func NewGetAllProductsQueryHandler(products ports.ProductRepository) GetAllProductsQueryHandler {
	return GetAllProductsQueryHandler{products: products}
}

// Handle executes the query and returns product read models ordered by identifier.
func (h GetAllProductsQueryHandler) Handle(ctx context.Context, query GetAllProductsQuery) ([]ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.products.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ProductResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, productToResponse(aggregate))
	}

	return responses, nil
}
