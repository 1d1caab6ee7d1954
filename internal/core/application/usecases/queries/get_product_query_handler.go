package queries

import (
	"context"
	"errors"

	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// GetProductQueryHandler retrieves product information through the repository port.
type GetProductQueryHandler struct {
	products ports.ProductRepository
}

// NewGetProductQueryHandler creates a handler for product lookup queries.
func NewGetProductQueryHandler(products ports.ProductRepository) GetProductQueryHandler {
	return GetProductQueryHandler{products: products}
}

// Handle executes the lookup. Returns nil without error when no product
// exists under the requested identifier.
func (h GetProductQueryHandler) Handle(ctx context.Context, query GetProductQuery) (*ProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.products.Get(ctx, query.ProductID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	response := productToResponse(aggregate)
	return &response, nil
}
