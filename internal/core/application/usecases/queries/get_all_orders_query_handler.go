package queries

import (
	"context"

	"commerce/internal/core/ports"
)

// GetAllOrdersQueryHandler retrieves the complete order list.
type GetAllOrdersQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for order list queries.
func NewGetAllOrdersQueryHandler(orders ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orders: orders}
}

// Handle executes the query and returns order read models ordered by
// identifier. Orders are returned without line items.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, orderToResponse(aggregate))
	}

	return responses, nil
}
