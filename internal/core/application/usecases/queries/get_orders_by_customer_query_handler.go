package queries

import (
	"context"

	"commerce/internal/core/ports"
)

// GetOrdersByCustomerQueryHandler retrieves a customer's order history.
type GetOrdersByCustomerQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersByCustomerQueryHandler creates a handler for customer order history queries.
func NewGetOrdersByCustomerQueryHandler(orders ports.OrderRepository) GetOrdersByCustomerQueryHandler {
	return GetOrdersByCustomerQueryHandler{orders: orders}
}

// Handle executes the query. An unknown customer yields an empty list,
// not an error. Orders are returned without line items.
func (h GetOrdersByCustomerQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByCustomerQuery,
) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.orders.GetByCustomer(ctx, query.CustomerID())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, orderToResponse(aggregate))
	}

	return responses, nil
}
