package queries

import (
	"context"
	"errors"

	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves order information through the repository port.
type GetOrderQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for order lookup queries.
func NewGetOrderQueryHandler(orders ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orders: orders}
}

// Handle executes the lookup. The response carries the order's line items
// and the total amount derived from them. Returns nil without error when
// no order exists under the requested identifier.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (*OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.orders.GetWithItems(ctx, query.OrderID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	response := orderToResponse(aggregate)
	return &response, nil
}
