package queries

import (
	"context"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/ports"
)

// GetOrdersPagedQueryHandler retrieves one page of orders.
type GetOrdersPagedQueryHandler struct {
	orders ports.OrderRepository
}

// NewGetOrdersPagedQueryHandler creates a handler for paged order queries.
func NewGetOrdersPagedQueryHandler(orders ports.OrderRepository) GetOrdersPagedQueryHandler {
	return GetOrdersPagedQueryHandler{orders: orders}
}

// Handle executes the query. When the query carries a customer filter the
// page and total count are scoped to that customer. Orders are returned
// without line items.
func (h GetOrdersPagedQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersPagedQuery,
) (kernel.PagedResult[OrderResponse], error) {
	if err := query.Validate(); err != nil {
		return kernel.PagedResult[OrderResponse]{}, err
	}

	var (
		page kernel.PagedResult[*order.Order]
		err  error
	)

	if query.HasCustomerFilter() {
		page, err = h.orders.GetPagedByCustomer(ctx, query.CustomerID(), query.Page())
	} else {
		page, err = h.orders.GetPaged(ctx, query.Page())
	}
	if err != nil {
		return kernel.PagedResult[OrderResponse]{}, err
	}

	return kernel.MapPagedResult(page, func(aggregate *order.Order) OrderResponse {
		return orderToResponse(aggregate)
	}), nil
}
