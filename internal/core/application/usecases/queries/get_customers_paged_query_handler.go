package queries

import (
	"context"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/ports"
)

// GetCustomersPagedQueryHandler retrieves one page of the customer list.
type GetCustomersPagedQueryHandler struct {
	customers ports.CustomerRepository
}

// NewGetCustomersPagedQueryHandler creates a handler for paged customer queries.
func NewGetCustomersPagedQueryHandler(customers ports.CustomerRepository) GetCustomersPagedQueryHandler {
	return GetCustomersPagedQueryHandler{customers: customers}
}

// Handle executes the query. A page beyond the data yields an empty item
// list with the real total count, never an error.
func (h GetCustomersPagedQueryHandler) Handle(
	ctx context.Context,
	query GetCustomersPagedQuery,
) (kernel.PagedResult[CustomerResponse], error) {
	if err := query.Validate(); err != nil {
		return kernel.PagedResult[CustomerResponse]{}, err
	}

	page, err := h.customers.GetPaged(ctx, query.Page())
	if err != nil {
		return kernel.PagedResult[CustomerResponse]{}, err
	}

	return kernel.MapPagedResult(page, func(aggregate *customer.Customer) CustomerResponse {
		return customerToResponse(aggregate)
	}), nil
}
