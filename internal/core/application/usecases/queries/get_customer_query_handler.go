package queries

import (
	"context"
	"errors"

	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// GetCustomerQueryHandler retrieves customer information through the repository port.
type GetCustomerQueryHandler struct {
	customers ports.CustomerRepository
}

// NewGetCustomerQueryHandler creates a handler for customer lookup queries.
func NewGetCustomerQueryHandler(customers ports.CustomerRepository) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{customers: customers}
}

// Handle executes the lookup. Returns nil without error when no customer
// exists under the requested identifier.
func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (*CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.customers.Get(ctx, query.CustomerID())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	response := customerToResponse(aggregate)
	return &response, nil
}
