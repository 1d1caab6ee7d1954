package queries

import (
	"context"
	"errors"

	"commerce/internal/core/ports"
	"commerce/internal/pkg/errs"
)

// GetCustomerByEmailQueryHandler retrieves customer information by email
// through the repository port.
type GetCustomerByEmailQueryHandler struct {
	customers ports.CustomerRepository
}

// NewGetCustomerByEmailQueryHandler creates a handler for email lookup queries.
func NewGetCustomerByEmailQueryHandler(customers ports.CustomerRepository) GetCustomerByEmailQueryHandler {
	return GetCustomerByEmailQueryHandler{customers: customers}
}

// Handle executes the lookup. Returns nil without error when no customer
// is registered under the requested address.
func (h GetCustomerByEmailQueryHandler) Handle(ctx context.Context, query GetCustomerByEmailQuery) (*CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := h.customers.GetByEmail(ctx, query.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, nil
		}
		return nil, err
	}

	response := customerToResponse(aggregate)
	return &response, nil
}
