package queries

import (
	"context"

	"commerce/internal/core/ports"
)

// GetAllCustomersQueryHandler retrieves the complete customer list.
type GetAllCustomersQueryHandler struct {
	customers ports.CustomerRepository
}

// NewGetAllCustomersQueryHandler creates a handler for customer list queries.
func NewGetAllCustomersQueryHandler(customers ports.CustomerRepository) GetAllCustomersQueryHandler {
	return GetAllCustomersQueryHandler{customers: customers}
}

// Handle executes the query and returns customer read models ordered by identifier.
func (h GetAllCustomersQueryHandler) Handle(ctx context.Context, query GetAllCustomersQuery) ([]CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	aggregates, err := h.customers.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]CustomerResponse, 0, len(aggregates))
	for _, aggregate := range aggregates {
		responses = append(responses, customerToResponse(aggregate))
	}

	return responses, nil
}
