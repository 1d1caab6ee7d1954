package queries

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
	ErrCustomerIDIsInvalid = errors.New("customer id must be greater than 0")
)

// GetCustomerQuery retrieves a single customer by identifier.
type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetCustomerQuery creates a query to retrieve one customer.
func NewGetCustomerQuery(customerID int64) (GetCustomerQuery, error) {
	query := GetCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetCustomerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

// CustomerID returns the identifier of the customer to look up.
func (q GetCustomerQuery) CustomerID() int64 {
	return q.customerID
}

func (q *GetCustomerQuery) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	q.customerID = customerID
	return nil
}
