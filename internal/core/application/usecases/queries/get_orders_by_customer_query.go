package queries

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrGetOrdersByCustomerQueryIsNotConstructed = errors.New(
	"GetOrdersByCustomerQuery must be created via NewGetOrdersByCustomerQuery constructor",
)

// GetOrdersByCustomerQuery retrieves every order placed by one customer.
type GetOrdersByCustomerQuery struct { //nolint:recvcheck //using for validation
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetOrdersByCustomerQuery creates a query scoped to one customer.
func NewGetOrdersByCustomerQuery(customerID int64) (GetOrdersByCustomerQuery, error) {
	query := GetOrdersByCustomerQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetOrdersByCustomerQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersByCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersByCustomerQueryIsNotConstructed)
}

// CustomerID returns the customer whose orders are requested.
func (q GetOrdersByCustomerQuery) CustomerID() int64 {
	return q.customerID
}

func (q *GetOrdersByCustomerQuery) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	q.customerID = customerID
	return nil
}
