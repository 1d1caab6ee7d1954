package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetOrdersPagedQueryIsNotConstructed = errors.New(
	"GetOrdersPagedQuery must be created via NewGetOrdersPagedQuery constructor",
)

// GetOrdersPagedQuery retrieves one page of orders, optionally scoped
// to a single customer.
type GetOrdersPagedQuery struct { //nolint:recvcheck //using for validation
	page       kernel.PageRequest
	customerID int64

	guard guard.ConstructorGuard
}

// NewGetOrdersPagedQuery creates a paged order query across all customers.
// pageNumber is 1-based; both arguments must be positive.
func NewGetOrdersPagedQuery(pageNumber, pageSize int) (GetOrdersPagedQuery, error) {
	query := GetOrdersPagedQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPage(pageNumber, pageSize); err != nil {
		return GetOrdersPagedQuery{}, err
	}

	return query, nil
}

// NewGetOrdersPagedQueryForCustomer creates a paged order query limited
// to the given customer.
func NewGetOrdersPagedQueryForCustomer(customerID int64, pageNumber, pageSize int) (GetOrdersPagedQuery, error) {
	query, err := NewGetOrdersPagedQuery(pageNumber, pageSize)
	if err != nil {
		return GetOrdersPagedQuery{}, err
	}

	if err := query.setCustomerID(customerID); err != nil {
		return GetOrdersPagedQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersPagedQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersPagedQueryIsNotConstructed)
}

// Page returns the requested page window.
func (q GetOrdersPagedQuery) Page() kernel.PageRequest {
	return q.page
}

// CustomerID returns the customer filter, zero when the query spans all customers.
func (q GetOrdersPagedQuery) CustomerID() int64 {
	return q.customerID
}

// HasCustomerFilter reports whether the query is scoped to one customer.
func (q GetOrdersPagedQuery) HasCustomerFilter() bool {
	return q.customerID > 0
}

func (q *GetOrdersPagedQuery) setPage(pageNumber, pageSize int) error {
	page, err := kernel.NewPageRequest(pageNumber, pageSize)
	if err != nil {
		return err
	}

	q.page = page
	return nil
}

func (q *GetOrdersPagedQuery) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	q.customerID = customerID
	return nil
}
