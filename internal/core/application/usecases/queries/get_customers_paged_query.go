package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetCustomersPagedQueryIsNotConstructed = errors.New(
	"GetCustomersPagedQuery must be created via NewGetCustomersPagedQuery constructor",
)

// GetCustomersPagedQuery retrieves one page of the customer list.
type GetCustomersPagedQuery struct { //nolint:recvcheck //using for validation
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewGetCustomersPagedQuery creates a paged customer list query.
// pageNumber is 1-based; both arguments must be positive.
func NewGetCustomersPagedQuery(pageNumber, pageSize int) (GetCustomersPagedQuery, error) {
	query := GetCustomersPagedQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPage(pageNumber, pageSize); err != nil {
		return GetCustomersPagedQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomersPagedQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomersPagedQueryIsNotConstructed)
}

// Page returns the requested page window.
func (q GetCustomersPagedQuery) Page() kernel.PageRequest {
	return q.page
}

func (q *GetCustomersPagedQuery) setPage(pageNumber, pageSize int) error {
	page, err := kernel.NewPageRequest(pageNumber, pageSize)
	if err != nil {
		return err
	}

	q.page = page
	return nil
}
