package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetProductsPagedQueryIsNotConstructed = errors.New(
	"GetProductsPagedQuery must be created via NewGetProductsPagedQuery constructor",
)

// GetProductsPagedQuery retrieves one page of the product catalog.
type GetProductsPagedQuery struct { //nolint:recvcheck //using for validation
	page kernel.PageRequest

	guard guard.ConstructorGuard
}

// NewGetProductsPagedQuery creates a paged catalog query.
// pageNumber is 1-based; both arguments must be positive.
func NewGetProductsPagedQuery(pageNumber, pageSize int) (GetProductsPagedQuery, error) {
	query := GetProductsPagedQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setPage(pageNumber, pageSize); err != nil {
		return GetProductsPagedQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductsPagedQuery) Validate() error {
	return q.guard.Validate(ErrGetProductsPagedQueryIsNotConstructed)
}

// Page returns the requested page window.
func (q GetProductsPagedQuery) Page() kernel.PageRequest {
	return q.page
}

func (q *GetProductsPagedQuery) setPage(pageNumber, pageSize int) error {
	page, err := kernel.NewPageRequest(pageNumber, pageSize)
	if err != nil {
		return err
	}

	q.page = page
	return nil
}
