package queries

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var (
	ErrGetProductQueryIsNotConstructed = errors.New(
		"GetProductQuery must be created via NewGetProductQuery constructor",
	)
	ErrProductIDIsInvalid = errors.New("product id must be greater than 0")
)

// GetProductQuery retrieves a single product by identifier.
type GetProductQuery struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewGetProductQuery creates a query to retrieve one product.
func NewGetProductQuery(productID int64) (GetProductQuery, error) {
	query := GetProductQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setProductID(productID); err != nil {
		return GetProductQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductQuery) Validate() error {
	return q.guard.Validate(ErrGetProductQueryIsNotConstructed)
}

// ProductID returns the identifier of the product to look up.
func (q GetProductQuery) ProductID() int64 {
	return q.productID
}

func (q *GetProductQuery) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	q.productID = productID
	return nil
}
