package queries

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var ErrGetCustomerByEmailQueryIsNotConstructed = errors.New(
	"GetCustomerByEmailQuery must be created via NewGetCustomerByEmailQuery constructor",
)

// GetCustomerByEmailQuery retrieves a single customer by email address.
type GetCustomerByEmailQuery struct { //nolint:recvcheck //using for validation
	email kernel.Email

	guard guard.ConstructorGuard
}

// NewGetCustomerByEmailQuery creates a query to look a customer up by email.
// The raw address is validated into an Email value object here.
func NewGetCustomerByEmailQuery(email string) (GetCustomerByEmailQuery, error) {
	query := GetCustomerByEmailQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := query.setEmail(email); err != nil {
		return GetCustomerByEmailQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByEmailQueryIsNotConstructed)
}

// Email returns the validated email address to look up.
func (q GetCustomerByEmailQuery) Email() kernel.Email {
	return q.email
}

func (q *GetCustomerByEmailQuery) setEmail(email string) error {
	parsed, err := kernel.NewEmail(email)
	if err != nil {
		return err
	}

	q.email = parsed
	return nil
}
