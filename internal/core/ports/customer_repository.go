// Package ports defines repository and transaction interfaces for the commerce domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer aggregates.
type CustomerRepository interface {
	// Add persists a new customer and returns the identifier assigned by storage.
	Add(ctx context.Context, aggregate *customer.Customer) (int64, error)

	// Update persists changes to an existing customer.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Delete removes the customer with the given identifier.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Delete(ctx context.Context, id int64) error

	// Get retrieves a customer aggregate by its unique identifier.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	Get(ctx context.Context, id int64) (*customer.Customer, error)

	// GetByEmail retrieves the customer registered under the given email.
	// Returns errs.ObjectNotFoundError when no such customer exists.
	GetByEmail(ctx context.Context, email kernel.Email) (*customer.Customer, error)

	// GetAll retrieves every customer ordered by identifier.
	GetAll(ctx context.Context) ([]*customer.Customer, error)

	// GetPaged retrieves one page of customers ordered by identifier,
	// together with the total count across all pages.
	GetPaged(ctx context.Context, page kernel.PageRequest) (kernel.PagedResult[*customer.Customer], error)
}
