// Package customer provides the Customer entity for the commerce domain.
// Customers own a validated Email value object and can only be mutated
// through explicit update operations that re-run validation.
package customer

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
	"commerce/internal/pkg/guard"
)

// MaxNameLength is the maximum allowed length of a customer name in characters.
const MaxNameLength = 100

// ErrCustomerIsNotConstructed is returned when a Customer instance was not created
// through the NewCustomer or RestoreCustomer constructors.
var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

// Customer represents a registered customer.
//
// Invariants:
//   - Name is non-blank and at most MaxNameLength characters
//   - Email is a validated kernel.Email value object
//   - CreatedAt is set once, in UTC, at construction
//   - The surrogate id is assigned by persistence; zero means not yet persisted
type Customer struct {
	// id is the surrogate identifier assigned by persistence
	id int64
	// name is the customer's display name
	name string
	// email is the customer's validated email address
	email kernel.Email
	// createdAt records when the customer was created (UTC)
	createdAt time.Time
	// guard ensures the customer was properly constructed
	guard guard.ConstructorGuard
}

// NewCustomer creates a new Customer with the given name and email.
// The creation timestamp is set to the current UTC time and the id is left
// zero until persistence assigns one.
//
// Returns a validation error if the name is blank or exceeds MaxNameLength,
// or if the email is a zero value that bypassed kernel.NewEmail.
func NewCustomer(name string, email kernel.Email) (*Customer, error) {
	customer := &Customer{
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// RestoreCustomer reconstructs a Customer from persistent storage, preserving
// its assigned id and original creation timestamp. The restored customer is
// validated with the same rules as NewCustomer.
func RestoreCustomer(id int64, name string, email kernel.Email, createdAt time.Time) (*Customer, error) {
	customer := &Customer{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		customer.setID(id),
		customer.setName(name),
		customer.setEmail(email),
	); err != nil {
		return nil, err
	}

	return customer, nil
}

// Validate ensures the Customer instance was properly constructed.
func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// ID returns the persistence-assigned identifier, or zero if not yet persisted.
func (c *Customer) ID() int64 {
	return c.id
}

// Name returns the customer's display name.
func (c *Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c *Customer) Email() kernel.Email {
	return c.email
}

// CreatedAt returns the UTC creation timestamp.
func (c *Customer) CreatedAt() time.Time {
	return c.createdAt
}

// UpdateName changes the customer's name after re-validating it.
func (c *Customer) UpdateName(name string) error {
	return c.setName(name)
}

// UpdateEmail changes the customer's email address. The email must have been
// created through kernel.NewEmail, so no further shape validation is needed here.
func (c *Customer) UpdateEmail(email kernel.Email) error {
	return c.setEmail(email)
}

func (c *Customer) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("customer id",
			fmt.Errorf("%d is not greater than 0", id))
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("Name cannot be empty")
	}
	if length := utf8.RuneCountInString(name); length > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("name length", length, 1, MaxNameLength)
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email kernel.Email) error {
	if err := email.Validate(); err != nil {
		return err
	}
	c.email = email
	return nil
}
