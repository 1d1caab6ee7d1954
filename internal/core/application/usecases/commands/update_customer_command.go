package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrUpdateCustomerCommandIsNotConstructed = errors.New(
		"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
	)
	ErrCustomerIDIsInvalid = errors.New("customer id must be greater than 0")
)

// UpdateCustomerCommand represents a request to change a customer's name and email.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	name       string
	email      kernel.Email

	guard guard.ConstructorGuard
}

// NewUpdateCustomerCommand creates a command to update an existing customer.
func NewUpdateCustomerCommand(customerID int64, name, email string) (UpdateCustomerCommand, error) {
	command := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to update.
func (c UpdateCustomerCommand) CustomerID() int64 {
	return c.customerID
}

// Name returns the new display name.
func (c UpdateCustomerCommand) Name() string {
	return c.name
}

// Email returns the new validated email address.
func (c UpdateCustomerCommand) Email() kernel.Email {
	return c.email
}

func (c *UpdateCustomerCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateCustomerCommand) setEmail(email string) error {
	parsed, err := kernel.NewEmail(email)
	if err != nil {
		return err
	}

	c.email = parsed
	return nil
}
