package commands

import (
	"errors"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/guard"
)

var (
	ErrCreateCustomerCommandIsNotConstructed = errors.New(
		"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
)

// CreateCustomerCommand represents a request to register a new customer.
type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name  string
	email kernel.Email

	guard guard.ConstructorGuard
}

// NewCreateCustomerCommand creates a command to register a new customer.
// The email address is parsed and validated here so handlers always work
// with a well-formed value object.
func NewCreateCustomerCommand(name, email string) (CreateCustomerCommand, error) {
	command := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setEmail(email),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

// Name returns the customer's display name.
func (c CreateCustomerCommand) Name() string {
	return c.name
}

// Email returns the validated email address.
func (c CreateCustomerCommand) Email() kernel.Email {
	return c.email
}

func (c *CreateCustomerCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCustomerCommand) setEmail(email string) error {
	parsed, err := kernel.NewEmail(email)
	if err != nil {
		return err
	}

	c.email = parsed
	return nil
}
