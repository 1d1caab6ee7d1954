package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

// DeleteCustomerCommand represents a request to remove a customer.
type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID int64

	guard guard.ConstructorGuard
}

// NewDeleteCustomerCommand creates a command to remove an existing customer.
func NewDeleteCustomerCommand(customerID int64) (DeleteCustomerCommand, error) {
	command := DeleteCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCustomerID(customerID); err != nil {
		return DeleteCustomerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer to remove.
func (c DeleteCustomerCommand) CustomerID() int64 {
	return c.customerID
}

func (c *DeleteCustomerCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	c.customerID = customerID
	return nil
}
