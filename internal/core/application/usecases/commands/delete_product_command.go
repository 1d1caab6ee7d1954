package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrDeleteProductCommandIsNotConstructed = errors.New(
	"DeleteProductCommand must be created via NewDeleteProductCommand constructor",
)

// DeleteProductCommand represents a request to remove a product from the catalog.
type DeleteProductCommand struct { //nolint:recvcheck //using for validation
	productID int64

	guard guard.ConstructorGuard
}

// NewDeleteProductCommand creates a command to remove an existing product.
func NewDeleteProductCommand(productID int64) (DeleteProductCommand, error) {
	command := DeleteProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setProductID(productID); err != nil {
		return DeleteProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteProductCommand) Validate() error {
	return c.guard.Validate(ErrDeleteProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to remove.
func (c DeleteProductCommand) ProductID() int64 {
	return c.productID
}

func (c *DeleteProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	c.productID = productID
	return nil
}
