package commands

import (
	"errors"

	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateProductCommandIsNotConstructed = errors.New(
		"CreateProductCommand must be created via NewCreateProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrProductPriceIsInvalid = errors.New("product price must be greater than 0")
)

// CreateProductCommand represents a request to add a new product to the catalog.
type CreateProductCommand struct { //nolint:recvcheck //using for validation
	name  string
	price decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreateProductCommand creates a command to add a new product.
func NewCreateProductCommand(name string, price decimal.Decimal) (CreateProductCommand, error) {
	command := CreateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return CreateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateProductCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductCommandIsNotConstructed)
}

// Name returns the product name.
func (c CreateProductCommand) Name() string {
	return c.name
}

// Price returns the product unit price.
func (c CreateProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c *CreateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateProductCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrProductPriceIsInvalid
	}

	c.price = price
	return nil
}
