package commands

import (
	"errors"

	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrUpdateProductCommandIsNotConstructed = errors.New(
		"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
	)
	ErrProductIDIsInvalid = errors.New("product id must be greater than 0")
)

// UpdateProductCommand represents a request to change a product's name and price.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID int64
	name      string
	price     decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update an existing product.
func NewUpdateProductCommand(productID int64, name string, price decimal.Decimal) (UpdateProductCommand, error) {
	command := UpdateProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setProductID(productID),
		command.setName(name),
		command.setPrice(price),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product to update.
func (c UpdateProductCommand) ProductID() int64 {
	return c.productID
}

// Name returns the new product name.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Price returns the new unit price.
func (c UpdateProductCommand) Price() decimal.Decimal {
	return c.price
}

func (c *UpdateProductCommand) setProductID(productID int64) error {
	if productID <= 0 {
		return ErrProductIDIsInvalid
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return ErrProductPriceIsInvalid
	}

	c.price = price
	return nil
}
