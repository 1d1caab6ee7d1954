package commands

import (
	"errors"

	"commerce/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// OrderItemParams carries the line item input for order creation.
// Item invariants are enforced by the domain when the items are constructed.
type OrderItemParams struct {
	ProductID int64
	Quantity  int
	UnitPrice decimal.Decimal
}

// CreateOrderCommand represents a request to place a new order with its line items.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID int64
	items      []OrderItemParams

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new order.
// An order may be created without items; they can be added while it is pending.
func NewCreateOrderCommand(customerID int64, items []OrderItemParams) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setCustomerID(customerID),
		command.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the ordering customer.
func (c CreateOrderCommand) CustomerID() int64 {
	return c.customerID
}

// Items returns the line item parameters.
func (c CreateOrderCommand) Items() []OrderItemParams {
	return c.items
}

func (c *CreateOrderCommand) setCustomerID(customerID int64) error {
	if customerID <= 0 {
		return ErrCustomerIDIsInvalid
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []OrderItemParams) error {
	c.items = make([]OrderItemParams, len(items))
	copy(c.items, items)
	return nil
}
