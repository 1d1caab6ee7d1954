package commands

import (
	"errors"

	"commerce/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand represents a request to mark a pending order as paid.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID int64

	guard guard.ConstructorGuard
}

// NewMarkOrderPaidCommand creates a command to mark an order as paid.
func NewMarkOrderPaidCommand(orderID int64) (MarkOrderPaidCommand, error) {
	command := MarkOrderPaidCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to pay.
func (c MarkOrderPaidCommand) OrderID() int64 {
	return c.orderID
}

func (c *MarkOrderPaidCommand) setOrderID(orderID int64) error {
	if orderID <= 0 {
		return ErrOrderIDIsInvalid
	}

	c.orderID = orderID
	return nil
}
