package commands

import (
	"errors"
	"time"

	"commerce/internal/pkg/guard"
)

var (
	ErrCancelAbandonedOrdersCommandIsNotConstructed = errors.New(
		"CancelAbandonedOrdersCommand must be created via NewCancelAbandonedOrdersCommand constructor",
	)
	ErrCutoffIsRequired = errors.New("cutoff time is required")
)

// CancelAbandonedOrdersCommand represents a request to cancel every pending
// order created before the cutoff. Issued by the background sweep job.
type CancelAbandonedOrdersCommand struct { //nolint:recvcheck //using for validation
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewCancelAbandonedOrdersCommand creates a command to sweep abandoned orders.
func NewCancelAbandonedOrdersCommand(cutoff time.Time) (CancelAbandonedOrdersCommand, error) {
	command := CancelAbandonedOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setCutoff(cutoff); err != nil {
		return CancelAbandonedOrdersCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelAbandonedOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCancelAbandonedOrdersCommandIsNotConstructed)
}

// Cutoff returns the creation time threshold; pending orders created before
// it are cancelled.
func (c CancelAbandonedOrdersCommand) Cutoff() time.Time {
	return c.cutoff
}

func (c *CancelAbandonedOrdersCommand) setCutoff(cutoff time.Time) error {
	if cutoff.IsZero() {
		return ErrCutoffIsRequired
	}

	c.cutoff = cutoff.UTC()
	return nil
}
