package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// MarkOrderPaidCommandHandler handles the pending-to-paid order transition.
type MarkOrderPaidCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewMarkOrderPaidCommandHandler creates a handler for the payment transition.
func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the payment command. Returns false without error when the
// order does not exist; fails with InvalidStateError when it is not pending.
func (h *MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).MarkAsPaid)
}
