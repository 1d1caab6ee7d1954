package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// CancelOrderCommandHandler handles order cancellation.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command. Returns false without error when
// the order does not exist; fails with InvalidStateError when the order has
// already been shipped, delivered, or cancelled.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Cancel)
}
