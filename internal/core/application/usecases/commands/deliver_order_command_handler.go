package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler handles the shipped-to-delivered order transition.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeliverOrderCommandHandler creates a handler for the delivery transition.
func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command. Returns false without error when the
// order does not exist; fails with InvalidStateError when it is not shipped.
func (h *DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Deliver)
}
