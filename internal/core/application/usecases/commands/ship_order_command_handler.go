package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// ShipOrderCommandHandler handles the paid-to-shipped order transition.
type ShipOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewShipOrderCommandHandler creates a handler for the shipping transition.
func NewShipOrderCommandHandler(uowFactory OrderUoWFactory) ShipOrderCommandHandler {
	return ShipOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipping command. Returns false without error when the
// order does not exist; fails with InvalidStateError when it is not paid.
func (h *ShipOrderCommandHandler) Handle(ctx context.Context, cmd ShipOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	return transitionOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Ship)
}
