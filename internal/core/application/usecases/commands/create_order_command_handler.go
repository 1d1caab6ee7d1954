package commands

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order placement.
// The order and all of its items are persisted within a single transaction;
// the order row is written first so items can reference its assigned id.
type CreateOrderCommandHandler struct {
	uowFactory OrderWithItemsUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement operations.
func NewCreateOrderCommandHandler(uowFactory OrderWithItemsUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order placement command and returns the identifier
// assigned by persistence. Fails with ObjectNotFoundError when the ordering
// customer does not exist.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.CustomerRepository().Get(ctx, cmd.CustomerID()); err != nil {
		return 0, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerID())
	if err != nil {
		return 0, err
	}

	orderID, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return 0, err
	}

	itemRepo := uow.OrderItemRepository()
	for _, params := range cmd.Items() {
		item, err := order.NewOrderItem(orderID, params.ProductID, params.Quantity, params.UnitPrice)
		if err != nil {
			return 0, err
		}

		if _, err = itemRepo.Add(ctx, item); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return orderID, nil
}
