package commands

import (
	"context"
	"errors"

	"commerce/internal/pkg/errs"
)

// DeleteOrderCommandHandler handles the business logic for order removal.
// Items are removed together with the order inside one transaction.
type DeleteOrderCommandHandler struct {
	uowFactory OrderWithItemsUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order removal operations.
func NewDeleteOrderCommandHandler(uowFactory OrderWithItemsUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order removal command.
// Returns false without error when the order does not exist.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OrderItemRepository().DeleteByOrder(ctx, cmd.OrderID()); err != nil {
		return false, err
	}

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
