package commands

import (
	"context"
)

// CancelAbandonedOrdersCommandHandler cancels stale pending orders in bulk.
// All cancellations run within one transaction so a sweep either completes
// or leaves the order book untouched.
type CancelAbandonedOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCancelAbandonedOrdersCommandHandler creates a handler for the abandoned
// order sweep.
func NewCancelAbandonedOrdersCommandHandler(uowFactory OrderUoWFactory) CancelAbandonedOrdersCommandHandler {
	return CancelAbandonedOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every pending order created before the command's cutoff and
// returns the number of orders cancelled.
func (h *CancelAbandonedOrdersCommandHandler) Handle(ctx context.Context, cmd CancelAbandonedOrdersCommand) (int, error) {
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

	repo := uow.OrderRepository()
	stale, err := repo.GetAllPendingCreatedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	for _, aggregate := range stale {
		if err = aggregate.Cancel(); err != nil {
			return 0, err
		}

		if err = repo.Update(ctx, aggregate); err != nil {
			return 0, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(stale), nil
}
