package commands

import (
	"context"
	"errors"

	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

// transitionOrder loads an order, applies a lifecycle transition, and persists
// the result within one transaction. Returns false without error when the
// order does not exist; transition rejections (InvalidStateError) propagate.
func transitionOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID int64,
	transition func(*order.Order) error,
) (bool, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return false, nil
		}
		return false, err
	}

	if err = transition(aggregate); err != nil {
		return false, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
