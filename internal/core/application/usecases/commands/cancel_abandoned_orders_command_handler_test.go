package commands_test

import (
	"testing"
	"time"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelAbandonedOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cutoff := time.Now().UTC().Add(-24 * time.Hour)
	cmd, err := commands.NewCancelAbandonedOrdersCommand(cutoff)
	require.NoError(t, err)

	stale1 := restoredOrder(t, 1, order.Pending)
	stale2 := restoredOrder(t, 2, order.Pending)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingCreatedBefore", mock.Anything, cmd.Cutoff()).
			Return([]*order.Order{stale1, stale2}, nil).Once(),
		repo.On("Update", mock.Anything, stale1).Return(nil).Once(),
		repo.On("Update", mock.Anything, stale2).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelAbandonedOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, cancelled)
	assert.Equal(t, order.Cancelled, stale1.Status())
	assert.Equal(t, order.Cancelled, stale2.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelAbandonedOrdersCommandHandler_Handle_NothingToSweep(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCancelAbandonedOrdersCommand(time.Now().UTC())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("GetAllPendingCreatedBefore", mock.Anything, cmd.Cutoff()).
			Return([]*order.Order{}, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelAbandonedOrdersCommandHandler(factory)
	cancelled, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, cancelled)
}

func TestNewCancelAbandonedOrdersCommand_RequiresCutoff(t *testing.T) {
	_, err := commands.NewCancelAbandonedOrdersCommand(time.Time{})

	require.ErrorIs(t, err, commands.ErrCutoffIsRequired)
}
