package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_CascadesItemsFirst(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(9)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockOrderItemRepository)
	uow := new(MockOrderWithItemsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DeleteByOrder", mock.Anything, int64(9)).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", mock.Anything, int64(9)).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWithItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	found, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, found)
	itemRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewDeleteOrderCommand(9)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	itemRepo := new(MockOrderItemRepository)
	uow := new(MockOrderWithItemsUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderItemRepository").Return(itemRepo).Once(),
		itemRepo.On("DeleteByOrder", mock.Anything, int64(9)).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Delete", mock.Anything, int64(9)).
			Return(errs.NewObjectNotFoundError("order", "9")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderWithItemsUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewDeleteOrderCommandHandler(factory)
	found, err := h.Handle(ctx, cmd)

	require.NoError(t, err, "absence is not an error")
	assert.False(t, found)
}

func TestDeleteOrderCommand_Validation(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(0)
	require.Error(t, err)

	_, err = commands.NewDeleteOrderCommand(-3)
	require.Error(t, err)

	var zero commands.DeleteOrderCommand
	require.Error(t, zero.Validate())
}
