package queries_test

import (
	"context"
	"testing"

	"commerce/internal/core/application/usecases/queries"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderQueryHandler_FoundWithItems(t *testing.T) {
	ctx := context.Background()
	repo := &MockOrderRepository{}

	items := []*order.OrderItem{
		restoredOrderItem(t, 1, 10, 100, 2, "24.95"),
		restoredOrderItem(t, 2, 10, 101, 1, "49.90"),
	}
	aggregate := restoredOrder(t, 10, 5, order.Paid, items)
	repo.On("GetWithItems", ctx, int64(10)).Return(aggregate, nil)

	handler := queries.NewGetOrderQueryHandler(repo)
	query, err := queries.NewGetOrderQuery(10)
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	require.NotNil(t, response)
	assert.Equal(t, int64(10), response.ID)
	assert.Equal(t, int64(5), response.CustomerID)
	assert.Equal(t, "Paid", response.Status)
	require.Len(t, response.Items, 2)
	assert.Equal(t, int64(100), response.Items[0].ProductID)
	assert.True(t, response.Items[0].TotalPrice.Equal(decimal.RequireFromString("49.90")))
	assert.True(t, response.TotalAmount.Equal(decimal.RequireFromString("99.80")))
	repo.AssertExpectations(t)
}

func TestGetOrderQueryHandler_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := &MockOrderRepository{}
	repo.On("GetWithItems", ctx, int64(404)).Return(nil, errs.NewObjectNotFoundError("order", "404"))

	handler := queries.NewGetOrderQueryHandler(repo)
	query, err := queries.NewGetOrderQuery(404)
	require.NoError(t, err)

	response, err := handler.Handle(ctx, query)

	require.NoError(t, err)
	assert.Nil(t, response)
}

func TestNewGetOrderQuery_RejectsInvalidID(t *testing.T) {
	_, err := queries.NewGetOrderQuery(0)
	require.ErrorIs(t, err, queries.ErrOrderIDIsInvalid)
}
