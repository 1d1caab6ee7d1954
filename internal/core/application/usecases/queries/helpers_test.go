package queries_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func restoredCustomer(t *testing.T, id int64, name, email string) *customer.Customer {
	t.Helper()

	parsed, err := kernel.NewEmail(email)
	require.NoError(t, err)

	aggregate, err := customer.RestoreCustomer(id, name, parsed, time.Now())
	require.NoError(t, err)
	return aggregate
}

func restoredProduct(t *testing.T, id int64, name, price string) *product.Product {
	t.Helper()

	aggregate, err := product.RestoreProduct(id, name, decimal.RequireFromString(price), time.Now())
	require.NoError(t, err)
	return aggregate
}

func restoredOrderItem(t *testing.T, id, orderID, productID int64, quantity int, unitPrice string) *order.OrderItem {
	t.Helper()

	item, err := order.RestoreOrderItem(id, orderID, productID, quantity, decimal.RequireFromString(unitPrice))
	require.NoError(t, err)
	return item
}

func restoredOrder(t *testing.T, id, customerID int64, status order.Status, items []*order.OrderItem) *order.Order {
	t.Helper()

	now := time.Now()
	aggregate, err := order.RestoreOrder(id, customerID, now, status, now, items)
	require.NoError(t, err)
	return aggregate
}
