package postgres_test

import (
	"testing"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// createTestCustomer creates a valid customer for testing purposes.
func createTestCustomer(t *testing.T, emailAddress string) *customer.Customer {
	t.Helper()

	email, err := kernel.NewEmail(emailAddress)
	require.NoError(t, err)

	c, err := customer.NewCustomer("Test Customer", email)
	require.NoError(t, err)
	return c
}

// createTestProduct creates a valid product for testing purposes.
func createTestProduct(t *testing.T, name, price string) *product.Product {
	t.Helper()

	p, err := product.NewProduct(name, decimal.RequireFromString(price))
	require.NoError(t, err)
	return p
}
