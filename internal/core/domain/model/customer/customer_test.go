package customer_test

import (
	"strings"
	"testing"
	"time"

	"commerce/internal/core/domain/model/customer"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEmail(t *testing.T) kernel.Email {
	t.Helper()
	email, err := kernel.NewEmail("a@b.com")
	require.NoError(t, err)
	return email
}

func TestNewCustomer(t *testing.T) {
	t.Run("should create valid customer", func(t *testing.T) {
		email := validEmail(t)

		c, err := customer.NewCustomer("Alice", email)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, int64(0), c.ID())
		assert.Equal(t, "Alice", c.Name())
		assert.True(t, c.Email().IsEqual(email))
		assert.Equal(t, time.UTC, c.CreatedAt().Location())
	})

	t.Run("should fail with blank name", func(t *testing.T) {
		_, err := customer.NewCustomer("   ", validEmail(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "Name cannot be empty")
	})

	t.Run("should fail with overlong name", func(t *testing.T) {
		_, err := customer.NewCustomer(strings.Repeat("a", customer.MaxNameLength+1), validEmail(t))

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should accept name at the limit", func(t *testing.T) {
		name := strings.Repeat("a", customer.MaxNameLength)

		c, err := customer.NewCustomer(name, validEmail(t))

		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	})

	t.Run("should fail with zero-value email", func(t *testing.T) {
		var email kernel.Email

		_, err := customer.NewCustomer("Alice", email)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be created via NewEmail")
	})
}

func TestCustomer_UpdateName(t *testing.T) {
	t.Run("updates valid name", func(t *testing.T) {
		c, err := customer.NewCustomer("Alice", validEmail(t))
		require.NoError(t, err)

		require.NoError(t, c.UpdateName("Bob"))

		assert.Equal(t, "Bob", c.Name())
	})

	t.Run("rejects blank name without mutating", func(t *testing.T) {
		c, err := customer.NewCustomer("Alice", validEmail(t))
		require.NoError(t, err)

		err = c.UpdateName("")

		require.Error(t, err)
		assert.Equal(t, "Alice", c.Name())
	})
}

func TestCustomer_UpdateEmail(t *testing.T) {
	t.Run("updates valid email", func(t *testing.T) {
		c, err := customer.NewCustomer("Alice", validEmail(t))
		require.NoError(t, err)

		updated, err := kernel.NewEmail("new@example.com")
		require.NoError(t, err)

		require.NoError(t, c.UpdateEmail(updated))
		assert.Equal(t, "new@example.com", c.Email().Value())
	})

	t.Run("rejects zero-value email without mutating", func(t *testing.T) {
		c, err := customer.NewCustomer("Alice", validEmail(t))
		require.NoError(t, err)

		var zero kernel.Email
		err = c.UpdateEmail(zero)

		require.Error(t, err)
		assert.Equal(t, "a@b.com", c.Email().Value())
	})
}

func TestRestoreCustomer(t *testing.T) {
	createdAt := time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

	t.Run("restores persisted customer", func(t *testing.T) {
		c, err := customer.RestoreCustomer(7, "Alice", validEmail(t), createdAt)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.Equal(t, int64(7), c.ID())
		assert.Equal(t, createdAt, c.CreatedAt())
	})

	t.Run("fails with non-positive id", func(t *testing.T) {
		_, err := customer.RestoreCustomer(0, "Alice", validEmail(t), createdAt)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "customer id")
	})
}

func TestCustomer_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var c customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})

	t.Run("nil customer fails validation", func(t *testing.T) {
		var c *customer.Customer

		err := c.Validate()

		require.Error(t, err)
		assert.Equal(t, customer.ErrCustomerIsNotConstructed, err)
	})
}
