package commands_test

import (
	"testing"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateCustomerCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewCreateCustomerCommand("Alice", "alice@example.com")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "Alice", cmd.Name())
		assert.Equal(t, "alice@example.com", cmd.Email().Value())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand("", "alice@example.com")

		require.ErrorIs(t, err, commands.ErrCustomerNameIsRequired)
	})

	t.Run("blank email", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand("Alice", "")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "Email cannot be empty")
	})

	t.Run("malformed email", func(t *testing.T) {
		_, err := commands.NewCreateCustomerCommand("Alice", "not-an-email")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "Invalid email format")
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateCustomerCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateCustomerCommandIsNotConstructed)
	})
}
