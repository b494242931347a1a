package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flowgic/internal/core/application/usecases/commands"
	"flowgic/internal/core/domain/model/kernel"
)

func TestNewEnsureFinancialCommand(t *testing.T) {
	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewEnsureFinancialCommand(testActor(t, kernel.RoleManager), kernel.NewUUID())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("empty order id is rejected", func(t *testing.T) {
		_, err := commands.NewEnsureFinancialCommand(testActor(t, kernel.RoleManager), kernel.UUID{})

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.EnsureFinancialCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrEnsureFinancialCommandIsNotConstructed)
	})
}
