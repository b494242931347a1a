package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"flowgic/internal/core/application/usecases/commands"
	"flowgic/internal/core/domain/model/kernel"
)

func TestNewCreateOrderCommand(t *testing.T) {
	actor := testActor(t, kernel.RoleDispatcher)

	t.Run("valid command", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), kernel.NewUUID(), testDetails())

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
	})

	t.Run("empty order id is rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, kernel.UUID{}, kernel.NewUUID(), testDetails())

		require.Error(t, err)
	})

	t.Run("empty client id is rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), kernel.UUID{}, testDetails())

		require.Error(t, err)
	})

	t.Run("unconstructed actor is rejected", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(kernel.Actor{}, kernel.NewUUID(), kernel.NewUUID(), testDetails())

		require.Error(t, err)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.CreateOrderCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
