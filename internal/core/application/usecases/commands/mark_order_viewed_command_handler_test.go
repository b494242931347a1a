package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flowgic/internal/core/application/usecases/commands"
	"flowgic/internal/core/domain/model/kernel"
)

func TestMarkOrderViewedCommandHandler_Handle(t *testing.T) {
	t.Run("assigned driver sets the flag", func(t *testing.T) {
		ctx := t.Context()
		companyID := kernel.NewUUID()
		driver := actorInCompany(t, kernel.RoleDriver, companyID)
		aggregate := testOrder(t, companyID)
		driverID := driver.UserID()
		_, err := aggregate.AssignTransport(&driverID, nil)
		require.NoError(t, err)

		cmd, err := commands.NewMarkOrderViewedCommand(driver, aggregate.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewMarkOrderViewedCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		require.True(t, aggregate.IsViewedByDriver())
		orderRepo.AssertExpectations(t)
	})

	t.Run("other actors are a silent no op", func(t *testing.T) {
		ctx := t.Context()
		companyID := kernel.NewUUID()
		stranger := actorInCompany(t, kernel.RoleDriver, companyID)
		aggregate := testOrder(t, companyID)

		cmd, err := commands.NewMarkOrderViewedCommand(stranger, aggregate.ID())
		require.NoError(t, err)

		orderRepo := new(MockOrderRepository)
		uow := new(MockOrderUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("OrderRepository").Return(orderRepo)
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()

		factory := new(MockOrderUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewMarkOrderViewedCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))
		require.False(t, aggregate.IsViewedByDriver())
		orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}
