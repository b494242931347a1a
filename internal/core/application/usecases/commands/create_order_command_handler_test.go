package commands_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flowgic/internal/core/application/usecases/commands"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/pkg/errs"
)

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, kernel.RoleDispatcher)
	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), kernel.NewUUID(), testDetails())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_DriverForbidden(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, kernel.RoleDriver)
	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), kernel.NewUUID(), testDetails())
	require.NoError(t, err)

	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrPermissionDenied)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	factory := new(MockOrderUoWFactory)

	h := commands.NewCreateOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, commands.CreateOrderCommand{}))
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	actor := testActor(t, kernel.RoleManager)
	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), kernel.NewUUID(), testDetails())
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory)
	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
