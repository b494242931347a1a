package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flowgic/internal/core/application/usecases/commands"
	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/orderevent"
	"flowgic/internal/pkg/errs"
)

func TestUpdateFinancialsCommandHandler_Handle_RecomputesAndEmits(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	actor := actorInCompany(t, kernel.RoleManager, companyID)
	aggregate := testOrder(t, companyID)
	record, err := financial.NewFinancial(kernel.NewUUID(), aggregate.ID(), money(t, "50000"), aggregate.DistanceKm())
	require.NoError(t, err)

	driverCost := money(t, "15000")
	cmd, err := commands.NewUpdateFinancialsCommand(actor, aggregate.ID(), financial.CostChanges{
		DriverCost: &driverCost,
	})
	require.NoError(t, err)

	orderRepo, financialRepo, eventRepo, uow, factory := newLedgerMocks(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	financialRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(record, nil).Once()
	financialRepo.On("Update", mock.Anything, record).Return(nil).Once()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*orderevent.OrderEvent")).Return(nil).Once()

	h := commands.NewUpdateFinancialsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// 700 km keeps fuel at 17220.00; profit excludes third party costs.
	require.Equal(t, "17220.00", record.FuelExpenses().String())
	require.Equal(t, "17780.00", record.Profit().String())

	appended := eventRepo.Calls[0].Arguments.Get(1).(*orderevent.OrderEvent)
	require.Equal(t, orderevent.TypeFinancialsUpdated, appended.EventType())
	oldFigures := appended.EventData()["old"].(map[string]any)
	newFigures := appended.EventData()["new"].(map[string]any)
	require.Equal(t, "0.00", oldFigures["driver_cost"])
	require.Equal(t, "15000.00", newFigures["driver_cost"])
}

func TestUpdateFinancialsCommandHandler_Handle_MirrorsClientCostOntoOrder(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	actor := actorInCompany(t, kernel.RoleManager, companyID)
	aggregate := testOrder(t, companyID)
	record, err := financial.NewFinancial(kernel.NewUUID(), aggregate.ID(), money(t, "50000"), aggregate.DistanceKm())
	require.NoError(t, err)

	clientCost := money(t, "60000")
	cmd, err := commands.NewUpdateFinancialsCommand(actor, aggregate.ID(), financial.CostChanges{
		ClientCost: &clientCost,
	})
	require.NoError(t, err)

	orderRepo, financialRepo, eventRepo, uow, factory := newLedgerMocks(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	financialRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(record, nil).Once()
	financialRepo.On("Update", mock.Anything, record).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once()
	eventRepo.On("Add", mock.Anything, mock.Anything).Return(nil).Once()

	h := commands.NewUpdateFinancialsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, "60000.00", record.ClientCost().String())
	require.NotNil(t, aggregate.AgreedPrice())
	require.Equal(t, "60000.00", aggregate.AgreedPrice().String())
	orderRepo.AssertExpectations(t)
}

func TestUpdateFinancialsCommandHandler_Handle_NoChangeNoEvent(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	actor := actorInCompany(t, kernel.RoleManager, companyID)
	aggregate := testOrder(t, companyID)
	record, err := financial.NewFinancial(kernel.NewUUID(), aggregate.ID(), money(t, "50000"), aggregate.DistanceKm())
	require.NoError(t, err)

	sameClientCost := money(t, "50000")
	cmd, err := commands.NewUpdateFinancialsCommand(actor, aggregate.ID(), financial.CostChanges{
		ClientCost: &sameClientCost,
	})
	require.NoError(t, err)

	orderRepo, financialRepo, eventRepo, uow, factory := newLedgerMocks(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	financialRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(record, nil).Once()

	h := commands.NewUpdateFinancialsCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	financialRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	eventRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestUpdateFinancialsCommandHandler_Handle_NegativeFigureRejected(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	actor := actorInCompany(t, kernel.RoleManager, companyID)
	aggregate := testOrder(t, companyID)
	record, err := financial.NewFinancial(kernel.NewUUID(), aggregate.ID(), money(t, "50000"), aggregate.DistanceKm())
	require.NoError(t, err)

	negative := money(t, "-1")
	cmd, err := commands.NewUpdateFinancialsCommand(actor, aggregate.ID(), financial.CostChanges{
		DriverCost: &negative,
	})
	require.NoError(t, err)

	orderRepo, financialRepo, eventRepo, uow, factory := newLedgerMocks(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	financialRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(record, nil).Once()

	h := commands.NewUpdateFinancialsCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, "0.00", record.DriverCost().String())
	eventRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}
