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

func newLedgerMocks(t *testing.T) (*MockOrderRepository, *MockFinancialRepository, *MockOrderEventRepository, *MockLedgerUoW, *MockLedgerUoWFactory) {
	t.Helper()
	orderRepo := new(MockOrderRepository)
	financialRepo := new(MockFinancialRepository)
	eventRepo := new(MockOrderEventRepository)
	uow := new(MockLedgerUoW)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("FinancialRepository").Return(financialRepo)
	uow.On("OrderEventRepository").Return(eventRepo)
	factory := new(MockLedgerUoWFactory)
	factory.On("Create").Return(uow).Once()
	return orderRepo, financialRepo, eventRepo, uow, factory
}

func TestApplyPaymentCommandHandler_Handle_MarkPaidEmitsEvent(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	actor := actorInCompany(t, kernel.RoleManager, companyID)
	aggregate := testOrder(t, companyID)
	record, err := financial.NewFinancial(kernel.NewUUID(), aggregate.ID(), money(t, "10000"), nil)
	require.NoError(t, err)

	cmd, err := commands.NewApplyPaymentCommand(actor, aggregate.ID(), true, nil)
	require.NoError(t, err)

	orderRepo, financialRepo, eventRepo, uow, factory := newLedgerMocks(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	financialRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(record, nil).Once()
	financialRepo.On("Update", mock.Anything, record).Return(nil).Once()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*orderevent.OrderEvent")).Return(nil).Once()

	h := commands.NewApplyPaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, financial.PaymentPaid, record.PaymentStatus())

	appended := eventRepo.Calls[0].Arguments.Get(1).(*orderevent.OrderEvent)
	require.Equal(t, orderevent.TypePaymentUpdated, appended.EventType())
	require.Equal(t, "marked_as_paid", appended.EventData()["action"])
}

func TestApplyPaymentCommandHandler_Handle_MarkPaidTwiceReportsUnchanged(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	actor := actorInCompany(t, kernel.RoleManager, companyID)
	aggregate := testOrder(t, companyID)
	record, err := financial.NewFinancial(kernel.NewUUID(), aggregate.ID(), money(t, "10000"), nil)
	require.NoError(t, err)
	require.True(t, record.MarkPaid())

	cmd, err := commands.NewApplyPaymentCommand(actor, aggregate.ID(), true, nil)
	require.NoError(t, err)

	orderRepo, financialRepo, eventRepo, uow, factory := newLedgerMocks(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	financialRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(record, nil).Once()

	h := commands.NewApplyPaymentCommandHandler(factory)
	require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrPaymentUnchanged)

	// The no-op leaves the ledger and the audit trail untouched.
	financialRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	financialRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	eventRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestApplyPaymentCommandHandler_Handle_RepeatedPartialNoEvent(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	actor := actorInCompany(t, kernel.RoleManager, companyID)
	aggregate := testOrder(t, companyID)
	record, err := financial.NewFinancial(kernel.NewUUID(), aggregate.ID(), money(t, "10000"), nil)
	require.NoError(t, err)
	firstInstallment := money(t, "2000")
	_, err = record.ApplyPartialPayment(firstInstallment, "someone", aggregate.Details().PickupAt)
	require.NoError(t, err)
	require.Equal(t, financial.PaymentPartiallyPaid, record.PaymentStatus())

	amount := money(t, "3000")
	cmd, err := commands.NewApplyPaymentCommand(actor, aggregate.ID(), false, &amount)
	require.NoError(t, err)

	orderRepo, financialRepo, eventRepo, uow, factory := newLedgerMocks(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	financialRepo.On("GetByOrder", mock.Anything, aggregate.ID()).Return(record, nil).Once()
	financialRepo.On("Update", mock.Anything, record).Return(nil).Once()

	h := commands.NewApplyPaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// The plan is rewritten but the status did not move, so no event.
	require.Equal(t, "3000.00", record.PaymentPlan().Amount.String())
	eventRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestApplyPaymentCommandHandler_Handle_CreatesLedgerWhenMissing(t *testing.T) {
	ctx := t.Context()
	companyID := kernel.NewUUID()
	actor := actorInCompany(t, kernel.RoleDispatcher, companyID)
	aggregate := testOrder(t, companyID)
	amount := money(t, "500")
	cmd, err := commands.NewApplyPaymentCommand(actor, aggregate.ID(), false, &amount)
	require.NoError(t, err)

	orderRepo, financialRepo, eventRepo, uow, factory := newLedgerMocks(t)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once()
	financialRepo.On("GetByOrder", mock.Anything, aggregate.ID()).
		Return(nil, errNotFound(aggregate.ID())).Once()
	financialRepo.On("Add", mock.Anything, mock.AnythingOfType("*financial.Financial")).Return(nil).Once()
	eventRepo.On("Add", mock.Anything, mock.AnythingOfType("*orderevent.OrderEvent")).Return(nil).Once()

	h := commands.NewApplyPaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	created := financialRepo.Calls[1].Arguments.Get(1).(*financial.Financial)
	require.Equal(t, financial.PaymentPartiallyPaid, created.PaymentStatus())
	require.Equal(t, "500.00", created.PaymentPlan().Amount.String())
}
