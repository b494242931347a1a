package commands_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"flowgic/internal/core/application/usecases/commands"
	"flowgic/internal/core/domain/model/financial"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/domain/model/order"
	"flowgic/internal/core/domain/model/orderevent"
	"flowgic/internal/core/domain/model/vehicle"
	"flowgic/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllActive(ctx context.Context, companyID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAllInTransitDueBefore(ctx context.Context, deadline time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, deadline)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

type MockFinancialRepository struct{ mock.Mock }

func (m *MockFinancialRepository) Add(ctx context.Context, aggregate *financial.Financial) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFinancialRepository) Update(ctx context.Context, aggregate *financial.Financial) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockFinancialRepository) GetByOrder(ctx context.Context, orderID kernel.UUID) (*financial.Financial, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*financial.Financial), args.Error(1)
}

type MockOrderEventRepository struct{ mock.Mock }

func (m *MockOrderEventRepository) Add(ctx context.Context, event *orderevent.OrderEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockOrderEventRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]*orderevent.OrderEvent, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orderevent.OrderEvent), args.Error(1)
}

type MockVehicleRepository struct{ mock.Mock }

func (m *MockVehicleRepository) Add(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, aggregate *vehicle.Vehicle) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVehicleRepository) Get(ctx context.Context, id kernel.UUID) (*vehicle.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*vehicle.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) GetAllAvailable(ctx context.Context, companyID kernel.UUID) ([]*vehicle.Vehicle, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*vehicle.Vehicle), args.Error(1)
}

type mockTx struct{ mock.Mock }

func (m *mockTx) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *mockTx) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

type MockOrderUoW struct{ mockTx }

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) OrderEventRepository() ports.OrderEventRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderEventRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockLedgerUoW struct{ mockTx }

func (m *MockLedgerUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockLedgerUoW) FinancialRepository() ports.FinancialRepository {
	args := m.Called()
	return args.Get(0).(ports.FinancialRepository)
}

func (m *MockLedgerUoW) OrderEventRepository() ports.OrderEventRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderEventRepository)
}

type MockLedgerUoWFactory struct{ mock.Mock }

func (m *MockLedgerUoWFactory) Create() commands.LedgerUoW {
	args := m.Called()
	return args.Get(0).(commands.LedgerUoW)
}

type MockAssignUoW struct{ mockTx }

func (m *MockAssignUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockAssignUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

func (m *MockAssignUoW) OrderEventRepository() ports.OrderEventRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderEventRepository)
}

type MockAssignUoWFactory struct{ mock.Mock }

func (m *MockAssignUoWFactory) Create() commands.AssignUoW {
	args := m.Called()
	return args.Get(0).(commands.AssignUoW)
}

type MockFleetUoW struct{ mockTx }

func (m *MockFleetUoW) VehicleRepository() ports.VehicleRepository {
	args := m.Called()
	return args.Get(0).(ports.VehicleRepository)
}

type MockFleetUoWFactory struct{ mock.Mock }

func (m *MockFleetUoWFactory) Create() commands.FleetUoW {
	args := m.Called()
	return args.Get(0).(commands.FleetUoW)
}
