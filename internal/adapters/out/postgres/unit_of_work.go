// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work owns one database transaction, hands out
// repositories bound to it, and remembers the version every aggregate was
// loaded at so that repository updates can compare-and-swap on it.
package postgres

import (
	"context"

	"gorm.io/gorm"

	"flowgic/internal/adapters/out/postgres/eventrepo"
	"flowgic/internal/adapters/out/postgres/financialrepo"
	"flowgic/internal/adapters/out/postgres/orderrepo"
	"flowgic/internal/adapters/out/postgres/vehiclerepo"
	"flowgic/internal/core/domain/model/kernel"
	"flowgic/internal/core/ports"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one database
// connection. Each business operation gets a fresh instance with its own
// transaction state and version bookkeeping.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:       f.db,
		versions: make(map[kernel.UUID]int64),
	}
}

// GormUnitOfWork coordinates a database transaction across repositories and
// carries the optimistic-lock bookkeeping for the aggregates it loads.
type GormUnitOfWork struct {
	db       *gorm.DB
	tx       *gorm.DB
	versions map[kernel.UUID]int64
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns error if no active transaction exists or if the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns error if no active transaction exists or if the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// FinancialRepository returns a ledger repository bound to the current transaction.
func (uow *GormUnitOfWork) FinancialRepository() ports.FinancialRepository {
	return financialrepo.NewGormFinancialRepository(uow.conn(), uow)
}

// OrderEventRepository returns an audit trail repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderEventRepository() ports.OrderEventRepository {
	return eventrepo.NewGormOrderEventRepository(uow.conn())
}

// VehicleRepository returns a fleet repository bound to the current transaction.
func (uow *GormUnitOfWork) VehicleRepository() ports.VehicleRepository {
	return vehiclerepo.NewGormVehicleRepository(uow.conn())
}

// TrackVersion records the version an aggregate was loaded or written at.
// Repositories call this on every read and successful write.
func (uow *GormUnitOfWork) TrackVersion(id kernel.UUID, version int64) {
	uow.versions[id] = version
}

// LoadedVersion returns the version an aggregate was last seen at within
// this unit of work.
func (uow *GormUnitOfWork) LoadedVersion(id kernel.UUID) (int64, bool) {
	version, ok := uow.versions[id]
	return version, ok
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
