// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"flowgic/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// FinancialRepoFactory provides access to the financial repository within a transaction.
	FinancialRepoFactory interface {
		FinancialRepository() ports.FinancialRepository
	}

	// OrderEventRepoFactory provides access to the audit trail within a transaction.
	OrderEventRepoFactory interface {
		OrderEventRepository() ports.OrderEventRepository
	}

	// VehicleRepoFactory provides access to the fleet repository within a transaction.
	VehicleRepoFactory interface {
		VehicleRepository() ports.VehicleRepository
	}

	// OrderUoW manages transactions for order workflow operations.
	// Every order mutation appends its audit event in the same transaction.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		OrderEventRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// LedgerUoW manages transactions that touch the financial ledger.
	// The order repository is included because ledger operations read the
	// owning order for tenancy checks and agreed-price mirroring.
	LedgerUoW interface {
		TxManager
		OrderRepoFactory
		FinancialRepoFactory
		OrderEventRepoFactory
	}

	// LedgerUoWFactory creates new ledger unit of work instances.
	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// AssignUoW manages transactions for transport assignment.
	// Coordinates order and vehicle aggregates plus the audit trail.
	AssignUoW interface {
		TxManager
		OrderRepoFactory
		VehicleRepoFactory
		OrderEventRepoFactory
	}

	// AssignUoWFactory creates new assignment unit of work instances.
	AssignUoWFactory interface {
		Create() AssignUoW
	}

	// FleetUoW manages transactions for vehicle-only operations.
	FleetUoW interface {
		TxManager
		VehicleRepoFactory
	}

	// FleetUoWFactory creates new fleet unit of work instances.
	FleetUoWFactory interface {
		Create() FleetUoW
	}
)
