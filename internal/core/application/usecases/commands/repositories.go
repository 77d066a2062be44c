// Package commands contains the write operations of the dispatch engine.
// Every handler validates its command, opens one unit of work, applies
// domain methods to tenant scoped aggregates, commits, and only then
// publishes events and records metrics.
package commands

import (
	"context"

	"tms/internal/core/ports"
)

// Each handler depends on the narrowest unit of work that covers the
// repositories it touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	LoadRepoFactory interface {
		LoadRepository() ports.LoadRepository
	}

	DriverRepoFactory interface {
		DriverRepository() ports.DriverRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	EquipmentRepoFactory interface {
		EquipmentRepository() ports.EquipmentRepository
	}

	InvoiceRepoFactory interface {
		InvoiceRepository() ports.InvoiceRepository
	}

	// LoadUoW covers load lifecycle commands; customers are read to validate references.
	LoadUoW interface {
		TxManager
		LoadRepoFactory
		CustomerRepoFactory
	}

	LoadUoWFactory interface {
		Create() LoadUoW
	}

	DriverUoW interface {
		TxManager
		DriverRepoFactory
	}

	DriverUoWFactory interface {
		Create() DriverUoW
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	EquipmentUoW interface {
		TxManager
		EquipmentRepoFactory
	}

	EquipmentUoWFactory interface {
		Create() EquipmentUoW
	}

	// DispatchUoW spans the load and every resource that can be bound to it.
	//
	// Example:
	//   uow := factory.Create()
	//   if err := uow.Begin(ctx); err != nil {
	//       return err
	//   }
	//   defer func() { _ = uow.Rollback(ctx) }()
	//
	//   l, err := uow.LoadRepository().Get(ctx, companyID, loadID)
	//   // ... load driver and equipment, check, assign
	//
	//   err = uow.Commit(ctx)
	DispatchUoW interface {
		TxManager
		LoadRepoFactory
		DriverRepoFactory
		EquipmentRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	BillingUoW interface {
		TxManager
		LoadRepoFactory
		CustomerRepoFactory
		InvoiceRepoFactory
	}

	BillingUoWFactory interface {
		Create() BillingUoW
	}
)
