package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is one store transaction. Repositories obtained from it before
// Begin, or after Commit/Rollback, operate outside any transaction.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error when no transaction is active.
	Commit(ctx context.Context) error

	// Rollback returns an error when no transaction is active, which makes it
	// safe to defer after a successful Commit.
	Rollback(ctx context.Context) error

	LoadRepository() LoadRepository
	DriverRepository() DriverRepository
	CustomerRepository() CustomerRepository
	EquipmentRepository() EquipmentRepository
	InvoiceRepository() InvoiceRepository
}
