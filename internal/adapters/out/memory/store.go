// Package memory is an in-process Entity Store for tests and local runs.
//
// Transactions are serialized: Begin waits until the previous transaction
// has committed or rolled back, or until ctx is done. Writes made inside a
// transaction are staged and only become visible on Commit.
package memory

import (
	"context"
	"errors"
	"sync"

	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
)

var ErrNoActiveTransaction = errors.New("memory: no active transaction")

type Store struct {
	mu  sync.RWMutex
	sem chan struct{}

	loads     *collection[*load.Load]
	drivers   *collection[*driver.Driver]
	customers *collection[*customer.Customer]
	equipment *collection[*equipment.Equipment]
	invoices  *collection[*invoice.Invoice]
}

func NewStore() *Store {
	return &Store{
		sem: make(chan struct{}, 1),
		loads: newCollection("load_id", cloneLoad, (*load.Load).CompanyID,
			func(a, b *load.Load) bool {
				return a.CompanyID() == b.CompanyID() && a.LoadNumber() == b.LoadNumber()
			}),
		drivers: newCollection("driver_id", cloneDriver, (*driver.Driver).CompanyID, nil),
		customers: newCollection("customer_id", cloneCustomer, (*customer.Customer).CompanyID, nil),
		equipment: newCollection("equipment_id", cloneEquipment, (*equipment.Equipment).CompanyID,
			func(a, b *equipment.Equipment) bool {
				return a.CompanyID() == b.CompanyID() && a.UnitNumber() == b.UnitNumber()
			}),
		invoices: newCollection("invoice_id", cloneInvoice, (*invoice.Invoice).CompanyID,
			func(a, b *invoice.Invoice) bool {
				if a.CompanyID() != b.CompanyID() {
					return false
				}
				if a.InvoiceNumber() == b.InvoiceNumber() {
					return true
				}
				return a.LoadID() != nil && b.LoadID() != nil && *a.LoadID() == *b.LoadID()
			}),
	}
}

func (s *Store) acquire(ctx context.Context) error {
	select {
	case s.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Store) release() {
	<-s.sem
}

// UnitOfWorkFactory hands out units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{store: f.store}
}

type UnitOfWork struct {
	store *Store
	tx    *changeSet
}

type changeSet struct {
	loads     map[kernel.UUID]*load.Load
	drivers   map[kernel.UUID]*driver.Driver
	customers map[kernel.UUID]*customer.Customer
	equipment map[kernel.UUID]*equipment.Equipment
	invoices  map[kernel.UUID]*invoice.Invoice
}

// Begin is a no-op when a transaction is already open.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.tx != nil {
		return nil
	}

	if err := u.store.acquire(ctx); err != nil {
		return errs.NewStoreError("begin transaction", err)
	}

	u.tx = &changeSet{
		loads:     make(map[kernel.UUID]*load.Load),
		drivers:   make(map[kernel.UUID]*driver.Driver),
		customers: make(map[kernel.UUID]*customer.Customer),
		equipment: make(map[kernel.UUID]*equipment.Equipment),
		invoices:  make(map[kernel.UUID]*invoice.Invoice),
	}
	return nil
}

func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	defer u.end()

	if err := ctx.Err(); err != nil {
		return errs.NewStoreError("commit transaction", err)
	}

	u.store.mu.Lock()
	u.loadView().commit()
	u.driverView().commit()
	u.customerView().commit()
	u.equipmentView().commit()
	u.invoiceView().commit()
	u.store.mu.Unlock()
	return nil
}

func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrNoActiveTransaction
	}
	u.end()
	return nil
}

func (u *UnitOfWork) end() {
	u.tx = nil
	u.store.release()
}

func (u *UnitOfWork) LoadRepository() ports.LoadRepository {
	return &LoadRepository{rows: u.loadView()}
}

func (u *UnitOfWork) DriverRepository() ports.DriverRepository {
	return &DriverRepository{rows: u.driverView()}
}

func (u *UnitOfWork) CustomerRepository() ports.CustomerRepository {
	return &CustomerRepository{rows: u.customerView()}
}

func (u *UnitOfWork) EquipmentRepository() ports.EquipmentRepository {
	return &EquipmentRepository{rows: u.equipmentView()}
}

func (u *UnitOfWork) InvoiceRepository() ports.InvoiceRepository {
	return &InvoiceRepository{rows: u.invoiceView()}
}

func (u *UnitOfWork) loadView() view[*load.Load] {
	v := view[*load.Load]{store: u.store, base: u.store.loads}
	if u.tx != nil {
		v.staged = u.tx.loads
	}
	return v
}

func (u *UnitOfWork) driverView() view[*driver.Driver] {
	v := view[*driver.Driver]{store: u.store, base: u.store.drivers}
	if u.tx != nil {
		v.staged = u.tx.drivers
	}
	return v
}

func (u *UnitOfWork) customerView() view[*customer.Customer] {
	v := view[*customer.Customer]{store: u.store, base: u.store.customers}
	if u.tx != nil {
		v.staged = u.tx.customers
	}
	return v
}

func (u *UnitOfWork) equipmentView() view[*equipment.Equipment] {
	v := view[*equipment.Equipment]{store: u.store, base: u.store.equipment}
	if u.tx != nil {
		v.staged = u.tx.equipment
	}
	return v
}

func (u *UnitOfWork) invoiceView() view[*invoice.Invoice] {
	v := view[*invoice.Invoice]{store: u.store, base: u.store.invoices}
	if u.tx != nil {
		v.staged = u.tx.invoices
	}
	return v
}
