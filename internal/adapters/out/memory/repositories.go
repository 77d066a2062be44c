package memory

import (
	"context"
	"slices"
	"strings"

	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
)

type LoadRepository struct {
	rows view[*load.Load]
}

func (r *LoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.rows.insert(ctx, aggregate.ID(), aggregate)
}

// Update succeeds only while the stored version equals aggregate.Version().
func (r *LoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expected := aggregate.Version()
	next, err := cloneLoad(aggregate)
	if err != nil {
		return err
	}
	next.IncrementVersion()

	err = r.rows.replace(ctx, aggregate.ID(), next, func(stored *load.Load) error {
		if stored.Version() != expected {
			return errs.NewConcurrentModificationError("load", aggregate.ID().String(), expected)
		}
		return nil
	})
	if err != nil {
		return err
	}

	aggregate.IncrementVersion()
	return nil
}

func (r *LoadRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.rows.get(ctx, companyID, id)
}

func (r *LoadRepository) ListActive(ctx context.Context, companyID kernel.UUID) ([]*load.Load, error) {
	loads, err := r.rows.list(ctx, companyID, func(l *load.Load) bool {
		return l.Status().IsActive()
	})
	if err != nil {
		return nil, err
	}
	sortLoads(loads)
	return loads, nil
}

func (r *LoadRepository) ListBillable(
	ctx context.Context,
	companyID kernel.UUID,
	window kernel.DateRange,
) ([]*load.Load, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	loads, err := r.rows.list(ctx, companyID, func(l *load.Load) bool {
		return l.Status().IsBillable() && window.Contains(l.PickupDate())
	})
	if err != nil {
		return nil, err
	}
	sortLoads(loads)
	return loads, nil
}

func (r *LoadRepository) CompanyIDs(ctx context.Context) ([]kernel.UUID, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStoreError("list companies", err)
	}

	seen := make(map[kernel.UUID]struct{})
	var ids []kernel.UUID
	for _, l := range r.rows.snapshot() {
		if _, ok := seen[l.CompanyID()]; ok {
			continue
		}
		seen[l.CompanyID()] = struct{}{}
		ids = append(ids, l.CompanyID())
	}
	slices.SortFunc(ids, func(a, b kernel.UUID) int {
		return strings.Compare(a.String(), b.String())
	})
	return ids, nil
}

func sortLoads(loads []*load.Load) {
	slices.SortFunc(loads, func(a, b *load.Load) int {
		switch {
		case a.PickupDate().Before(b.PickupDate()):
			return -1
		case a.PickupDate().After(b.PickupDate()):
			return 1
		}
		return strings.Compare(a.LoadNumber(), b.LoadNumber())
	})
}

type DriverRepository struct {
	rows view[*driver.Driver]
}

func (r *DriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.rows.insert(ctx, aggregate.ID(), aggregate)
}

func (r *DriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.rows.replace(ctx, aggregate.ID(), aggregate, nil)
}

func (r *DriverRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.rows.get(ctx, companyID, id)
}

func (r *DriverRepository) ListAvailable(ctx context.Context, companyID kernel.UUID) ([]*driver.Driver, error) {
	drivers, err := r.rows.list(ctx, companyID, (*driver.Driver).IsAssignable)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(drivers, func(a, b *driver.Driver) int {
		if c := strings.Compare(a.Profile().FirstName, b.Profile().FirstName); c != 0 {
			return c
		}
		return strings.Compare(a.Profile().LastName, b.Profile().LastName)
	})
	return drivers, nil
}

type CustomerRepository struct {
	rows view[*customer.Customer]
}

func (r *CustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.rows.insert(ctx, aggregate.ID(), aggregate)
}

func (r *CustomerRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.rows.get(ctx, companyID, id)
}

type EquipmentRepository struct {
	rows view[*equipment.Equipment]
}

func (r *EquipmentRepository) Add(ctx context.Context, aggregate *equipment.Equipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.rows.insert(ctx, aggregate.ID(), aggregate)
}

func (r *EquipmentRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*equipment.Equipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.rows.get(ctx, companyID, id)
}

type InvoiceRepository struct {
	rows view[*invoice.Invoice]
}

func (r *InvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.rows.insert(ctx, aggregate.ID(), aggregate)
}

func (r *InvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	return r.rows.replace(ctx, aggregate.ID(), aggregate, nil)
}

func (r *InvoiceRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.rows.get(ctx, companyID, id)
}

func (r *InvoiceRepository) GetByLoad(ctx context.Context, companyID, loadID kernel.UUID) (*invoice.Invoice, error) {
	if err := loadID.Validate(); err != nil {
		return nil, err
	}

	invoices, err := r.rows.list(ctx, companyID, func(i *invoice.Invoice) bool {
		return i.LoadID() != nil && *i.LoadID() == loadID
	})
	if err != nil {
		return nil, err
	}
	if len(invoices) == 0 {
		return nil, errs.NewObjectNotFoundError("load_id", loadID.String())
	}
	return invoices[0], nil
}
