// Package ports declares what the dispatch core needs from the outside world:
// tenant scoped repositories, a unit of work, event publishing and metrics.
//
// Every repository method takes the acting company id and never returns or
// modifies a row owned by another company; such rows behave as missing.
package ports

import (
	"context"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
)

// LoadReader is the read side of LoadRepository.
type LoadReader interface {
	// Get returns errs.ErrObjectNotFound when the load does not exist in the company.
	Get(ctx context.Context, companyID, id kernel.UUID) (*load.Load, error)

	// ListActive returns pending, dispatched and in transit loads ordered by
	// pickup date, then load number.
	ListActive(ctx context.Context, companyID kernel.UUID) ([]*load.Load, error)

	// ListBillable returns delivered and completed loads picked up inside window.
	ListBillable(ctx context.Context, companyID kernel.UUID, window kernel.DateRange) ([]*load.Load, error)

	// CompanyIDs lists every company that owns at least one load.
	CompanyIDs(ctx context.Context) ([]kernel.UUID, error)
}

type LoadRepository interface {
	LoadReader

	Add(ctx context.Context, aggregate *load.Load) error

	// Update writes the load only if the stored version still equals
	// aggregate.Version(); on success the aggregate's version is incremented.
	// A lost race yields errs.ErrConcurrentModification.
	Update(ctx context.Context, aggregate *load.Load) error
}
