package ports

import (
	"context"

	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/kernel"
)

type InvoiceReader interface {
	Get(ctx context.Context, companyID, id kernel.UUID) (*invoice.Invoice, error)

	// GetByLoad returns errs.ErrObjectNotFound while the load is not invoiced.
	GetByLoad(ctx context.Context, companyID, loadID kernel.UUID) (*invoice.Invoice, error)
}

type InvoiceRepository interface {
	InvoiceReader

	Add(ctx context.Context, aggregate *invoice.Invoice) error
	Update(ctx context.Context, aggregate *invoice.Invoice) error
}
