package ports

import (
	"context"

	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/kernel"
)

type CustomerReader interface {
	Get(ctx context.Context, companyID, id kernel.UUID) (*customer.Customer, error)
}

type CustomerRepository interface {
	CustomerReader

	Add(ctx context.Context, aggregate *customer.Customer) error
}
