package ports

import (
	"context"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
)

type DriverReader interface {
	Get(ctx context.Context, companyID, id kernel.UUID) (*driver.Driver, error)

	// ListAvailable returns assignable drivers ordered by first name, then last name.
	ListAvailable(ctx context.Context, companyID kernel.UUID) ([]*driver.Driver, error)
}

type DriverRepository interface {
	DriverReader

	Add(ctx context.Context, aggregate *driver.Driver) error
	Update(ctx context.Context, aggregate *driver.Driver) error
}
