package driverrepo

import (
	"context"

	"tms/internal/adapters/out/postgres/pgutil"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormDriverRepository struct {
	db      *gorm.DB
	tracker pgutil.AggregateTracker
}

func NewGormDriverRepository(db *gorm.DB, tracker pgutil.AggregateTracker) *GormDriverRepository {
	return &GormDriverRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDriverRepository) Add(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Wrap("add driver", err)
	}

	r.track(aggregate)
	return nil
}

func (r *GormDriverRepository) Update(ctx context.Context, aggregate *driver.Driver) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&DriverDTO{}).
		Where("id = ? AND company_id = ?", dto.ID, dto.CompanyID).
		Select("*").
		Omit("id", "company_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgutil.Wrap("update driver", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("driver_id", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

func (r *GormDriverRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*driver.Driver, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DriverDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND company_id = ?", id.Bytes(), companyID.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound("get driver", "driver_id", id, err)
	}

	return toDomain(dto)
}

func (r *GormDriverRepository) ListAvailable(ctx context.Context, companyID kernel.UUID) ([]*driver.Driver, error) {
	var dtos []DriverDTO
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND employment_status = ? AND current_status IN ?",
			companyID.Bytes(),
			string(driver.EmploymentActive),
			[]string{string(driver.DutyAvailable), string(driver.DutyOffDuty)},
		).
		Order("first_name, last_name").
		Find(&dtos).Error; err != nil {
		return nil, pgutil.Wrap("list available drivers", err)
	}

	drivers := make([]*driver.Driver, 0, len(dtos))
	for _, dto := range dtos {
		d, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		drivers = append(drivers, d)
	}

	return drivers, nil
}

func (r *GormDriverRepository) track(aggregate *driver.Driver) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}
