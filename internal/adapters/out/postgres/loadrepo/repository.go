package loadrepo

import (
	"context"

	"tms/internal/adapters/out/postgres/pgutil"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GormLoadRepository struct {
	db      *gorm.DB
	tracker pgutil.AggregateTracker
}

func NewGormLoadRepository(db *gorm.DB, tracker pgutil.AggregateTracker) *GormLoadRepository {
	return &GormLoadRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormLoadRepository) Add(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Wrap("add load", err)
	}

	r.track(aggregate)
	return nil
}

// Update compares and swaps on the version column. Zero affected rows mean
// either a foreign or missing load, or a writer that committed first.
func (r *GormLoadRepository) Update(ctx context.Context, aggregate *load.Load) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	expected := aggregate.Version()
	dto := fromDomain(aggregate)
	dto.Version = expected + 1

	result := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Where("id = ? AND company_id = ? AND version = ?", dto.ID, dto.CompanyID, expected).
		Select("*").
		Omit("id", "company_id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return pgutil.Wrap("update load", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).
			Model(&LoadDTO{}).
			Where("id = ? AND company_id = ?", dto.ID, dto.CompanyID).
			Count(&count).Error; err != nil {
			return pgutil.Wrap("update load", err)
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("load_id", aggregate.ID().String())
		}
		return errs.NewConcurrentModificationError("load", aggregate.ID().String(), expected)
	}

	aggregate.IncrementVersion()
	r.track(aggregate)
	return nil
}

func (r *GormLoadRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*load.Load, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto LoadDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND company_id = ?", id.Bytes(), companyID.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound("get load", "load_id", id, err)
	}

	return toDomain(dto)
}

func (r *GormLoadRepository) ListActive(ctx context.Context, companyID kernel.UUID) ([]*load.Load, error) {
	return r.find(ctx, "list active loads",
		r.db.WithContext(ctx).Where("company_id = ? AND status IN ?", companyID.Bytes(), statusNames(load.Status.IsActive)))
}

func (r *GormLoadRepository) ListBillable(
	ctx context.Context,
	companyID kernel.UUID,
	window kernel.DateRange,
) ([]*load.Load, error) {
	if err := window.Validate(); err != nil {
		return nil, err
	}

	return r.find(ctx, "list billable loads",
		r.db.WithContext(ctx).Where(
			"company_id = ? AND status IN ? AND pickup_date BETWEEN ? AND ?",
			companyID.Bytes(),
			statusNames(load.Status.IsBillable),
			pgutil.Day(window.Start()),
			pgutil.Day(window.End()),
		))
}

func (r *GormLoadRepository) CompanyIDs(ctx context.Context) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&LoadDTO{}).
		Distinct("company_id").
		Order("company_id").
		Pluck("company_id", &raw).Error; err != nil {
		return nil, pgutil.Wrap("list companies", err)
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		companyID, err := kernel.UUIDFromGoogle(id)
		if err != nil {
			return nil, err
		}
		ids = append(ids, companyID)
	}
	return ids, nil
}

func (r *GormLoadRepository) find(ctx context.Context, op string, query *gorm.DB) ([]*load.Load, error) {
	var dtos []LoadDTO
	if err := query.WithContext(ctx).Order("pickup_date, load_number").Find(&dtos).Error; err != nil {
		return nil, pgutil.Wrap(op, err)
	}

	loads := make([]*load.Load, 0, len(dtos))
	for _, dto := range dtos {
		l, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		loads = append(loads, l)
	}

	return loads, nil
}

func (r *GormLoadRepository) track(aggregate *load.Load) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func statusNames(include func(load.Status) bool) []string {
	var names []string
	for _, s := range load.AllStatuses() {
		if include(s) {
			names = append(names, s.String())
		}
	}
	return names
}
