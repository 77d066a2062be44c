package equipmentrepo

import (
	"context"
	"time"

	"tms/internal/adapters/out/postgres/pgutil"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EquipmentDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;index"`
	EquipmentType string
	UnitNumber    string
	Status        string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime:false"`
}

func (EquipmentDTO) TableName() string {
	return "equipment"
}

type GormEquipmentRepository struct {
	db      *gorm.DB
	tracker pgutil.AggregateTracker
}

func NewGormEquipmentRepository(db *gorm.DB, tracker pgutil.AggregateTracker) *GormEquipmentRepository {
	return &GormEquipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add fails with a business rule violation when the unit number is taken in the company.
func (r *GormEquipmentRepository) Add(ctx context.Context, aggregate *equipment.Equipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := EquipmentDTO{
		ID:            aggregate.ID().Bytes(),
		CompanyID:     aggregate.CompanyID().Bytes(),
		EquipmentType: string(aggregate.Kind()),
		UnitNumber:    aggregate.UnitNumber(),
		Status:        string(aggregate.Status()),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Wrap("add equipment", err)
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

func (r *GormEquipmentRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*equipment.Equipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto EquipmentDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND company_id = ?", id.Bytes(), companyID.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound("get equipment", "equipment_id", id, err)
	}

	equipmentID, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	owner, err := kernel.UUIDFromGoogle(dto.CompanyID)
	if err != nil {
		return nil, err
	}

	return equipment.RestoreEquipment(
		equipmentID,
		owner,
		equipment.Kind(dto.EquipmentType),
		dto.UnitNumber,
		equipment.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
