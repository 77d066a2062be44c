package customerrepo

import (
	"context"
	"time"

	"tms/internal/adapters/out/postgres/pgutil"
	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CustomerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;index"`
	CustomerName string
	CustomerType string
	Email        string
	Phone        string
	PaymentTerms int
	CreditLimit  decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	Status       string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime:false"`
}

func (CustomerDTO) TableName() string {
	return "customers"
}

type GormCustomerRepository struct {
	db      *gorm.DB
	tracker pgutil.AggregateTracker
}

func NewGormCustomerRepository(db *gorm.DB, tracker pgutil.AggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := CustomerDTO{
		ID:           aggregate.ID().Bytes(),
		CompanyID:    aggregate.CompanyID().Bytes(),
		CustomerName: aggregate.Name(),
		CustomerType: string(aggregate.Type()),
		Email:        aggregate.Email(),
		Phone:        aggregate.Phone(),
		PaymentTerms: aggregate.PaymentTerms(),
		CreditLimit:  aggregate.CreditLimit(),
		Status:       string(aggregate.Status()),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Wrap("add customer", err)
	}

	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND company_id = ?", id.Bytes(), companyID.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound("get customer", "customer_id", id, err)
	}

	return toDomain(dto)
}

func toDomain(dto CustomerDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromGoogle(dto.CompanyID)
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(
		id,
		companyID,
		dto.CustomerName,
		customer.Type(dto.CustomerType),
		dto.Email,
		dto.Phone,
		dto.PaymentTerms,
		dto.CreditLimit,
		customer.Status(dto.Status),
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
