package invoicerepo

import (
	"context"
	"time"

	"tms/internal/adapters/out/postgres/pgutil"
	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type InvoiceDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;index"`
	InvoiceNumber string
	InvoiceType   string
	CustomerID    *uuid.UUID      `gorm:"type:uuid"`
	LoadID        *uuid.UUID      `gorm:"type:uuid"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric(12,2)"`
	AmountPaid    decimal.Decimal `gorm:"type:numeric(12,2)"`
	InvoiceDate   time.Time       `gorm:"type:date"`
	DueDate       time.Time       `gorm:"type:date"`
	Status        string
	CreatedAt     time.Time `gorm:"autoCreateTime:false"`
}

func (InvoiceDTO) TableName() string {
	return "invoices"
}

type GormInvoiceRepository struct {
	db      *gorm.DB
	tracker pgutil.AggregateTracker
}

func NewGormInvoiceRepository(db *gorm.DB, tracker pgutil.AggregateTracker) *GormInvoiceRepository {
	return &GormInvoiceRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormInvoiceRepository) Add(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgutil.Wrap("add invoice", err)
	}

	r.track(aggregate)
	return nil
}

// Update persists the payment state; the remaining columns are immutable.
func (r *GormInvoiceRepository) Update(ctx context.Context, aggregate *invoice.Invoice) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&InvoiceDTO{}).
		Where("id = ? AND company_id = ?", dto.ID, dto.CompanyID).
		Updates(map[string]any{
			"amount_paid": dto.AmountPaid,
			"status":      dto.Status,
		})
	if result.Error != nil {
		return pgutil.Wrap("update invoice", result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("invoice_id", aggregate.ID().String())
	}

	r.track(aggregate)
	return nil
}

func (r *GormInvoiceRepository) Get(ctx context.Context, companyID, id kernel.UUID) (*invoice.Invoice, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND company_id = ?", id.Bytes(), companyID.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound("get invoice", "invoice_id", id, err)
	}

	return toDomain(dto)
}

func (r *GormInvoiceRepository) GetByLoad(ctx context.Context, companyID, loadID kernel.UUID) (*invoice.Invoice, error) {
	if err := loadID.Validate(); err != nil {
		return nil, err
	}

	var dto InvoiceDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "load_id = ? AND company_id = ?", loadID.Bytes(), companyID.Bytes()).Error; err != nil {
		return nil, pgutil.NotFound("get invoice by load", "load_id", loadID, err)
	}

	return toDomain(dto)
}

func (r *GormInvoiceRepository) track(aggregate *invoice.Invoice) {
	if r.tracker != nil {
		r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	}
}

func fromDomain(inv *invoice.Invoice) InvoiceDTO {
	return InvoiceDTO{
		ID:            inv.ID().Bytes(),
		CompanyID:     inv.CompanyID().Bytes(),
		InvoiceNumber: inv.InvoiceNumber(),
		InvoiceType:   string(inv.Type()),
		CustomerID:    kernel.OptionalGoogleUUID(inv.CustomerID()),
		LoadID:        kernel.OptionalGoogleUUID(inv.LoadID()),
		TotalAmount:   inv.TotalAmount(),
		AmountPaid:    inv.AmountPaid(),
		InvoiceDate:   pgutil.Day(inv.InvoiceDate()),
		DueDate:       pgutil.Day(inv.DueDate()),
		Status:        string(inv.Status()),
		CreatedAt:     inv.CreatedAt(),
	}
}

func toDomain(dto InvoiceDTO) (*invoice.Invoice, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromGoogle(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.OptionalUUID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	loadID, err := kernel.OptionalUUID(dto.LoadID)
	if err != nil {
		return nil, err
	}

	return invoice.RestoreInvoice(
		id,
		companyID,
		dto.InvoiceNumber,
		invoice.Type(dto.InvoiceType),
		customerID,
		loadID,
		dto.TotalAmount,
		dto.AmountPaid,
		pgutil.FromDay(dto.InvoiceDate),
		pgutil.FromDay(dto.DueDate),
		dto.CreatedAt,
	)
}
