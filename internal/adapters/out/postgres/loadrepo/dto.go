package loadrepo

import (
	"time"

	"tms/internal/adapters/out/postgres/pgutil"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LoadDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID  `gorm:"type:uuid;index"`
	LoadNumber      string
	ReferenceNumber string
	BOLNumber       string `gorm:"column:bol_number"`
	LoadType        string
	Mode            string
	CustomerID      *uuid.UUID `gorm:"type:uuid"`
	CarrierID       *uuid.UUID `gorm:"type:uuid"`
	DriverID        *uuid.UUID `gorm:"type:uuid"`
	TruckID         *uuid.UUID `gorm:"type:uuid"`
	TrailerID       *uuid.UUID `gorm:"type:uuid"`

	EquipmentType        string
	TotalWeightLbs       *int
	TotalPieces          *int
	CommodityDescription string

	Status       string
	PickupDate   time.Time `gorm:"type:date"`
	DeliveryDate time.Time `gorm:"type:date"`

	CustomerRate decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	CarrierRate  decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	TotalRevenue decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	TotalCost    decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	ProfitMargin decimal.NullDecimal `gorm:"type:numeric(12,2)"`
	TotalMiles   *int

	Version   int
	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (LoadDTO) TableName() string {
	return "loads"
}

func fromDomain(l *load.Load) LoadDTO {
	s := l.Snapshot()

	dto := LoadDTO{
		ID:                   s.ID.Bytes(),
		CompanyID:            s.CompanyID.Bytes(),
		LoadNumber:           s.LoadNumber,
		ReferenceNumber:      s.ReferenceNumber,
		BOLNumber:            s.BOLNumber,
		LoadType:             string(s.Type),
		Mode:                 string(s.Mode),
		CustomerID:           kernel.OptionalGoogleUUID(s.CustomerID),
		CarrierID:            kernel.OptionalGoogleUUID(s.CarrierID),
		EquipmentType:        s.Cargo.EquipmentType,
		TotalWeightLbs:       s.Cargo.WeightLbs,
		TotalPieces:          s.Cargo.Pieces,
		CommodityDescription: s.Cargo.Commodity,
		Status:               s.Status.String(),
		PickupDate:           pgutil.Day(s.Schedule.Start()),
		DeliveryDate:         pgutil.Day(s.Schedule.End()),
		CustomerRate:         s.Rates.CustomerRate(),
		CarrierRate:          s.Rates.CarrierRate(),
		TotalRevenue:         s.Rates.TotalRevenue(),
		TotalCost:            s.Rates.TotalCost(),
		ProfitMargin:         s.Rates.ProfitMargin(),
		TotalMiles:           s.TotalMiles,
		Version:              s.Version,
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}

	if a := s.Assignment; a != nil {
		driverID := a.DriverID().Bytes()
		truckID := a.TruckID().Bytes()
		dto.DriverID = &driverID
		dto.TruckID = &truckID
		dto.TrailerID = kernel.OptionalGoogleUUID(a.TrailerID())
	}

	return dto
}

func toDomain(dto LoadDTO) (*load.Load, error) {
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
	carrierID, err := kernel.OptionalUUID(dto.CarrierID)
	if err != nil {
		return nil, err
	}
	assignment, err := assignmentOf(dto)
	if err != nil {
		return nil, err
	}
	status, err := load.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	schedule, err := kernel.NewDateRange(pgutil.FromDay(dto.PickupDate), pgutil.FromDay(dto.DeliveryDate))
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(load.Snapshot{
		ID:              id,
		CompanyID:       companyID,
		LoadNumber:      dto.LoadNumber,
		ReferenceNumber: dto.ReferenceNumber,
		BOLNumber:       dto.BOLNumber,
		Type:            load.Type(dto.LoadType),
		Mode:            load.Mode(dto.Mode),
		CustomerID:      customerID,
		CarrierID:       carrierID,
		Assignment:      assignment,
		Cargo: load.Cargo{
			EquipmentType: dto.EquipmentType,
			WeightLbs:     dto.TotalWeightLbs,
			Pieces:        dto.TotalPieces,
			Commodity:     dto.CommodityDescription,
		},
		Status:   status,
		Schedule: schedule,
		Rates: load.RestoreRates(
			dto.CustomerRate, dto.CarrierRate, dto.TotalRevenue, dto.TotalCost, dto.ProfitMargin,
		),
		TotalMiles: dto.TotalMiles,
		CreatedAt:  dto.CreatedAt,
		UpdatedAt:  dto.UpdatedAt,
		Version:    dto.Version,
	})
}

// assignmentOf returns nil unless both driver and truck are set.
func assignmentOf(dto LoadDTO) (*load.Assignment, error) {
	if dto.DriverID == nil || dto.TruckID == nil {
		return nil, nil //nolint:nilnil // unassigned load
	}

	driverID, err := kernel.UUIDFromGoogle(*dto.DriverID)
	if err != nil {
		return nil, err
	}
	truckID, err := kernel.UUIDFromGoogle(*dto.TruckID)
	if err != nil {
		return nil, err
	}
	trailerID, err := kernel.OptionalUUID(dto.TrailerID)
	if err != nil {
		return nil, err
	}

	a, err := load.NewAssignment(driverID, truckID, trailerID)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
