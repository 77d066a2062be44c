package driverrepo

import (
	"time"

	"tms/internal/adapters/out/postgres/pgutil"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DriverDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID `gorm:"type:uuid;index"`

	FirstName string
	LastName  string
	Email     string
	Phone     string
	CDLNumber string          `gorm:"column:cdl_number"`
	CDLState  string          `gorm:"column:cdl_state"`
	CDLClass  string          `gorm:"column:cdl_class"`
	CDLExpiry time.Time       `gorm:"column:cdl_expiry;type:date"`
	HireDate  *time.Time      `gorm:"type:date"`
	PayType   string
	PayRate   decimal.Decimal `gorm:"type:numeric(10,4)"`

	EmploymentStatus   string
	CurrentStatus      string
	CurrentLocation    *Point `gorm:"type:point"`
	LastLocationUpdate *time.Time

	TotalMiles       int64
	TotalLoads       int
	SafetyScore      *float64
	OnTimePercentage *float64

	CreatedAt time.Time `gorm:"autoCreateTime:false"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (DriverDTO) TableName() string {
	return "drivers"
}

func fromDomain(d *driver.Driver) DriverDTO {
	s := d.Snapshot()
	p := s.Profile

	return DriverDTO{
		ID:                 s.ID.Bytes(),
		CompanyID:          s.CompanyID.Bytes(),
		FirstName:          p.FirstName,
		LastName:           p.LastName,
		Email:              p.Email,
		Phone:              p.Phone,
		CDLNumber:          p.License.Number,
		CDLState:           p.License.State,
		CDLClass:           p.License.Class,
		CDLExpiry:          pgutil.Day(p.License.Expiry),
		HireDate:           pgutil.DayPtr(p.HireDate),
		PayType:            string(p.PayType),
		PayRate:            p.PayRate,
		EmploymentStatus:   string(s.EmploymentStatus),
		CurrentStatus:      string(s.DutyStatus),
		CurrentLocation:    pointFromGeo(s.Location),
		LastLocationUpdate: s.LastLocationUpdate,
		TotalMiles:         s.Performance.TotalMiles,
		TotalLoads:         s.Performance.TotalLoads,
		SafetyScore:        s.Performance.SafetyScore,
		OnTimePercentage:   s.Performance.OnTimePercentage,
		CreatedAt:          s.CreatedAt,
		UpdatedAt:          s.UpdatedAt,
	}
}

func toDomain(dto DriverDTO) (*driver.Driver, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromGoogle(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	location, err := dto.CurrentLocation.toGeo()
	if err != nil {
		return nil, err
	}

	return driver.RestoreDriver(driver.Snapshot{
		ID:        id,
		CompanyID: companyID,
		Profile: driver.Profile{
			FirstName: dto.FirstName,
			LastName:  dto.LastName,
			Email:     dto.Email,
			Phone:     dto.Phone,
			License: driver.License{
				Number: dto.CDLNumber,
				State:  dto.CDLState,
				Class:  dto.CDLClass,
				Expiry: pgutil.FromDay(dto.CDLExpiry),
			},
			HireDate: pgutil.FromDayPtr(dto.HireDate),
			PayType:  driver.PayType(dto.PayType),
			PayRate:  dto.PayRate,
		},
		EmploymentStatus: driver.EmploymentStatus(dto.EmploymentStatus),
		DutyStatus:       driver.DutyStatus(dto.CurrentStatus),
		Performance: driver.Performance{
			TotalMiles:       dto.TotalMiles,
			TotalLoads:       dto.TotalLoads,
			SafetyScore:      dto.SafetyScore,
			OnTimePercentage: dto.OnTimePercentage,
		},
		Location:           location,
		LastLocationUpdate: dto.LastLocationUpdate,
		CreatedAt:          dto.CreatedAt,
		UpdatedAt:          dto.UpdatedAt,
	})
}
