package load

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

// Snapshot is the flat persisted form of a Load.
type Snapshot struct {
	ID              kernel.UUID
	CompanyID       kernel.UUID
	LoadNumber      string
	ReferenceNumber string
	BOLNumber       string
	Type            Type
	Mode            Mode
	CustomerID      *kernel.UUID
	CarrierID       *kernel.UUID
	Assignment      *Assignment
	Cargo           Cargo
	Status          Status
	Schedule        kernel.DateRange
	Rates           Rates
	TotalMiles      *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Version         int
}

func (l *Load) Snapshot() Snapshot {
	return Snapshot{
		ID:              l.id,
		CompanyID:       l.companyID,
		LoadNumber:      l.loadNumber,
		ReferenceNumber: l.referenceNumber,
		BOLNumber:       l.bolNumber,
		Type:            l.loadType,
		Mode:            l.mode,
		CustomerID:      l.CustomerID(),
		CarrierID:       l.CarrierID(),
		Assignment:      l.Assignment(),
		Cargo:           l.cargo,
		Status:          l.status,
		Schedule:        l.schedule,
		Rates:           l.rates,
		TotalMiles:      l.TotalMiles(),
		CreatedAt:       l.createdAt,
		UpdatedAt:       l.updatedAt,
		Version:         l.version,
	}
}

// RestoreLoad rehydrates a load from persistence, re-checking its invariants.
func RestoreLoad(s Snapshot) (*Load, error) {
	l := &Load{
		referenceNumber: s.ReferenceNumber,
		bolNumber:       s.BOLNumber,
		carrierID:       copyID(s.CarrierID),
		rates:           s.Rates,
		totalMiles:      s.TotalMiles,
		createdAt:       s.CreatedAt,
		updatedAt:       s.UpdatedAt,
		version:         s.Version,
		guard:           guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(s.ID),
		l.setCompanyID(s.CompanyID),
		l.setLoadNumber(s.LoadNumber),
		l.setType(s.Type, s.Mode),
		l.setSchedule(s.Schedule),
		l.setCustomerID(s.CustomerID),
		l.setCargo(s.Cargo),
		l.restoreStatus(s.Status, s.Assignment),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Load) restoreStatus(status Status, assignment *Assignment) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if assignment != nil {
		if err := assignment.Validate(); err != nil {
			return err
		}
		a := *assignment
		l.assignment = &a
	}
	if err := status.ValidateAssignment(assignment != nil); err != nil {
		return err
	}
	l.status = status
	return nil
}
