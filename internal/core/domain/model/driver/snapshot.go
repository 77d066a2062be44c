package driver

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/guard"
)

// Snapshot is the flat persisted form of a Driver.
type Snapshot struct {
	ID                 kernel.UUID
	CompanyID          kernel.UUID
	Profile            Profile
	EmploymentStatus   EmploymentStatus
	DutyStatus         DutyStatus
	Performance        Performance
	Location           *kernel.GeoPoint
	LastLocationUpdate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (d *Driver) Snapshot() Snapshot {
	return Snapshot{
		ID:                 d.id,
		CompanyID:          d.companyID,
		Profile:            d.profile,
		EmploymentStatus:   d.employmentStatus,
		DutyStatus:         d.dutyStatus,
		Performance:        d.performance,
		Location:           d.Location(),
		LastLocationUpdate: d.LastLocationUpdate(),
		CreatedAt:          d.createdAt,
		UpdatedAt:          d.updatedAt,
	}
}

func RestoreDriver(s Snapshot) (*Driver, error) {
	d := &Driver{
		performance: s.Performance,
		createdAt:   s.CreatedAt,
		updatedAt:   s.UpdatedAt,
		guard:       guard.NewConstructorGuard(),
	}

	if s.Location != nil {
		if err := s.Location.Validate(); err != nil {
			return nil, err
		}
		p := *s.Location
		d.location = &p
	}
	if s.LastLocationUpdate != nil {
		t := *s.LastLocationUpdate
		d.lastLocationUpdate = &t
	}

	if err := errors.Join(
		d.setID(s.ID),
		d.setCompanyID(s.CompanyID),
		d.setProfile(s.Profile),
		d.setStatuses(s.EmploymentStatus, s.DutyStatus),
	); err != nil {
		return nil, err
	}

	return d, nil
}
