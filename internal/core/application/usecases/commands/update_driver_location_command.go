package commands

import (
	"errors"
	"time"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrUpdateDriverLocationCommandIsNotConstructed = errors.New(
	"UpdateDriverLocationCommand must be created via NewUpdateDriverLocationCommand constructor",
)

// UpdateDriverLocationCommand reports where a driver is and what they are
// doing. It never touches loads.
type UpdateDriverLocationCommand struct { //nolint:recvcheck //using for validation
	companyID  kernel.UUID
	driverID   kernel.UUID
	location   kernel.GeoPoint
	status     driver.DutyStatus
	reportedAt time.Time

	guard guard.ConstructorGuard
}

func NewUpdateDriverLocationCommand(
	companyID, driverID kernel.UUID,
	latitude, longitude float64,
	status string,
	reportedAt time.Time,
) (UpdateDriverLocationCommand, error) {
	cmd := UpdateDriverLocationCommand{
		reportedAt: reportedAt.UTC(),
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setDriverID(driverID),
		cmd.setLocation(latitude, longitude),
		cmd.setStatus(status),
	); err != nil {
		return UpdateDriverLocationCommand{}, err
	}

	return cmd, nil
}

func (c UpdateDriverLocationCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDriverLocationCommandIsNotConstructed)
}

func (c UpdateDriverLocationCommand) CompanyID() kernel.UUID { return c.companyID }
func (c UpdateDriverLocationCommand) DriverID() kernel.UUID { return c.driverID }
func (c UpdateDriverLocationCommand) Location() kernel.GeoPoint { return c.location }
func (c UpdateDriverLocationCommand) Status() driver.DutyStatus { return c.status }
func (c UpdateDriverLocationCommand) ReportedAt() time.Time { return c.reportedAt }

func (c *UpdateDriverLocationCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *UpdateDriverLocationCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver_id", err)
	}
	c.driverID = id
	return nil
}

func (c *UpdateDriverLocationCommand) setLocation(latitude, longitude float64) error {
	p, err := kernel.NewGeoPoint(latitude, longitude)
	if err != nil {
		return err
	}
	c.location = p
	return nil
}

func (c *UpdateDriverLocationCommand) setStatus(s string) error {
	status, err := driver.ParseDutyStatus(s)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}
