package driver

import (
	"fmt"

	"tms/internal/pkg/errs"
)

// EmploymentStatus is the HR state of a driver.
type EmploymentStatus string

const (
	EmploymentActive     EmploymentStatus = "active"
	EmploymentInactive   EmploymentStatus = "inactive"
	EmploymentTerminated EmploymentStatus = "terminated"
)

func (s EmploymentStatus) Validate() error {
	switch s {
	case EmploymentActive, EmploymentInactive, EmploymentTerminated:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"employment_status", fmt.Errorf("%q is not a known employment status", string(s)))
	}
}

// DutyStatus is the hours-of-service state a driver reports from the road.
type DutyStatus string

const (
	DutyAvailable    DutyStatus = "available"
	DutyOffDuty      DutyStatus = "off_duty"
	DutyOnDuty       DutyStatus = "on_duty"
	DutyDriving      DutyStatus = "driving"
	DutySleeperBerth DutyStatus = "sleeper_berth"
)

func ParseDutyStatus(s string) (DutyStatus, error) {
	status := DutyStatus(s)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

func (s DutyStatus) Validate() error {
	switch s {
	case DutyAvailable, DutyOffDuty, DutyOnDuty, DutyDriving, DutySleeperBerth:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"current_status", fmt.Errorf("%q is not a known duty status", string(s)))
	}
}

// AllowsDispatch reports whether a driver in this duty status may take a new load.
func (s DutyStatus) AllowsDispatch() bool {
	return s == DutyAvailable || s == DutyOffDuty
}
