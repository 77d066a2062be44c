package driver

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrDriverIsNotConstructed = errors.New("Driver must be created via NewDriver or RestoreDriver constructor")

type PayType string

const (
	PayPerMile  PayType = "per_mile"
	PayHourly   PayType = "hourly"
	PayPercent  PayType = "percentage"
	PaySalary   PayType = "salary"
	PayFlatRate PayType = "flat_rate"
)

func (p PayType) Validate() error {
	switch p {
	case PayPerMile, PayHourly, PayPercent, PaySalary, PayFlatRate:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("pay_type", fmt.Errorf("%q is not a known pay type", string(p)))
	}
}

// License is the commercial driver's license a driver operates under.
type License struct {
	Number string
	State  string
	Class  string
	Expiry kernel.Date
}

func (l License) Validate() error {
	var err error
	if strings.TrimSpace(l.Number) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("cdl_number"))
	}
	if e := l.Expiry.Validate(); e != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("cdl_expiry", e))
	}
	return err
}

// Profile carries the descriptive attributes supplied when a driver is hired.
type Profile struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	License   License
	HireDate  *kernel.Date
	PayType   PayType
	PayRate   decimal.Decimal
}

func (p Profile) Validate() error {
	var err error
	if strings.TrimSpace(p.FirstName) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("first_name"))
	}
	if strings.TrimSpace(p.LastName) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("last_name"))
	}
	if strings.TrimSpace(p.Phone) == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("phone"))
	}
	if p.PayRate.IsNegative() {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("pay_rate", fmt.Errorf("%s is negative", p.PayRate)))
	}
	return errors.Join(err, p.License.Validate(), p.PayType.Validate())
}

// Performance holds the counters accumulated over completed work.
type Performance struct {
	TotalMiles       int64
	TotalLoads       int
	SafetyScore      *float64
	OnTimePercentage *float64
}

// Driver is the aggregate root of a person who can be dispatched.
type Driver struct {
	id        kernel.UUID
	companyID kernel.UUID

	profile          Profile
	employmentStatus EmploymentStatus
	dutyStatus       DutyStatus
	performance      Performance

	location           *kernel.GeoPoint
	lastLocationUpdate *time.Time

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewDriver hires a driver: employment active, off duty, no known position.
func NewDriver(id, companyID kernel.UUID, profile Profile) (*Driver, error) {
	now := time.Now().UTC()
	d := &Driver{
		employmentStatus: EmploymentActive,
		dutyStatus:       DutyOffDuty,
		createdAt:        now,
		updatedAt:        now,
		guard:            guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setCompanyID(companyID),
		d.setProfile(profile),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Driver) Validate() error {
	if d == nil {
		return ErrDriverIsNotConstructed
	}
	return d.guard.Validate(ErrDriverIsNotConstructed)
}

func (d *Driver) ID() kernel.UUID { return d.id }
func (d *Driver) CompanyID() kernel.UUID { return d.companyID }
func (d *Driver) Profile() Profile { return d.profile }
func (d *Driver) EmploymentStatus() EmploymentStatus { return d.employmentStatus }
func (d *Driver) DutyStatus() DutyStatus { return d.dutyStatus }
func (d *Driver) Performance() Performance { return d.performance }
func (d *Driver) CreatedAt() time.Time { return d.createdAt }
func (d *Driver) UpdatedAt() time.Time { return d.updatedAt }

func (d *Driver) FullName() string {
	return d.profile.FirstName + " " + d.profile.LastName
}

// Location returns the last reported position, nil when none was reported.
func (d *Driver) Location() *kernel.GeoPoint {
	if d.location == nil {
		return nil
	}
	p := *d.location
	return &p
}

func (d *Driver) LastLocationUpdate() *time.Time {
	if d.lastLocationUpdate == nil {
		return nil
	}
	t := *d.lastLocationUpdate
	return &t
}

func (d *Driver) BelongsTo(companyID kernel.UUID) bool {
	return d.companyID.IsEqual(companyID)
}

// IsAssignable reports whether the driver can be bound to a load.
func (d *Driver) IsAssignable() bool {
	return d.CheckAssignable() == nil
}

// CheckAssignable explains why a driver cannot be dispatched. Employment is
// checked before duty status.
func (d *Driver) CheckAssignable() error {
	if d.employmentStatus != EmploymentActive {
		return errs.NewBusinessRuleViolatedErrorWithCause(
			"driver is not assignable",
			fmt.Errorf("employment status is %s", d.employmentStatus),
		)
	}
	if !d.dutyStatus.AllowsDispatch() {
		return errs.NewBusinessRuleViolatedErrorWithCause(
			"driver is not assignable",
			fmt.Errorf("current status is %s", d.dutyStatus),
		)
	}
	return nil
}

// ReportPosition overwrites the last known position and duty status.
func (d *Driver) ReportPosition(location kernel.GeoPoint, status DutyStatus, at time.Time) error {
	if err := errors.Join(location.Validate(), status.Validate()); err != nil {
		return err
	}

	d.location = &location
	d.dutyStatus = status
	reported := at.UTC()
	d.lastLocationUpdate = &reported
	d.updatedAt = reported
	return nil
}

func (d *Driver) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Driver) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	d.companyID = id
	return nil
}

func (d *Driver) setProfile(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
	p.Phone = strings.TrimSpace(p.Phone)
	p.License.Number = strings.TrimSpace(p.License.Number)
	p.License.State = strings.ToUpper(strings.TrimSpace(p.License.State))
	p.License.Class = strings.ToUpper(strings.TrimSpace(p.License.Class))
	d.profile = p
	return nil
}

func (d *Driver) setStatuses(employment EmploymentStatus, duty DutyStatus) error {
	if err := errors.Join(employment.Validate(), duty.Validate()); err != nil {
		return err
	}
	d.employmentStatus = employment
	d.dutyStatus = duty
	return nil
}
