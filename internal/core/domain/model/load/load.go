package load

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

var ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad or RestoreLoad constructor")

// Cargo describes what is being moved.
type Cargo struct {
	EquipmentType string
	WeightLbs     *int
	Pieces        *int
	Commodity     string
}

func (c Cargo) Validate() error {
	var err error
	if c.WeightLbs != nil && *c.WeightLbs < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"total_weight_lbs", fmt.Errorf("%d is negative", *c.WeightLbs)))
	}
	if c.Pieces != nil && *c.Pieces < 0 {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause(
			"total_pieces", fmt.Errorf("%d is negative", *c.Pieces)))
	}
	return err
}

// Load is the aggregate root of a single shipment.
type Load struct {
	id        kernel.UUID
	companyID kernel.UUID

	loadNumber      string
	referenceNumber string
	bolNumber       string
	loadType        Type
	mode            Mode

	customerID *kernel.UUID
	carrierID  *kernel.UUID
	assignment *Assignment

	cargo      Cargo
	status     Status
	schedule   kernel.DateRange
	rates      Rates
	totalMiles *int

	createdAt time.Time
	updatedAt time.Time
	version   int

	guard guard.ConstructorGuard
}

// NewLoad creates a pending, unassigned load. The schedule range guarantees
// pickup is not after delivery.
func NewLoad(
	id kernel.UUID,
	companyID kernel.UUID,
	loadNumber string,
	loadType Type,
	schedule kernel.DateRange,
	customerID *kernel.UUID,
	cargo Cargo,
) (*Load, error) {
	now := time.Now().UTC()
	l := &Load{
		status:    Pending,
		createdAt: now,
		updatedAt: now,
		version:   1,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setCompanyID(companyID),
		l.setLoadNumber(loadNumber),
		l.setType(loadType, ""),
		l.setSchedule(schedule),
		l.setCustomerID(customerID),
		l.setCargo(cargo),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Load) ID() kernel.UUID { return l.id }
func (l *Load) CompanyID() kernel.UUID { return l.companyID }
func (l *Load) LoadNumber() string { return l.loadNumber }
func (l *Load) ReferenceNumber() string { return l.referenceNumber }
func (l *Load) BOLNumber() string { return l.bolNumber }
func (l *Load) Type() Type { return l.loadType }
func (l *Load) Mode() Mode { return l.mode }
func (l *Load) Cargo() Cargo { return l.cargo }
func (l *Load) Status() Status { return l.status }
func (l *Load) Schedule() kernel.DateRange { return l.schedule }
func (l *Load) PickupDate() kernel.Date { return l.schedule.Start() }
func (l *Load) DeliveryDate() kernel.Date { return l.schedule.End() }
func (l *Load) Rates() Rates { return l.rates }
func (l *Load) CreatedAt() time.Time { return l.createdAt }
func (l *Load) UpdatedAt() time.Time { return l.updatedAt }
func (l *Load) CustomerID() *kernel.UUID { return copyID(l.customerID) }
func (l *Load) CarrierID() *kernel.UUID { return copyID(l.carrierID) }

// Version is the optimistic concurrency token the load was read with.
func (l *Load) Version() int { return l.version }

// Assignment returns nil while the load has no resources.
func (l *Load) Assignment() *Assignment {
	if l.assignment == nil {
		return nil
	}
	a := *l.assignment
	return &a
}

func (l *Load) TotalMiles() *int {
	if l.totalMiles == nil {
		return nil
	}
	miles := *l.totalMiles
	return &miles
}

// Assign (re)binds resources and moves the load to dispatched. It returns the
// assignment it replaced, if any.
func (l *Load) Assign(assignment Assignment) (*Assignment, error) {
	if err := assignment.Validate(); err != nil {
		return nil, err
	}

	next, err := l.status.Dispatch()
	if err != nil {
		return nil, err
	}

	previous := l.Assignment()
	l.assignment = &assignment
	l.status = next
	l.touch()
	return previous, nil
}

// TransitionTo moves the load along the lifecycle table.
func (l *Load) TransitionTo(next Status) error {
	status, err := l.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if err = status.ValidateAssignment(l.assignment != nil); err != nil {
		return errs.NewBusinessRuleViolatedErrorWithCause("load is not assigned", err)
	}

	l.status = status
	l.touch()
	return nil
}

// Reprice replaces the rates and optionally the mileage.
func (l *Load) Reprice(rates Rates, totalMiles *int) error {
	if l.status == Cancelled {
		return errs.NewBusinessRuleViolatedError("cancelled load cannot be repriced")
	}
	if totalMiles != nil && *totalMiles < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total_miles", fmt.Errorf("%d is negative", *totalMiles))
	}

	l.rates = rates
	if totalMiles != nil {
		miles := *totalMiles
		l.totalMiles = &miles
	}
	l.touch()
	return nil
}

// SetReferences records the shipper reference and bill of lading numbers.
func (l *Load) SetReferences(referenceNumber, bolNumber string) {
	l.referenceNumber = strings.TrimSpace(referenceNumber)
	l.bolNumber = strings.TrimSpace(bolNumber)
}

// IncrementVersion is called by repositories after a successful versioned write.
func (l *Load) IncrementVersion() {
	l.version++
}

// RevenueOrZero, CostOrZero and ProfitOrZero treat unpriced loads as zero.
func (l *Load) RevenueOrZero() decimal.Decimal { return orZero(l.rates.totalRevenue) }
func (l *Load) CostOrZero() decimal.Decimal { return orZero(l.rates.totalCost) }
func (l *Load) ProfitOrZero() decimal.Decimal { return orZero(l.rates.profitMargin) }

func (l *Load) MilesOrZero() int {
	if l.totalMiles == nil {
		return 0
	}
	return *l.totalMiles
}

func (l *Load) touch() {
	l.updatedAt = time.Now().UTC()
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	l.companyID = id
	return nil
}

func (l *Load) setLoadNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("load_number")
	}
	l.loadNumber = number
	return nil
}

func (l *Load) setType(t Type, mode Mode) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if mode == "" {
		mode = t.DefaultMode()
	}
	if err := mode.Validate(); err != nil {
		return err
	}
	l.loadType = t
	l.mode = mode
	return nil
}

func (l *Load) setSchedule(schedule kernel.DateRange) error {
	if err := schedule.Validate(); err != nil {
		return err
	}
	l.schedule = schedule
	return nil
}

func (l *Load) setCustomerID(id *kernel.UUID) error {
	if id == nil {
		l.customerID = nil
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer_id", err)
	}
	l.customerID = copyID(id)
	return nil
}

func (l *Load) setCargo(cargo Cargo) error {
	if err := cargo.Validate(); err != nil {
		return err
	}
	cargo.EquipmentType = strings.TrimSpace(cargo.EquipmentType)
	cargo.Commodity = strings.TrimSpace(cargo.Commodity)
	l.cargo = cargo
	return nil
}

func copyID(id *kernel.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func orZero(d decimal.NullDecimal) decimal.Decimal {
	if !d.Valid {
		return decimal.Zero
	}
	return d.Decimal
}
