// Package equipment implements the trucks and trailers a load is moved with.
package equipment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrEquipmentIsNotConstructed = errors.New("Equipment must be created via NewEquipment or RestoreEquipment constructor")

type Kind string

const (
	Truck   Kind = "truck"
	Trailer Kind = "trailer"
)

func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if err := k.Validate(); err != nil {
		return "", err
	}
	return k, nil
}

func (k Kind) Validate() error {
	switch k {
	case Truck, Trailer:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("kind", fmt.Errorf("%q is not a known equipment kind", string(k)))
	}
}

type Status string

const (
	InService    Status = "in_service"
	OutOfService Status = "out_of_service"
)

func (s Status) Validate() error {
	switch s {
	case InService, OutOfService:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known equipment status", string(s)))
	}
}

type Equipment struct {
	id         kernel.UUID
	companyID  kernel.UUID
	kind       Kind
	unitNumber string
	status     Status
	createdAt  time.Time
	updatedAt  time.Time

	guard guard.ConstructorGuard
}

// NewEquipment registers a unit in service.
func NewEquipment(id, companyID kernel.UUID, kind Kind, unitNumber string) (*Equipment, error) {
	now := time.Now().UTC()
	return RestoreEquipment(id, companyID, kind, unitNumber, InService, now, now)
}

func RestoreEquipment(
	id, companyID kernel.UUID,
	kind Kind,
	unitNumber string,
	status Status,
	createdAt, updatedAt time.Time,
) (*Equipment, error) {
	e := &Equipment{
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setCompanyID(companyID),
		e.setKind(kind),
		e.setUnitNumber(unitNumber),
		e.setStatus(status),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Equipment) Validate() error {
	if e == nil {
		return ErrEquipmentIsNotConstructed
	}
	return e.guard.Validate(ErrEquipmentIsNotConstructed)
}

func (e *Equipment) ID() kernel.UUID { return e.id }
func (e *Equipment) CompanyID() kernel.UUID { return e.companyID }
func (e *Equipment) Kind() Kind { return e.kind }
func (e *Equipment) UnitNumber() string { return e.unitNumber }
func (e *Equipment) Status() Status { return e.status }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }

func (e *Equipment) BelongsTo(companyID kernel.UUID) bool {
	return e.companyID.IsEqual(companyID)
}

// CheckDispatchable verifies the unit is the expected kind and in service.
func (e *Equipment) CheckDispatchable(expected Kind) error {
	if e.kind != expected {
		return errs.NewValueIsInvalidErrorWithCause(
			string(expected)+"_id",
			fmt.Errorf("unit %s is a %s, not a %s", e.unitNumber, e.kind, expected),
		)
	}
	if e.status != InService {
		return errs.NewBusinessRuleViolatedErrorWithCause(
			"equipment is not dispatchable",
			fmt.Errorf("unit %s is %s", e.unitNumber, e.status),
		)
	}
	return nil
}

func (e *Equipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Equipment) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	e.companyID = id
	return nil
}

func (e *Equipment) setKind(kind Kind) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	e.kind = kind
	return nil
}

func (e *Equipment) setUnitNumber(unitNumber string) error {
	unitNumber = strings.TrimSpace(unitNumber)
	if unitNumber == "" {
		return errs.NewValueIsRequiredError("unit_number")
	}
	e.unitNumber = unitNumber
	return nil
}

func (e *Equipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}
