package commands

import (
	"errors"
	"strings"

	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrCreateEquipmentCommandIsNotConstructed = errors.New(
	"CreateEquipmentCommand must be created via NewCreateEquipmentCommand constructor",
)

// CreateEquipmentCommand registers a truck or trailer in service.
type CreateEquipmentCommand struct { //nolint:recvcheck //using for validation
	equipmentID kernel.UUID
	companyID   kernel.UUID
	kind        equipment.Kind
	unitNumber  string

	guard guard.ConstructorGuard
}

func NewCreateEquipmentCommand(equipmentID, companyID kernel.UUID, kind, unitNumber string) (CreateEquipmentCommand, error) {
	cmd := CreateEquipmentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setEquipmentID(equipmentID),
		cmd.setCompanyID(companyID),
		cmd.setKind(kind),
		cmd.setUnitNumber(unitNumber),
	); err != nil {
		return CreateEquipmentCommand{}, err
	}

	return cmd, nil
}

func (c CreateEquipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateEquipmentCommandIsNotConstructed)
}

func (c CreateEquipmentCommand) EquipmentID() kernel.UUID { return c.equipmentID }
func (c CreateEquipmentCommand) CompanyID() kernel.UUID { return c.companyID }
func (c CreateEquipmentCommand) Kind() equipment.Kind { return c.kind }
func (c CreateEquipmentCommand) UnitNumber() string { return c.unitNumber }

func (c *CreateEquipmentCommand) setEquipmentID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("equipment_id", err)
	}
	c.equipmentID = id
	return nil
}

func (c *CreateEquipmentCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *CreateEquipmentCommand) setKind(s string) error {
	kind, err := equipment.ParseKind(s)
	if err != nil {
		return err
	}
	c.kind = kind
	return nil
}

func (c *CreateEquipmentCommand) setUnitNumber(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return errs.NewValueIsRequiredError("unit_number")
	}
	c.unitNumber = s
	return nil
}
