package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrAssignLoadCommandIsNotConstructed = errors.New(
	"AssignLoadCommand must be created via NewAssignLoadCommand constructor",
)

// AssignLoadCommand binds a driver, a truck and optionally a trailer to a load.
// Omitting the trailer clears any trailer of a previous assignment.
type AssignLoadCommand struct { //nolint:recvcheck //using for validation
	companyID  kernel.UUID
	loadID     kernel.UUID
	assignment load.Assignment

	guard guard.ConstructorGuard
}

func NewAssignLoadCommand(
	companyID, loadID, driverID, truckID kernel.UUID,
	trailerID *kernel.UUID,
) (AssignLoadCommand, error) {
	cmd := AssignLoadCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setLoadID(loadID),
		cmd.setAssignment(driverID, truckID, trailerID),
	); err != nil {
		return AssignLoadCommand{}, err
	}

	return cmd, nil
}

func (c AssignLoadCommand) Validate() error {
	return c.guard.Validate(ErrAssignLoadCommandIsNotConstructed)
}

func (c AssignLoadCommand) CompanyID() kernel.UUID { return c.companyID }
func (c AssignLoadCommand) LoadID() kernel.UUID { return c.loadID }
func (c AssignLoadCommand) Assignment() load.Assignment { return c.assignment }

func (c *AssignLoadCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *AssignLoadCommand) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("load_id", err)
	}
	c.loadID = id
	return nil
}

func (c *AssignLoadCommand) setAssignment(driverID, truckID kernel.UUID, trailerID *kernel.UUID) error {
	a, err := load.NewAssignment(driverID, truckID, trailerID)
	if err != nil {
		return err
	}
	c.assignment = a
	return nil
}
