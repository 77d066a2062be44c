package commands

import (
	"errors"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrCreateDriverCommandIsNotConstructed = errors.New(
	"CreateDriverCommand must be created via NewCreateDriverCommand constructor",
)

type CreateDriverCommand struct { //nolint:recvcheck //using for validation
	driverID  kernel.UUID
	companyID kernel.UUID
	profile   driver.Profile

	guard guard.ConstructorGuard
}

func NewCreateDriverCommand(driverID, companyID kernel.UUID, profile driver.Profile) (CreateDriverCommand, error) {
	cmd := CreateDriverCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setDriverID(driverID),
		cmd.setCompanyID(companyID),
		cmd.setProfile(profile),
	); err != nil {
		return CreateDriverCommand{}, err
	}

	return cmd, nil
}

func (c CreateDriverCommand) Validate() error {
	return c.guard.Validate(ErrCreateDriverCommandIsNotConstructed)
}

func (c CreateDriverCommand) DriverID() kernel.UUID { return c.driverID }
func (c CreateDriverCommand) CompanyID() kernel.UUID { return c.companyID }
func (c CreateDriverCommand) Profile() driver.Profile { return c.profile }

func (c *CreateDriverCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver_id", err)
	}
	c.driverID = id
	return nil
}

func (c *CreateDriverCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *CreateDriverCommand) setProfile(p driver.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.profile = p
	return nil
}
