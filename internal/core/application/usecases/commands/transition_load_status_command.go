package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrTransitionLoadStatusCommandIsNotConstructed = errors.New(
	"TransitionLoadStatusCommand must be created via NewTransitionLoadStatusCommand constructor",
)

// TransitionLoadStatusCommand moves a load along the lifecycle table. The
// status arrives as its wire name, e.g. "in_transit".
type TransitionLoadStatusCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	loadID    kernel.UUID
	status    load.Status

	guard guard.ConstructorGuard
}

func NewTransitionLoadStatusCommand(companyID, loadID kernel.UUID, status string) (TransitionLoadStatusCommand, error) {
	cmd := TransitionLoadStatusCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setLoadID(loadID),
		cmd.setStatus(status),
	); err != nil {
		return TransitionLoadStatusCommand{}, err
	}

	return cmd, nil
}

func (c TransitionLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrTransitionLoadStatusCommandIsNotConstructed)
}

func (c TransitionLoadStatusCommand) CompanyID() kernel.UUID { return c.companyID }
func (c TransitionLoadStatusCommand) LoadID() kernel.UUID { return c.loadID }
func (c TransitionLoadStatusCommand) Status() load.Status { return c.status }

func (c *TransitionLoadStatusCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *TransitionLoadStatusCommand) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("load_id", err)
	}
	c.loadID = id
	return nil
}

func (c *TransitionLoadStatusCommand) setStatus(s string) error {
	status, err := load.ParseStatus(s)
	if err != nil {
		return err
	}
	c.status = status
	return nil
}
