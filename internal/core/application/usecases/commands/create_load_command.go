package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrCreateLoadCommandIsNotConstructed = errors.New(
	"CreateLoadCommand must be created via NewCreateLoadCommand constructor",
)

// LoadDetails is the caller supplied part of a new load.
type LoadDetails struct {
	LoadNumber      string
	ReferenceNumber string
	BOLNumber       string
	LoadType        string
	CustomerID      *kernel.UUID
	PickupDate      kernel.Date
	DeliveryDate    kernel.Date
	Cargo           load.Cargo
}

// CreateLoadCommand registers a new pending load for a company.
//
// Example:
//
//	loadID := kernel.NewUUID()
//	cmd, err := NewCreateLoadCommand(loadID, companyID, LoadDetails{
//	    LoadNumber:   "L-1001",
//	    LoadType:     "ftl",
//	    CustomerID:   &customerID,
//	    PickupDate:   kernel.NewDate(2024, time.January, 1),
//	    DeliveryDate: kernel.NewDate(2024, time.January, 5),
//	})
//	if err != nil {
//	    return err // ValidationError
//	}
//	err = handler.Handle(ctx, cmd)
type CreateLoadCommand struct { //nolint:recvcheck //using for validation
	loadID    kernel.UUID
	companyID kernel.UUID
	loadType  load.Type
	schedule  kernel.DateRange
	details   LoadDetails

	guard guard.ConstructorGuard
}

// NewCreateLoadCommand checks identifiers, load type, customer reference and
// the schedule. All failures are reported together.
func NewCreateLoadCommand(loadID, companyID kernel.UUID, details LoadDetails) (CreateLoadCommand, error) {
	cmd := CreateLoadCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setLoadID(loadID),
		cmd.setCompanyID(companyID),
		cmd.setLoadType(details.LoadType),
		cmd.setCustomerID(details.CustomerID),
		cmd.setSchedule(details.PickupDate, details.DeliveryDate),
	); err != nil {
		return CreateLoadCommand{}, err
	}

	return cmd, nil
}

func (c CreateLoadCommand) Validate() error {
	return c.guard.Validate(ErrCreateLoadCommandIsNotConstructed)
}

func (c CreateLoadCommand) LoadID() kernel.UUID {
	return c.loadID
}

func (c CreateLoadCommand) CompanyID() kernel.UUID {
	return c.companyID
}

func (c CreateLoadCommand) LoadType() load.Type {
	return c.loadType
}

func (c CreateLoadCommand) Schedule() kernel.DateRange {
	return c.schedule
}

// CustomerID is never nil on a constructed command.
func (c CreateLoadCommand) CustomerID() kernel.UUID {
	return *c.details.CustomerID
}

func (c CreateLoadCommand) Details() LoadDetails {
	return c.details
}

func (c *CreateLoadCommand) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("load_id", err)
	}
	c.loadID = id
	return nil
}

func (c *CreateLoadCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *CreateLoadCommand) setLoadType(s string) error {
	t, err := load.ParseType(s)
	if err != nil {
		return err
	}
	c.loadType = t
	return nil
}

func (c *CreateLoadCommand) setCustomerID(id *kernel.UUID) error {
	if id == nil {
		return errs.NewValueIsRequiredError("customer_id")
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	return nil
}

func (c *CreateLoadCommand) setSchedule(pickup, delivery kernel.Date) error {
	if err := pickup.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("pickup_date", err)
	}
	if err := delivery.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("delivery_date", err)
	}
	schedule, err := kernel.NewDateRange(pickup, delivery)
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("pickup_date", err)
	}
	c.schedule = schedule
	return nil
}
