package commands

import (
	"errors"
	"math"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrUpdateLoadRatesCommandIsNotConstructed = errors.New(
	"UpdateLoadRatesCommand must be created via NewUpdateLoadRatesCommand constructor",
)

// UpdateLoadRatesCommand reprices a load. Unset rates are stored as unknown;
// unset miles keep the current mileage.
type UpdateLoadRatesCommand struct { //nolint:recvcheck //using for validation
	companyID  kernel.UUID
	loadID     kernel.UUID
	rates      load.Rates
	totalMiles *int

	guard guard.ConstructorGuard
}

func NewUpdateLoadRatesCommand(
	companyID, loadID kernel.UUID,
	customerRate, carrierRate decimal.NullDecimal,
	totalMiles *int,
) (UpdateLoadRatesCommand, error) {
	cmd := UpdateLoadRatesCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setLoadID(loadID),
		cmd.setRates(customerRate, carrierRate),
		cmd.setTotalMiles(totalMiles),
	); err != nil {
		return UpdateLoadRatesCommand{}, err
	}

	return cmd, nil
}

func (c UpdateLoadRatesCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadRatesCommandIsNotConstructed)
}

func (c UpdateLoadRatesCommand) CompanyID() kernel.UUID { return c.companyID }
func (c UpdateLoadRatesCommand) LoadID() kernel.UUID { return c.loadID }
func (c UpdateLoadRatesCommand) Rates() load.Rates { return c.rates }
func (c UpdateLoadRatesCommand) TotalMiles() *int { return c.totalMiles }

func (c *UpdateLoadRatesCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *UpdateLoadRatesCommand) setLoadID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("load_id", err)
	}
	c.loadID = id
	return nil
}

func (c *UpdateLoadRatesCommand) setRates(customerRate, carrierRate decimal.NullDecimal) error {
	rates, err := load.NewRates(customerRate, carrierRate)
	if err != nil {
		return err
	}
	c.rates = rates
	return nil
}

func (c *UpdateLoadRatesCommand) setTotalMiles(miles *int) error {
	if miles == nil {
		return nil
	}
	if *miles < 0 {
		return errs.NewValueIsOutOfRangeError("total_miles", *miles, 0, math.MaxInt32)
	}
	v := *miles
	c.totalMiles = &v
	return nil
}
