package services

import (
	"fmt"

	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/load"
	"tms/internal/pkg/errs"
)

// EligibilityChecker decides whether a driver and equipment may be bound to a load.
//
// Rules, in the order they are reported:
//   - every resource belongs to the load's company (ValidationError)
//   - the truck is a truck and the trailer, when given, is a trailer (ValidationError)
//     and each unit is in service (BusinessLogicError)
//   - the driver is employed and in a dispatchable duty status (BusinessLogicError)
//
// Example:
//
//	checker := NewEligibilityChecker()
//	if err := checker.Check(l, d, truck, nil); err != nil {
//	    return err
//	}
type EligibilityChecker struct{}

func NewEligibilityChecker() EligibilityChecker {
	return EligibilityChecker{}
}

// Check returns nil when the resources can be assigned to l. trailer may be nil.
func (c EligibilityChecker) Check(
	l *load.Load,
	d *driver.Driver,
	truck *equipment.Equipment,
	trailer *equipment.Equipment,
) error {
	if err := l.Validate(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if err := truck.Validate(); err != nil {
		return err
	}
	if trailer != nil {
		if err := trailer.Validate(); err != nil {
			return err
		}
	}

	if err := c.checkOwnership(l, d, truck, trailer); err != nil {
		return err
	}

	if err := truck.CheckDispatchable(equipment.Truck); err != nil {
		return err
	}
	if trailer != nil {
		if err := trailer.CheckDispatchable(equipment.Trailer); err != nil {
			return err
		}
	}

	return d.CheckAssignable()
}

func (c EligibilityChecker) checkOwnership(
	l *load.Load,
	d *driver.Driver,
	truck *equipment.Equipment,
	trailer *equipment.Equipment,
) error {
	companyID := l.CompanyID()

	if !d.BelongsTo(companyID) {
		return foreignResource("driver_id", d.ID().String())
	}
	if !truck.BelongsTo(companyID) {
		return foreignResource("truck_id", truck.ID().String())
	}
	if trailer != nil && !trailer.BelongsTo(companyID) {
		return foreignResource("trailer_id", trailer.ID().String())
	}
	return nil
}

func foreignResource(param, id string) error {
	return errs.NewValueIsInvalidErrorWithCause(param, fmt.Errorf("%s belongs to another company", id))
}
