package load

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrAssignmentIsNotConstructed = errs.NewValueIsRequiredError(
	"assignment must be created via NewAssignment constructor")

// Assignment binds a driver and a truck, plus an optional trailer, to a load.
type Assignment struct {
	driverID  kernel.UUID
	truckID   kernel.UUID
	trailerID *kernel.UUID
	guard     guard.ConstructorGuard
}

func NewAssignment(driverID, truckID kernel.UUID, trailerID *kernel.UUID) (Assignment, error) {
	a := Assignment{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		a.setDriverID(driverID),
		a.setTruckID(truckID),
		a.setTrailerID(trailerID),
	); err != nil {
		return Assignment{}, err
	}

	return a, nil
}

func (a Assignment) Validate() error {
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a Assignment) DriverID() kernel.UUID {
	return a.driverID
}

func (a Assignment) TruckID() kernel.UUID {
	return a.truckID
}

// TrailerID returns nil when the load moves without a trailer.
func (a Assignment) TrailerID() *kernel.UUID {
	if a.trailerID == nil {
		return nil
	}
	id := *a.trailerID
	return &id
}

func (a Assignment) IsEqual(other Assignment) bool {
	if !a.driverID.IsEqual(other.driverID) || !a.truckID.IsEqual(other.truckID) {
		return false
	}
	if a.trailerID == nil || other.trailerID == nil {
		return a.trailerID == nil && other.trailerID == nil
	}
	return a.trailerID.IsEqual(*other.trailerID)
}

func (a *Assignment) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("driver_id", err)
	}
	a.driverID = id
	return nil
}

func (a *Assignment) setTruckID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("truck_id", err)
	}
	a.truckID = id
	return nil
}

func (a *Assignment) setTrailerID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("trailer_id", err)
	}
	trailer := *id
	a.trailerID = &trailer
	return nil
}
