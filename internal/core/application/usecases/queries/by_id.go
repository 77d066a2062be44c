package queries

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

// byID is the shared body of the single aggregate lookups.
type byID struct {
	companyID kernel.UUID
	id        kernel.UUID

	guard guard.ConstructorGuard
}

func newByID(companyID, id kernel.UUID, param string) (byID, error) {
	var err error
	if vErr := companyID.Validate(); vErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("company_id", vErr))
	}
	if vErr := id.Validate(); vErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause(param, vErr))
	}
	if err != nil {
		return byID{}, err
	}

	return byID{companyID: companyID, id: id, guard: guard.NewConstructorGuard()}, nil
}

func newCompanyScope(companyID kernel.UUID) (byID, error) {
	if err := companyID.Validate(); err != nil {
		return byID{}, errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	return byID{companyID: companyID, guard: guard.NewConstructorGuard()}, nil
}
