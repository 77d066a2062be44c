package queries

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

var ErrGetDriverQueryIsNotConstructed = errors.New("GetDriverQuery must be created via NewGetDriverQuery constructor")

type GetDriverQuery struct { //nolint:recvcheck //using for validation
	byID
}

func NewGetDriverQuery(companyID, driverID kernel.UUID) (GetDriverQuery, error) {
	q, err := newByID(companyID, driverID, "driver_id")
	if err != nil {
		return GetDriverQuery{}, err
	}
	return GetDriverQuery{byID: q}, nil
}

func (q GetDriverQuery) Validate() error {
	return q.guard.Validate(ErrGetDriverQueryIsNotConstructed)
}

func (q GetDriverQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q GetDriverQuery) DriverID() kernel.UUID {
	return q.id
}

// GetDriverQueryHandler returns the profile, statuses and last known position.
type GetDriverQueryHandler struct {
	reader ports.DriverReader
}

func NewGetDriverQueryHandler(reader ports.DriverReader) GetDriverQueryHandler {
	return GetDriverQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound when the driver is missing or owned by another company.
func (h GetDriverQueryHandler) Handle(ctx context.Context, query GetDriverQuery) (DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return DriverResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.CompanyID(), query.DriverID())
	if err != nil {
		return DriverResponse{}, err
	}
	return newDriverResponse(aggregate), nil
}
