package queries

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

var ErrListAvailableDriversQueryIsNotConstructed = errors.New(
	"ListAvailableDriversQuery must be created via NewListAvailableDriversQuery constructor",
)

type ListAvailableDriversQuery struct { //nolint:recvcheck //using for validation
	byID
}

func NewListAvailableDriversQuery(companyID kernel.UUID) (ListAvailableDriversQuery, error) {
	q, err := newCompanyScope(companyID)
	if err != nil {
		return ListAvailableDriversQuery{}, err
	}
	return ListAvailableDriversQuery{byID: q}, nil
}

func (q ListAvailableDriversQuery) Validate() error {
	return q.guard.Validate(ErrListAvailableDriversQueryIsNotConstructed)
}

func (q ListAvailableDriversQuery) CompanyID() kernel.UUID {
	return q.companyID
}

// ListAvailableDriversQueryHandler lists active drivers that are available
// or off duty, ordered by first name, then last name.
type ListAvailableDriversQueryHandler struct {
	reader ports.DriverReader
}

func NewListAvailableDriversQueryHandler(reader ports.DriverReader) ListAvailableDriversQueryHandler {
	return ListAvailableDriversQueryHandler{reader: reader}
}

func (h ListAvailableDriversQueryHandler) Handle(
	ctx context.Context,
	query ListAvailableDriversQuery,
) ([]DriverResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	drivers, err := h.reader.ListAvailable(ctx, query.CompanyID())
	if err != nil {
		return nil, err
	}

	out := make([]DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		out = append(out, newDriverResponse(d))
	}
	return out, nil
}
