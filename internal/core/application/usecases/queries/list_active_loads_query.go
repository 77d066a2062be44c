package queries

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

var ErrListActiveLoadsQueryIsNotConstructed = errors.New(
	"ListActiveLoadsQuery must be created via NewListActiveLoadsQuery constructor",
)

// ListActiveLoadsQuery lists pending, dispatched and in transit loads.
type ListActiveLoadsQuery struct { //nolint:recvcheck //using for validation
	byID
}

func NewListActiveLoadsQuery(companyID kernel.UUID) (ListActiveLoadsQuery, error) {
	q, err := newCompanyScope(companyID)
	if err != nil {
		return ListActiveLoadsQuery{}, err
	}
	return ListActiveLoadsQuery{byID: q}, nil
}

func (q ListActiveLoadsQuery) Validate() error {
	return q.guard.Validate(ErrListActiveLoadsQueryIsNotConstructed)
}

func (q ListActiveLoadsQuery) CompanyID() kernel.UUID {
	return q.companyID
}

type ListActiveLoadsQueryHandler struct {
	reader ports.LoadReader
}

func NewListActiveLoadsQueryHandler(reader ports.LoadReader) ListActiveLoadsQueryHandler {
	return ListActiveLoadsQueryHandler{reader: reader}
}

// Handle returns the loads ordered by pickup date, then load number. An
// empty company yields an empty, non-nil slice.
func (h ListActiveLoadsQueryHandler) Handle(ctx context.Context, query ListActiveLoadsQuery) ([]LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	loads, err := h.reader.ListActive(ctx, query.CompanyID())
	if err != nil {
		return nil, err
	}
	return newLoadResponses(loads), nil
}
