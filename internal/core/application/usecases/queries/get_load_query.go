package queries

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

var ErrGetLoadQueryIsNotConstructed = errors.New("GetLoadQuery must be created via NewGetLoadQuery constructor")

// GetLoadQuery fetches one load of a company.
//
// Example:
//
//	query, err := NewGetLoadQuery(companyID, loadID)
//	if err != nil {
//	    return err // ValidationError
//	}
//	l, err := handler.Handle(ctx, query)
type GetLoadQuery struct { //nolint:recvcheck //using for validation
	byID
}

func NewGetLoadQuery(companyID, loadID kernel.UUID) (GetLoadQuery, error) {
	q, err := newByID(companyID, loadID, "load_id")
	if err != nil {
		return GetLoadQuery{}, err
	}
	return GetLoadQuery{byID: q}, nil
}

func (q GetLoadQuery) Validate() error {
	return q.guard.Validate(ErrGetLoadQueryIsNotConstructed)
}

func (q GetLoadQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q GetLoadQuery) LoadID() kernel.UUID {
	return q.id
}

type GetLoadQueryHandler struct {
	reader ports.LoadReader
}

func NewGetLoadQueryHandler(reader ports.LoadReader) GetLoadQueryHandler {
	return GetLoadQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound when the load is missing or owned by another company.
func (h GetLoadQueryHandler) Handle(ctx context.Context, query GetLoadQuery) (LoadResponse, error) {
	if err := query.Validate(); err != nil {
		return LoadResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.CompanyID(), query.LoadID())
	if err != nil {
		return LoadResponse{}, err
	}
	return newLoadResponse(aggregate), nil
}
