package queries

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

var ErrGetCustomerQueryIsNotConstructed = errors.New("GetCustomerQuery must be created via NewGetCustomerQuery constructor")

type GetCustomerQuery struct { //nolint:recvcheck //using for validation
	byID
}

func NewGetCustomerQuery(companyID, customerID kernel.UUID) (GetCustomerQuery, error) {
	q, err := newByID(companyID, customerID, "customer_id")
	if err != nil {
		return GetCustomerQuery{}, err
	}
	return GetCustomerQuery{byID: q}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q GetCustomerQuery) CustomerID() kernel.UUID {
	return q.id
}

type GetCustomerQueryHandler struct {
	reader ports.CustomerReader
}

func NewGetCustomerQueryHandler(reader ports.CustomerReader) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{reader: reader}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.CompanyID(), query.CustomerID())
	if err != nil {
		return CustomerResponse{}, err
	}
	return newCustomerResponse(aggregate), nil
}
