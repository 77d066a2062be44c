package queries

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"
)

var ErrGetInvoiceQueryIsNotConstructed = errors.New("GetInvoiceQuery must be created via NewGetInvoiceQuery constructor")

type GetInvoiceQuery struct { //nolint:recvcheck //using for validation
	byID
}

func NewGetInvoiceQuery(companyID, invoiceID kernel.UUID) (GetInvoiceQuery, error) {
	q, err := newByID(companyID, invoiceID, "invoice_id")
	if err != nil {
		return GetInvoiceQuery{}, err
	}
	return GetInvoiceQuery{byID: q}, nil
}

func (q GetInvoiceQuery) Validate() error {
	return q.guard.Validate(ErrGetInvoiceQueryIsNotConstructed)
}

func (q GetInvoiceQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q GetInvoiceQuery) InvoiceID() kernel.UUID {
	return q.id
}

type GetInvoiceQueryHandler struct {
	reader ports.InvoiceReader
}

func NewGetInvoiceQueryHandler(reader ports.InvoiceReader) GetInvoiceQueryHandler {
	return GetInvoiceQueryHandler{reader: reader}
}

// Handle returns errs.ErrObjectNotFound when the invoice is missing or owned by another company.
func (h GetInvoiceQueryHandler) Handle(ctx context.Context, query GetInvoiceQuery) (InvoiceResponse, error) {
	if err := query.Validate(); err != nil {
		return InvoiceResponse{}, err
	}

	aggregate, err := h.reader.Get(ctx, query.CompanyID(), query.InvoiceID())
	if err != nil {
		return InvoiceResponse{}, err
	}
	return newInvoiceResponse(aggregate), nil
}
