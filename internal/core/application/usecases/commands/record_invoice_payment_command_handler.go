package commands

import (
	"context"

	"tms/internal/core/ports"
)

type RecordInvoicePaymentCommandHandler struct {
	uowFactory BillingUoWFactory
	metrics    ports.DispatchMetrics
}

func NewRecordInvoicePaymentCommandHandler(uowFactory BillingUoWFactory, metrics ports.DispatchMetrics) RecordInvoicePaymentCommandHandler {
	return RecordInvoicePaymentCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

func (h RecordInvoicePaymentCommandHandler) Handle(ctx context.Context, cmd RecordInvoicePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	invoiceRepo := uow.InvoiceRepository()
	inv, err := invoiceRepo.Get(ctx, cmd.CompanyID(), cmd.InvoiceID())
	if err != nil {
		return err
	}

	if err = inv.RecordPayment(cmd.Amount()); err != nil {
		return err
	}

	if err = invoiceRepo.Update(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.PaymentRecorded()
	return nil
}
