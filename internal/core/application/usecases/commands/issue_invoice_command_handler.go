package commands

import (
	"context"
	"errors"
	"fmt"

	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
)

const invoiceNumberPrefix = "INV-"

// IssueInvoiceCommandHandler creates the single customer invoice of a load.
type IssueInvoiceCommandHandler struct {
	uowFactory BillingUoWFactory
	metrics    ports.DispatchMetrics
}

func NewIssueInvoiceCommandHandler(uowFactory BillingUoWFactory, metrics ports.DispatchMetrics) IssueInvoiceCommandHandler {
	return IssueInvoiceCommandHandler{
		uowFactory: uowFactory,
		metrics:    metrics,
	}
}

// Handle rejects loads that are not delivered or completed, loads without a
// customer rate and loads that were already invoiced.
func (h IssueInvoiceCommandHandler) Handle(ctx context.Context, cmd IssueInvoiceCommand) error {
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

	l, err := uow.LoadRepository().Get(ctx, cmd.CompanyID(), cmd.LoadID())
	if err != nil {
		return err
	}

	if !l.Status().IsBillable() {
		return errs.NewBusinessRuleViolatedErrorWithCause(
			"only delivered or completed loads can be invoiced",
			fmt.Errorf("load %s is %s", l.ID(), l.Status()),
		)
	}
	revenue := l.Rates().TotalRevenue()
	if !revenue.Valid {
		return errs.NewBusinessRuleViolatedError("load has no customer rate")
	}

	invoiceRepo := uow.InvoiceRepository()
	existing, err := invoiceRepo.GetByLoad(ctx, cmd.CompanyID(), l.ID())
	switch {
	case err == nil:
		return errs.NewBusinessRuleViolatedErrorWithCause(
			"load is already invoiced",
			fmt.Errorf("invoice %s", existing.InvoiceNumber()),
		)
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	customerID := l.CustomerID()
	if customerID == nil {
		return errs.NewBusinessRuleViolatedError("load has no customer")
	}
	c, err := uow.CustomerRepository().Get(ctx, cmd.CompanyID(), *customerID)
	if err != nil {
		return err
	}

	loadID := l.ID()
	inv, err := invoice.NewInvoice(
		cmd.InvoiceID(),
		cmd.CompanyID(),
		invoiceNumberPrefix+l.LoadNumber(),
		customerID,
		&loadID,
		revenue.Decimal,
		cmd.InvoiceDate(),
		c.DueDate(cmd.InvoiceDate()),
	)
	if err != nil {
		return err
	}

	if err = invoiceRepo.Add(ctx, inv); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.metrics.InvoiceIssued()
	return nil
}
