package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"
)

var ErrIssueInvoiceCommandIsNotConstructed = errors.New(
	"IssueInvoiceCommand must be created via NewIssueInvoiceCommand constructor",
)

// IssueInvoiceCommand bills the customer of a delivered load.
type IssueInvoiceCommand struct { //nolint:recvcheck //using for validation
	invoiceID   kernel.UUID
	companyID   kernel.UUID
	loadID      kernel.UUID
	invoiceDate kernel.Date

	guard guard.ConstructorGuard
}

func NewIssueInvoiceCommand(invoiceID, companyID, loadID kernel.UUID, invoiceDate kernel.Date) (IssueInvoiceCommand, error) {
	cmd := IssueInvoiceCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setID("invoice_id", &cmd.invoiceID, invoiceID),
		cmd.setID("company_id", &cmd.companyID, companyID),
		cmd.setID("load_id", &cmd.loadID, loadID),
		cmd.setInvoiceDate(invoiceDate),
	); err != nil {
		return IssueInvoiceCommand{}, err
	}

	return cmd, nil
}

func (c IssueInvoiceCommand) Validate() error {
	return c.guard.Validate(ErrIssueInvoiceCommandIsNotConstructed)
}

func (c IssueInvoiceCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c IssueInvoiceCommand) CompanyID() kernel.UUID { return c.companyID }
func (c IssueInvoiceCommand) LoadID() kernel.UUID { return c.loadID }
func (c IssueInvoiceCommand) InvoiceDate() kernel.Date { return c.invoiceDate }

func (c *IssueInvoiceCommand) setID(param string, dst *kernel.UUID, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(param, err)
	}
	*dst = id
	return nil
}

func (c *IssueInvoiceCommand) setInvoiceDate(d kernel.Date) error {
	if err := d.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("invoice_date", err)
	}
	c.invoiceDate = d
	return nil
}
