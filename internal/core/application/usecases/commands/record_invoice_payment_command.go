package commands

import (
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRecordInvoicePaymentCommandIsNotConstructed = errors.New(
	"RecordInvoicePaymentCommand must be created via NewRecordInvoicePaymentCommand constructor",
)

type RecordInvoicePaymentCommand struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	invoiceID kernel.UUID
	amount    decimal.Decimal

	guard guard.ConstructorGuard
}

// NewRecordInvoicePaymentCommand only checks the sign of amount; the
// balance check needs the invoice.
func NewRecordInvoicePaymentCommand(companyID, invoiceID kernel.UUID, amount decimal.Decimal) (RecordInvoicePaymentCommand, error) {
	cmd := RecordInvoicePaymentCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setCompanyID(companyID),
		cmd.setInvoiceID(invoiceID),
		cmd.setAmount(amount),
	); err != nil {
		return RecordInvoicePaymentCommand{}, err
	}

	return cmd, nil
}

func (c RecordInvoicePaymentCommand) Validate() error {
	return c.guard.Validate(ErrRecordInvoicePaymentCommandIsNotConstructed)
}

func (c RecordInvoicePaymentCommand) CompanyID() kernel.UUID { return c.companyID }
func (c RecordInvoicePaymentCommand) InvoiceID() kernel.UUID { return c.invoiceID }
func (c RecordInvoicePaymentCommand) Amount() decimal.Decimal { return c.amount }

func (c *RecordInvoicePaymentCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *RecordInvoicePaymentCommand) setInvoiceID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("invoice_id", err)
	}
	c.invoiceID = id
	return nil
}

func (c *RecordInvoicePaymentCommand) setAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsOutOfRangeError("amount", amount.String(), "0.01", nil)
	}
	c.amount = amount
	return nil
}
