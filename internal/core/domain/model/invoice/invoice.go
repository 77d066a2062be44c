// Package invoice implements customer invoices raised for delivered loads.
// Balance due is always derived as total amount minus amount paid.
package invoice

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrInvoiceIsNotConstructed = errors.New("Invoice must be created via NewInvoice or RestoreInvoice constructor")

type Type string

const CustomerInvoice Type = "customer"

type Status string

const (
	Open          Status = "open"
	PartiallyPaid Status = "partially_paid"
	Paid          Status = "paid"
)

func (s Status) Validate() error {
	switch s {
	case Open, PartiallyPaid, Paid:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known invoice status", string(s)))
	}
}

type Invoice struct {
	id            kernel.UUID
	companyID     kernel.UUID
	invoiceNumber string
	invoiceType   Type
	customerID    *kernel.UUID
	loadID        *kernel.UUID
	totalAmount   decimal.Decimal
	amountPaid    decimal.Decimal
	invoiceDate   kernel.Date
	dueDate       kernel.Date
	status        Status
	createdAt     time.Time

	guard guard.ConstructorGuard
}

// NewInvoice issues an open customer invoice.
func NewInvoice(
	id, companyID kernel.UUID,
	invoiceNumber string,
	customerID, loadID *kernel.UUID,
	totalAmount decimal.Decimal,
	invoiceDate, dueDate kernel.Date,
) (*Invoice, error) {
	return RestoreInvoice(id, companyID, invoiceNumber, CustomerInvoice, customerID, loadID,
		totalAmount, decimal.Zero, invoiceDate, dueDate, time.Now().UTC())
}

// RestoreInvoice rehydrates a persisted invoice; status is derived from the amounts.
func RestoreInvoice(
	id, companyID kernel.UUID,
	invoiceNumber string,
	invoiceType Type,
	customerID, loadID *kernel.UUID,
	totalAmount, amountPaid decimal.Decimal,
	invoiceDate, dueDate kernel.Date,
	createdAt time.Time,
) (*Invoice, error) {
	inv := &Invoice{
		invoiceType: invoiceType,
		customerID:  customerID,
		loadID:      loadID,
		createdAt:   createdAt,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		inv.setID(id),
		inv.setCompanyID(companyID),
		inv.setInvoiceNumber(invoiceNumber),
		inv.setAmounts(totalAmount, amountPaid),
		inv.setDates(invoiceDate, dueDate),
	); err != nil {
		return nil, err
	}

	return inv, nil
}

func (i *Invoice) Validate() error {
	if i == nil {
		return ErrInvoiceIsNotConstructed
	}
	return i.guard.Validate(ErrInvoiceIsNotConstructed)
}

func (i *Invoice) ID() kernel.UUID { return i.id }
func (i *Invoice) CompanyID() kernel.UUID { return i.companyID }
func (i *Invoice) InvoiceNumber() string { return i.invoiceNumber }
func (i *Invoice) Type() Type { return i.invoiceType }
func (i *Invoice) CustomerID() *kernel.UUID { return i.customerID }
func (i *Invoice) LoadID() *kernel.UUID { return i.loadID }
func (i *Invoice) TotalAmount() decimal.Decimal { return i.totalAmount }
func (i *Invoice) AmountPaid() decimal.Decimal { return i.amountPaid }
func (i *Invoice) InvoiceDate() kernel.Date { return i.invoiceDate }
func (i *Invoice) DueDate() kernel.Date { return i.dueDate }
func (i *Invoice) Status() Status { return i.status }
func (i *Invoice) CreatedAt() time.Time { return i.createdAt }

func (i *Invoice) BalanceDue() decimal.Decimal {
	return i.totalAmount.Sub(i.amountPaid)
}

// IsOverdue reports whether an unpaid balance remains after the due date.
func (i *Invoice) IsOverdue(today kernel.Date) bool {
	return i.status != Paid && today.After(i.dueDate)
}

// RecordPayment applies a payment against the outstanding balance.
func (i *Invoice) RecordPayment(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is not greater than 0", amount))
	}
	if i.status == Paid {
		return errs.NewBusinessRuleViolatedError("invoice is already paid")
	}
	if amount.GreaterThan(i.BalanceDue()) {
		return errs.NewBusinessRuleViolatedErrorWithCause(
			"payment exceeds balance due",
			fmt.Errorf("%s > %s", amount, i.BalanceDue()),
		)
	}

	i.amountPaid = i.amountPaid.Add(amount)
	i.status = deriveStatus(i.totalAmount, i.amountPaid)
	return nil
}

func (i *Invoice) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Invoice) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	i.companyID = id
	return nil
}

func (i *Invoice) setInvoiceNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("invoice_number")
	}
	i.invoiceNumber = number
	return nil
}

func (i *Invoice) setAmounts(total, paid decimal.Decimal) error {
	if !total.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("total_amount", fmt.Errorf("%s is not greater than 0", total))
	}
	if paid.IsNegative() || paid.GreaterThan(total) {
		return errs.NewValueIsOutOfRangeError("amount_paid", paid, decimal.Zero, total)
	}
	i.totalAmount = total
	i.amountPaid = paid
	i.status = deriveStatus(total, paid)
	return nil
}

func (i *Invoice) setDates(invoiceDate, dueDate kernel.Date) error {
	if _, err := kernel.NewDateRange(invoiceDate, dueDate); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("due_date", err)
	}
	i.invoiceDate = invoiceDate
	i.dueDate = dueDate
	return nil
}

func deriveStatus(total, paid decimal.Decimal) Status {
	switch {
	case paid.IsZero():
		return Open
	case paid.Equal(total):
		return Paid
	default:
		return PartiallyPaid
	}
}
