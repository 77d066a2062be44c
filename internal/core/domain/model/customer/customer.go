// Package customer implements the Customer aggregate: the shipper, broker or
// consignee a load is billed to.
package customer

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

const DefaultPaymentTermsDays = 30

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

type Type string

const (
	Shipper   Type = "shipper"
	Broker    Type = "broker"
	Consignee Type = "consignee"
)

func (t Type) Validate() error {
	switch t {
	case Shipper, Broker, Consignee:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("customer_type", fmt.Errorf("%q is not a known customer type", string(t)))
	}
}

type Status string

const (
	Active   Status = "active"
	Inactive Status = "inactive"
)

func (s Status) Validate() error {
	switch s {
	case Active, Inactive:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known customer status", string(s)))
	}
}

type Customer struct {
	id        kernel.UUID
	companyID kernel.UUID

	name         string
	customerType Type
	email        string
	phone        string
	paymentTerms int
	creditLimit  decimal.NullDecimal
	status       Status

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCustomer creates an active customer. Zero paymentTerms means the default net 30.
func NewCustomer(
	id, companyID kernel.UUID,
	name string,
	customerType Type,
	email, phone string,
	paymentTerms int,
	creditLimit decimal.NullDecimal,
) (*Customer, error) {
	now := time.Now().UTC()
	c := &Customer{
		email:     strings.TrimSpace(email),
		phone:     strings.TrimSpace(phone),
		status:    Active,
		createdAt: now,
		updatedAt: now,
		guard:     guard.NewConstructorGuard(),
	}
	if paymentTerms == 0 {
		paymentTerms = DefaultPaymentTermsDays
	}

	if err := errors.Join(
		c.setID(id),
		c.setCompanyID(companyID),
		c.setName(name),
		c.setType(customerType),
		c.setPaymentTerms(paymentTerms),
		c.setCreditLimit(creditLimit),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rehydrates a persisted customer.
func RestoreCustomer(
	id, companyID kernel.UUID,
	name string,
	customerType Type,
	email, phone string,
	paymentTerms int,
	creditLimit decimal.NullDecimal,
	status Status,
	createdAt, updatedAt time.Time,
) (*Customer, error) {
	c := &Customer{
		email:     email,
		phone:     phone,
		createdAt: createdAt,
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCompanyID(companyID),
		c.setName(name),
		c.setType(customerType),
		c.setPaymentTerms(paymentTerms),
		c.setCreditLimit(creditLimit),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	c.status = status

	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.UUID { return c.id }
func (c *Customer) CompanyID() kernel.UUID { return c.companyID }
func (c *Customer) Name() string { return c.name }
func (c *Customer) Type() Type { return c.customerType }
func (c *Customer) Email() string { return c.email }
func (c *Customer) Phone() string { return c.phone }
func (c *Customer) PaymentTerms() int { return c.paymentTerms }
func (c *Customer) CreditLimit() decimal.NullDecimal { return c.creditLimit }
func (c *Customer) Status() Status { return c.status }
func (c *Customer) CreatedAt() time.Time { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time { return c.updatedAt }

// DueDate is the day an invoice issued on invoiceDate must be paid.
func (c *Customer) DueDate(invoiceDate kernel.Date) kernel.Date {
	return invoiceDate.AddDays(c.paymentTerms)
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	c.name = name
	return nil
}

func (c *Customer) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.customerType = t
	return nil
}

func (c *Customer) setPaymentTerms(days int) error {
	if days < 0 || days > 365 {
		return errs.NewValueIsOutOfRangeError("payment_terms", days, 0, 365)
	}
	c.paymentTerms = days
	return nil
}

func (c *Customer) setCreditLimit(limit decimal.NullDecimal) error {
	if limit.Valid && limit.Decimal.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("credit_limit", fmt.Errorf("%s is negative", limit.Decimal))
	}
	c.creditLimit = limit
	return nil
}
