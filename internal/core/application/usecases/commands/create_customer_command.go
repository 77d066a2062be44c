package commands

import (
	"errors"

	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

// CustomerDetails is the caller supplied part of a new customer. Zero
// PaymentTerms means the default net 30.
type CustomerDetails struct {
	Name         string
	Type         string
	Email        string
	Phone        string
	PaymentTerms int
	CreditLimit  decimal.NullDecimal
}

type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID   kernel.UUID
	companyID    kernel.UUID
	customerType customer.Type
	details      CustomerDetails

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(customerID, companyID kernel.UUID, details CustomerDetails) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCompanyID(companyID),
		cmd.setType(details.Type),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) CustomerID() kernel.UUID { return c.customerID }
func (c CreateCustomerCommand) CompanyID() kernel.UUID { return c.companyID }
func (c CreateCustomerCommand) Type() customer.Type { return c.customerType }
func (c CreateCustomerCommand) Details() CustomerDetails { return c.details }

func (c *CreateCustomerCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customer_id", err)
	}
	c.customerID = id
	return nil
}

func (c *CreateCustomerCommand) setCompanyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("company_id", err)
	}
	c.companyID = id
	return nil
}

func (c *CreateCustomerCommand) setType(s string) error {
	t := customer.Type(s)
	if err := t.Validate(); err != nil {
		return err
	}
	c.customerType = t
	return nil
}
