package http

import (
	"net/http"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateCustomer handles POST /api/companies/{company_id}/customers.
func (s *Server) CreateCustomer(c echo.Context) error {
	companyID, err := pathUUID(c, "company_id")
	if err != nil {
		return err
	}
	var body NewCustomer
	if err = bind(c, &body); err != nil {
		return err
	}

	customerID := kernel.NewUUID()
	cmd, err := commands.NewCreateCustomerCommand(customerID, companyID, commands.CustomerDetails{
		Name:         body.Name,
		Type:         body.CustomerType,
		Email:        body.Email,
		Phone:        body.Phone,
		PaymentTerms: body.PaymentTerms,
		CreditLimit:  body.CreditLimit,
	})
	if err != nil {
		return err
	}
	if err = s.commands.CreateCustomer.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondCustomer(c, http.StatusCreated, companyID, customerID)
}

// GetCustomer handles GET /api/customers/{customer_id}.
func (s *Server) GetCustomer(c echo.Context) error {
	companyID, err := tenantOf(c)
	if err != nil {
		return err
	}
	customerID, err := pathUUID(c, "customer_id")
	if err != nil {
		return err
	}
	return s.respondCustomer(c, http.StatusOK, companyID, customerID)
}

func (s *Server) respondCustomer(c echo.Context, status int, companyID, customerID kernel.UUID) error {
	query, err := queries.NewGetCustomerQuery(companyID, customerID)
	if err != nil {
		return err
	}
	customer, err := s.queries.GetCustomer.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toCustomer(customer))
}

// CreateEquipment handles POST /api/companies/{company_id}/equipment.
func (s *Server) CreateEquipment(c echo.Context) error {
	companyID, err := pathUUID(c, "company_id")
	if err != nil {
		return err
	}
	var body NewEquipment
	if err = bind(c, &body); err != nil {
		return err
	}

	equipmentID := kernel.NewUUID()
	cmd, err := commands.NewCreateEquipmentCommand(equipmentID, companyID, body.EquipmentType, body.UnitNumber)
	if err != nil {
		return err
	}
	if err = s.commands.CreateEquipment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondEquipment(c, http.StatusCreated, companyID, equipmentID)
}

// GetEquipment handles GET /api/equipment/{equipment_id}.
func (s *Server) GetEquipment(c echo.Context) error {
	companyID, err := tenantOf(c)
	if err != nil {
		return err
	}
	equipmentID, err := pathUUID(c, "equipment_id")
	if err != nil {
		return err
	}
	return s.respondEquipment(c, http.StatusOK, companyID, equipmentID)
}

func (s *Server) respondEquipment(c echo.Context, status int, companyID, equipmentID kernel.UUID) error {
	query, err := queries.NewGetEquipmentQuery(companyID, equipmentID)
	if err != nil {
		return err
	}
	unit, err := s.queries.GetEquipment.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toEquipment(unit))
}

// IssueInvoice handles POST /api/loads/{load_id}/invoices. The invoice date
// defaults to today.
func (s *Server) IssueInvoice(c echo.Context) error {
	companyID, loadID, err := s.loadScope(c)
	if err != nil {
		return err
	}
	var body NewInvoice
	if err = bind(c, &body); err != nil {
		return err
	}
	invoiceDate := kernel.DateFromTime(s.now().UTC())
	if body.InvoiceDate != nil {
		invoiceDate = domainDate(body.InvoiceDate)
	}

	invoiceID := kernel.NewUUID()
	cmd, err := commands.NewIssueInvoiceCommand(invoiceID, companyID, loadID, invoiceDate)
	if err != nil {
		return err
	}
	if err = s.commands.IssueInvoice.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondInvoice(c, http.StatusCreated, companyID, invoiceID)
}

// GetInvoice handles GET /api/invoices/{invoice_id}.
func (s *Server) GetInvoice(c echo.Context) error {
	companyID, err := tenantOf(c)
	if err != nil {
		return err
	}
	invoiceID, err := pathUUID(c, "invoice_id")
	if err != nil {
		return err
	}
	return s.respondInvoice(c, http.StatusOK, companyID, invoiceID)
}

// RecordPayment handles POST /api/invoices/{invoice_id}/payments.
func (s *Server) RecordPayment(c echo.Context) error {
	companyID, err := tenantOf(c)
	if err != nil {
		return err
	}
	invoiceID, err := pathUUID(c, "invoice_id")
	if err != nil {
		return err
	}
	var body Payment
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewRecordInvoicePaymentCommand(companyID, invoiceID, body.Amount)
	if err != nil {
		return err
	}
	if err = s.commands.RecordPayment.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondInvoice(c, http.StatusOK, companyID, invoiceID)
}

func (s *Server) respondInvoice(c echo.Context, status int, companyID, invoiceID kernel.UUID) error {
	query, err := queries.NewGetInvoiceQuery(companyID, invoiceID)
	if err != nil {
		return err
	}
	inv, err := s.queries.GetInvoice.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toInvoice(inv))
}
