// Package queries contains the read operations of the dispatch engine.
// Handlers read through tenant scoped repositories outside any transaction
// and return flat read models.
package queries

import (
	"time"

	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
)

type LoadResponse struct {
	ID              kernel.UUID
	CompanyID       kernel.UUID
	LoadNumber      string
	ReferenceNumber string
	BOLNumber       string
	LoadType        load.Type
	Mode            load.Mode
	Status          load.Status
	CustomerID      *kernel.UUID
	CarrierID       *kernel.UUID
	DriverID        *kernel.UUID
	TruckID         *kernel.UUID
	TrailerID       *kernel.UUID
	Cargo           load.Cargo
	PickupDate      kernel.Date
	DeliveryDate    kernel.Date
	CustomerRate    decimal.NullDecimal
	CarrierRate     decimal.NullDecimal
	TotalRevenue    decimal.NullDecimal
	TotalCost       decimal.NullDecimal
	ProfitMargin    decimal.NullDecimal
	TotalMiles      *int
	Version         int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func newLoadResponse(l *load.Load) LoadResponse {
	r := LoadResponse{
		ID:              l.ID(),
		CompanyID:       l.CompanyID(),
		LoadNumber:      l.LoadNumber(),
		ReferenceNumber: l.ReferenceNumber(),
		BOLNumber:       l.BOLNumber(),
		LoadType:        l.Type(),
		Mode:            l.Mode(),
		Status:          l.Status(),
		CustomerID:      l.CustomerID(),
		CarrierID:       l.CarrierID(),
		Cargo:           l.Cargo(),
		PickupDate:      l.PickupDate(),
		DeliveryDate:    l.DeliveryDate(),
		CustomerRate:    l.Rates().CustomerRate(),
		CarrierRate:     l.Rates().CarrierRate(),
		TotalRevenue:    l.Rates().TotalRevenue(),
		TotalCost:       l.Rates().TotalCost(),
		ProfitMargin:    l.Rates().ProfitMargin(),
		TotalMiles:      l.TotalMiles(),
		Version:         l.Version(),
		CreatedAt:       l.CreatedAt(),
		UpdatedAt:       l.UpdatedAt(),
	}

	if a := l.Assignment(); a != nil {
		driverID, truckID := a.DriverID(), a.TruckID()
		r.DriverID = &driverID
		r.TruckID = &truckID
		r.TrailerID = a.TrailerID()
	}
	return r
}

func newLoadResponses(loads []*load.Load) []LoadResponse {
	out := make([]LoadResponse, 0, len(loads))
	for _, l := range loads {
		out = append(out, newLoadResponse(l))
	}
	return out
}

type DriverResponse struct {
	ID                 kernel.UUID
	CompanyID          kernel.UUID
	Profile            driver.Profile
	EmploymentStatus   driver.EmploymentStatus
	DutyStatus         driver.DutyStatus
	Performance        driver.Performance
	Location           *kernel.GeoPoint
	LastLocationUpdate *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func newDriverResponse(d *driver.Driver) DriverResponse {
	return DriverResponse{
		ID:                 d.ID(),
		CompanyID:          d.CompanyID(),
		Profile:            d.Profile(),
		EmploymentStatus:   d.EmploymentStatus(),
		DutyStatus:         d.DutyStatus(),
		Performance:        d.Performance(),
		Location:           d.Location(),
		LastLocationUpdate: d.LastLocationUpdate(),
		CreatedAt:          d.CreatedAt(),
		UpdatedAt:          d.UpdatedAt(),
	}
}

type CustomerResponse struct {
	ID           kernel.UUID
	CompanyID    kernel.UUID
	Name         string
	Type         customer.Type
	Email        string
	Phone        string
	PaymentTerms int
	CreditLimit  decimal.NullDecimal
	Status       customer.Status
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func newCustomerResponse(c *customer.Customer) CustomerResponse {
	return CustomerResponse{
		ID:           c.ID(),
		CompanyID:    c.CompanyID(),
		Name:         c.Name(),
		Type:         c.Type(),
		Email:        c.Email(),
		Phone:        c.Phone(),
		PaymentTerms: c.PaymentTerms(),
		CreditLimit:  c.CreditLimit(),
		Status:       c.Status(),
		CreatedAt:    c.CreatedAt(),
		UpdatedAt:    c.UpdatedAt(),
	}
}

type EquipmentResponse struct {
	ID         kernel.UUID
	CompanyID  kernel.UUID
	Kind       equipment.Kind
	UnitNumber string
	Status     equipment.Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func newEquipmentResponse(e *equipment.Equipment) EquipmentResponse {
	return EquipmentResponse{
		ID:         e.ID(),
		CompanyID:  e.CompanyID(),
		Kind:       e.Kind(),
		UnitNumber: e.UnitNumber(),
		Status:     e.Status(),
		CreatedAt:  e.CreatedAt(),
		UpdatedAt:  e.UpdatedAt(),
	}
}

type InvoiceResponse struct {
	ID            kernel.UUID
	CompanyID     kernel.UUID
	InvoiceNumber string
	Type          invoice.Type
	CustomerID    *kernel.UUID
	LoadID        *kernel.UUID
	TotalAmount   decimal.Decimal
	AmountPaid    decimal.Decimal
	BalanceDue    decimal.Decimal
	InvoiceDate   kernel.Date
	DueDate       kernel.Date
	Status        invoice.Status
	CreatedAt     time.Time
}

func newInvoiceResponse(i *invoice.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            i.ID(),
		CompanyID:     i.CompanyID(),
		InvoiceNumber: i.InvoiceNumber(),
		Type:          i.Type(),
		CustomerID:    i.CustomerID(),
		LoadID:        i.LoadID(),
		TotalAmount:   i.TotalAmount(),
		AmountPaid:    i.AmountPaid(),
		BalanceDue:    i.BalanceDue(),
		InvoiceDate:   i.InvoiceDate(),
		DueDate:       i.DueDate(),
		Status:        i.Status(),
		CreatedAt:     i.CreatedAt(),
	}
}
