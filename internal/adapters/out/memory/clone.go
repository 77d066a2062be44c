package memory

import (
	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/load"
)

func cloneLoad(l *load.Load) (*load.Load, error) {
	return load.RestoreLoad(l.Snapshot())
}

func cloneDriver(d *driver.Driver) (*driver.Driver, error) {
	return driver.RestoreDriver(d.Snapshot())
}

func cloneCustomer(c *customer.Customer) (*customer.Customer, error) {
	return customer.RestoreCustomer(c.ID(), c.CompanyID(), c.Name(), c.Type(), c.Email(), c.Phone(),
		c.PaymentTerms(), c.CreditLimit(), c.Status(), c.CreatedAt(), c.UpdatedAt())
}

func cloneEquipment(e *equipment.Equipment) (*equipment.Equipment, error) {
	return equipment.RestoreEquipment(e.ID(), e.CompanyID(), e.Kind(), e.UnitNumber(), e.Status(),
		e.CreatedAt(), e.UpdatedAt())
}

func cloneInvoice(i *invoice.Invoice) (*invoice.Invoice, error) {
	return invoice.RestoreInvoice(i.ID(), i.CompanyID(), i.InvoiceNumber(), i.Type(), i.CustomerID(), i.LoadID(),
		i.TotalAmount(), i.AmountPaid(), i.InvoiceDate(), i.DueDate(), i.CreatedAt())
}
