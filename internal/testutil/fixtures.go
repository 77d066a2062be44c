// Package testutil provides shared builders for domain fixtures in any
// lifecycle state.
package testutil

import (
	"testing"
	"time"

	"tms/internal/core/domain/model/customer"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/equipment"
	"tms/internal/core/domain/model/invoice"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// Date parses a YYYY-MM-DD day.
func Date(t testing.TB, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

func Window(t testing.TB, start, end string) kernel.DateRange {
	t.Helper()
	r, err := kernel.NewDateRange(Date(t, start), Date(t, end))
	require.NoError(t, err)
	return r
}

// Money returns a set decimal, Null() an unset one.
func Money(v int64) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.NewFromInt(v))
}

func Null() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

// LoadSpec describes a load to build. Zero fields take defaults: a pending
// full truckload picked up 2024-01-01 and delivered four days after pickup.
type LoadSpec struct {
	Number       string
	Pickup       string
	Delivery     string
	Status       load.Status
	CustomerID   *kernel.UUID
	Assignment   *load.Assignment
	CustomerRate decimal.NullDecimal
	CarrierRate  decimal.NullDecimal
	Miles        *int
}

// BuildLoad restores a load directly in spec.Status. Statuses that require
// resources get a random assignment unless one is given.
func BuildLoad(t testing.TB, companyID kernel.UUID, spec LoadSpec) *load.Load {
	t.Helper()
	if spec.Number == "" {
		spec.Number = "L-" + kernel.NewUUID().String()[:8]
	}
	if spec.Pickup == "" {
		spec.Pickup = "2024-01-01"
	}
	if spec.Delivery == "" {
		spec.Delivery = Date(t, spec.Pickup).AddDays(4).String()
	}
	if spec.Status == load.Unknown {
		spec.Status = load.Pending
	}
	if spec.Status.RequiresAssignment() && spec.Assignment == nil {
		a := Assignment(t, nil)
		spec.Assignment = &a
	}

	rates, err := load.NewRates(spec.CustomerRate, spec.CarrierRate)
	require.NoError(t, err)

	now := time.Now().UTC()
	l, err := load.RestoreLoad(load.Snapshot{
		ID:         kernel.NewUUID(),
		CompanyID:  companyID,
		LoadNumber: spec.Number,
		Type:       load.FullTruckload,
		CustomerID: spec.CustomerID,
		Assignment: spec.Assignment,
		Status:     spec.Status,
		Schedule:   Window(t, spec.Pickup, spec.Delivery),
		Rates:      rates,
		TotalMiles: spec.Miles,
		CreatedAt:  now,
		UpdatedAt:  now,
		Version:    1,
	})
	require.NoError(t, err)
	return l
}

// Assignment builds an assignment with fresh driver and truck ids.
func Assignment(t testing.TB, trailerID *kernel.UUID) load.Assignment {
	t.Helper()
	a, err := load.NewAssignment(kernel.NewUUID(), kernel.NewUUID(), trailerID)
	require.NoError(t, err)
	return a
}

func Profile(first, last string) driver.Profile {
	return driver.Profile{
		FirstName: first,
		LastName:  last,
		Phone:     "+1-555-0100",
		License: driver.License{
			Number: "CDL-" + first,
			State:  "TX",
			Class:  "A",
			Expiry: kernel.NewDate(2030, time.June, 30),
		},
		PayType: driver.PayPerMile,
		PayRate: decimal.RequireFromString("0.62"),
	}
}

// BuildDriver restores a driver with the given statuses.
func BuildDriver(
	t testing.TB,
	companyID kernel.UUID,
	first, last string,
	employment driver.EmploymentStatus,
	duty driver.DutyStatus,
) *driver.Driver {
	t.Helper()
	now := time.Now().UTC()
	d, err := driver.RestoreDriver(driver.Snapshot{
		ID:               kernel.NewUUID(),
		CompanyID:        companyID,
		Profile:          Profile(first, last),
		EmploymentStatus: employment,
		DutyStatus:       duty,
		CreatedAt:        now,
		UpdatedAt:        now,
	})
	require.NoError(t, err)
	return d
}

// AvailableDriver is an active driver ready for dispatch.
func AvailableDriver(t testing.TB, companyID kernel.UUID, first, last string) *driver.Driver {
	t.Helper()
	return BuildDriver(t, companyID, first, last, driver.EmploymentActive, driver.DutyAvailable)
}

func BuildEquipment(t testing.TB, companyID kernel.UUID, kind equipment.Kind, status equipment.Status) *equipment.Equipment {
	t.Helper()
	now := time.Now().UTC()
	e, err := equipment.RestoreEquipment(kernel.NewUUID(), companyID, kind,
		string(kind)+"-"+kernel.NewUUID().String()[:4], status, now, now)
	require.NoError(t, err)
	return e
}

func Truck(t testing.TB, companyID kernel.UUID) *equipment.Equipment {
	t.Helper()
	return BuildEquipment(t, companyID, equipment.Truck, equipment.InService)
}

func Trailer(t testing.TB, companyID kernel.UUID) *equipment.Equipment {
	t.Helper()
	return BuildEquipment(t, companyID, equipment.Trailer, equipment.InService)
}

// Customer builds an active shipper with the given payment terms in days.
func Customer(t testing.TB, companyID kernel.UUID, paymentTerms int) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), companyID, "Acme Foods", customer.Shipper,
		"ap@acme.test", "+1-555-0199", paymentTerms, Null())
	require.NoError(t, err)
	return c
}

// Invoice builds an open customer invoice due thirty days after day.
func Invoice(
	t testing.TB,
	companyID kernel.UUID,
	number string,
	loadID *kernel.UUID,
	amount decimal.Decimal,
	day kernel.Date,
) *invoice.Invoice {
	t.Helper()
	customerID := kernel.NewUUID()
	inv, err := invoice.NewInvoice(kernel.NewUUID(), companyID, number, &customerID, loadID, amount, day, day.AddDays(30))
	require.NoError(t, err)
	return inv
}
