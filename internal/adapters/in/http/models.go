package http

import (
	"time"

	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/model/kernel"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Wire models of api/openapi.yaml.

type Error struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type Health struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}

type NewLoad struct {
	LoadNumber      string              `json:"load_number"`
	ReferenceNumber string              `json:"reference_number"`
	BOLNumber       string              `json:"bol_number"`
	LoadType        string              `json:"load_type"`
	CustomerID      *openapi_types.UUID `json:"customer_id"`
	PickupDate      *openapi_types.Date `json:"pickup_date"`
	DeliveryDate    *openapi_types.Date `json:"delivery_date"`
	EquipmentType   string              `json:"equipment_type"`
	WeightLbs       *int                `json:"weight_lbs"`
	Pieces          *int                `json:"pieces"`
	Commodity       string              `json:"commodity"`
}

type Load struct {
	ID              openapi_types.UUID  `json:"id"`
	CompanyID       openapi_types.UUID  `json:"company_id"`
	LoadNumber      string              `json:"load_number"`
	ReferenceNumber string              `json:"reference_number,omitempty"`
	BOLNumber       string              `json:"bol_number,omitempty"`
	LoadType        string              `json:"load_type"`
	Mode            string              `json:"mode"`
	Status          string              `json:"status"`
	CustomerID      *openapi_types.UUID `json:"customer_id,omitempty"`
	DriverID        *openapi_types.UUID `json:"driver_id,omitempty"`
	TruckID         *openapi_types.UUID `json:"truck_id,omitempty"`
	TrailerID       *openapi_types.UUID `json:"trailer_id,omitempty"`
	EquipmentType   string              `json:"equipment_type,omitempty"`
	WeightLbs       *int                `json:"weight_lbs,omitempty"`
	Pieces          *int                `json:"pieces,omitempty"`
	Commodity       string              `json:"commodity,omitempty"`
	PickupDate      openapi_types.Date  `json:"pickup_date"`
	DeliveryDate    openapi_types.Date  `json:"delivery_date"`
	CustomerRate    decimal.NullDecimal `json:"customer_rate"`
	CarrierRate     decimal.NullDecimal `json:"carrier_rate"`
	TotalRevenue    decimal.NullDecimal `json:"total_revenue"`
	TotalCost       decimal.NullDecimal `json:"total_cost"`
	ProfitMargin    decimal.NullDecimal `json:"profit_margin"`
	TotalMiles      *int                `json:"total_miles,omitempty"`
	Version         int                 `json:"version"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

type Assignment struct {
	DriverID  *openapi_types.UUID `json:"driver_id"`
	TruckID   *openapi_types.UUID `json:"truck_id"`
	TrailerID *openapi_types.UUID `json:"trailer_id"`
}

type Rates struct {
	CustomerRate decimal.NullDecimal `json:"customer_rate"`
	CarrierRate  decimal.NullDecimal `json:"carrier_rate"`
	TotalMiles   *int                `json:"total_miles"`
}

type NewDriver struct {
	FirstName string              `json:"first_name"`
	LastName  string              `json:"last_name"`
	Email     string              `json:"email"`
	Phone     string              `json:"phone"`
	CDLNumber string              `json:"cdl_number"`
	CDLState  string              `json:"cdl_state"`
	CDLClass  string              `json:"cdl_class"`
	CDLExpiry *openapi_types.Date `json:"cdl_expiry"`
	HireDate  *openapi_types.Date `json:"hire_date"`
	PayType   string              `json:"pay_type"`
	PayRate   decimal.Decimal     `json:"pay_rate"`
}

type Driver struct {
	ID                 openapi_types.UUID  `json:"id"`
	CompanyID          openapi_types.UUID  `json:"company_id"`
	FirstName          string              `json:"first_name"`
	LastName           string              `json:"last_name"`
	Email              string              `json:"email,omitempty"`
	Phone              string              `json:"phone"`
	CDLNumber          string              `json:"cdl_number"`
	CDLState           string              `json:"cdl_state"`
	CDLClass           string              `json:"cdl_class"`
	CDLExpiry          openapi_types.Date  `json:"cdl_expiry"`
	HireDate           *openapi_types.Date `json:"hire_date,omitempty"`
	PayType            string              `json:"pay_type"`
	PayRate            decimal.Decimal     `json:"pay_rate"`
	EmploymentStatus   string              `json:"employment_status"`
	CurrentStatus      string              `json:"current_status"`
	Latitude           *float64            `json:"latitude,omitempty"`
	Longitude          *float64            `json:"longitude,omitempty"`
	LastLocationUpdate *time.Time          `json:"last_location_update,omitempty"`
	TotalMiles         int64               `json:"total_miles"`
	TotalLoads         int                 `json:"total_loads"`
}

type LocationUpdate struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	Status    string   `json:"status"`
}

type FinancialSummary struct {
	CompanyID    openapi_types.UUID `json:"company_id"`
	StartDate    openapi_types.Date `json:"start_date"`
	EndDate      openapi_types.Date `json:"end_date"`
	TotalLoads   int                `json:"total_loads"`
	TotalRevenue decimal.Decimal    `json:"total_revenue"`
	TotalCost    decimal.Decimal    `json:"total_cost"`
	TotalProfit  decimal.Decimal    `json:"total_profit"`
	TotalMiles   int64              `json:"total_miles"`
}

type NewCustomer struct {
	Name         string              `json:"name"`
	CustomerType string              `json:"customer_type"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	PaymentTerms int                 `json:"payment_terms"`
	CreditLimit  decimal.NullDecimal `json:"credit_limit"`
}

type Customer struct {
	ID           openapi_types.UUID  `json:"id"`
	CompanyID    openapi_types.UUID  `json:"company_id"`
	Name         string              `json:"name"`
	CustomerType string              `json:"customer_type"`
	Email        string              `json:"email,omitempty"`
	Phone        string              `json:"phone,omitempty"`
	PaymentTerms int                 `json:"payment_terms"`
	CreditLimit  decimal.NullDecimal `json:"credit_limit"`
	Status       string              `json:"status"`
}

type NewEquipment struct {
	EquipmentType string `json:"equipment_type"`
	UnitNumber    string `json:"unit_number"`
}

type Equipment struct {
	ID            openapi_types.UUID `json:"id"`
	CompanyID     openapi_types.UUID `json:"company_id"`
	EquipmentType string             `json:"equipment_type"`
	UnitNumber    string             `json:"unit_number"`
	Status        string             `json:"status"`
}

type NewInvoice struct {
	InvoiceDate *openapi_types.Date `json:"invoice_date"`
}

type Payment struct {
	Amount decimal.Decimal `json:"amount"`
}

type Invoice struct {
	ID            openapi_types.UUID  `json:"id"`
	CompanyID     openapi_types.UUID  `json:"company_id"`
	InvoiceNumber string              `json:"invoice_number"`
	InvoiceType   string              `json:"invoice_type"`
	CustomerID    *openapi_types.UUID `json:"customer_id,omitempty"`
	LoadID        *openapi_types.UUID `json:"load_id,omitempty"`
	TotalAmount   decimal.Decimal     `json:"total_amount"`
	AmountPaid    decimal.Decimal     `json:"amount_paid"`
	BalanceDue    decimal.Decimal     `json:"balance_due"`
	InvoiceDate   openapi_types.Date  `json:"invoice_date"`
	DueDate       openapi_types.Date  `json:"due_date"`
	Status        string              `json:"status"`
}

func wireDate(d kernel.Date) openapi_types.Date {
	return openapi_types.Date{Time: d.Time()}
}

func wireOptionalDate(d *kernel.Date) *openapi_types.Date {
	if d == nil {
		return nil
	}
	w := wireDate(*d)
	return &w
}

func domainDate(d *openapi_types.Date) kernel.Date {
	if d == nil {
		return kernel.Date{}
	}
	return kernel.DateFromTime(d.Time)
}

func domainOptionalDate(d *openapi_types.Date) *kernel.Date {
	if d == nil {
		return nil
	}
	v := kernel.DateFromTime(d.Time)
	return &v
}

// domainUUID maps an absent identifier to the zero UUID, which command
// constructors reject as required.
func domainUUID(id *openapi_types.UUID) kernel.UUID {
	if id == nil {
		return kernel.UUID{}
	}
	u, err := kernel.UUIDFromGoogle(*id)
	if err != nil {
		return kernel.UUID{}
	}
	return u
}

func toLoad(r queries.LoadResponse) Load {
	return Load{
		ID:              r.ID.Bytes(),
		CompanyID:       r.CompanyID.Bytes(),
		LoadNumber:      r.LoadNumber,
		ReferenceNumber: r.ReferenceNumber,
		BOLNumber:       r.BOLNumber,
		LoadType:        string(r.LoadType),
		Mode:            string(r.Mode),
		Status:          r.Status.String(),
		CustomerID:      kernel.OptionalGoogleUUID(r.CustomerID),
		DriverID:        kernel.OptionalGoogleUUID(r.DriverID),
		TruckID:         kernel.OptionalGoogleUUID(r.TruckID),
		TrailerID:       kernel.OptionalGoogleUUID(r.TrailerID),
		EquipmentType:   r.Cargo.EquipmentType,
		WeightLbs:       r.Cargo.WeightLbs,
		Pieces:          r.Cargo.Pieces,
		Commodity:       r.Cargo.Commodity,
		PickupDate:      wireDate(r.PickupDate),
		DeliveryDate:    wireDate(r.DeliveryDate),
		CustomerRate:    r.CustomerRate,
		CarrierRate:     r.CarrierRate,
		TotalRevenue:    r.TotalRevenue,
		TotalCost:       r.TotalCost,
		ProfitMargin:    r.ProfitMargin,
		TotalMiles:      r.TotalMiles,
		Version:         r.Version,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func toDriver(r queries.DriverResponse) Driver {
	d := Driver{
		ID:                 r.ID.Bytes(),
		CompanyID:          r.CompanyID.Bytes(),
		FirstName:          r.Profile.FirstName,
		LastName:           r.Profile.LastName,
		Email:              r.Profile.Email,
		Phone:              r.Profile.Phone,
		CDLNumber:          r.Profile.License.Number,
		CDLState:           r.Profile.License.State,
		CDLClass:           r.Profile.License.Class,
		CDLExpiry:          wireDate(r.Profile.License.Expiry),
		HireDate:           wireOptionalDate(r.Profile.HireDate),
		PayType:            string(r.Profile.PayType),
		PayRate:            r.Profile.PayRate,
		EmploymentStatus:   string(r.EmploymentStatus),
		CurrentStatus:      string(r.DutyStatus),
		LastLocationUpdate: r.LastLocationUpdate,
		TotalMiles:         r.Performance.TotalMiles,
		TotalLoads:         r.Performance.TotalLoads,
	}
	if r.Location != nil {
		lat, lon := r.Location.Latitude(), r.Location.Longitude()
		d.Latitude, d.Longitude = &lat, &lon
	}
	return d
}

func toCustomer(r queries.CustomerResponse) Customer {
	return Customer{
		ID:           r.ID.Bytes(),
		CompanyID:    r.CompanyID.Bytes(),
		Name:         r.Name,
		CustomerType: string(r.Type),
		Email:        r.Email,
		Phone:        r.Phone,
		PaymentTerms: r.PaymentTerms,
		CreditLimit:  r.CreditLimit,
		Status:       string(r.Status),
	}
}

func toEquipment(r queries.EquipmentResponse) Equipment {
	return Equipment{
		ID:            r.ID.Bytes(),
		CompanyID:     r.CompanyID.Bytes(),
		EquipmentType: string(r.Kind),
		UnitNumber:    r.UnitNumber,
		Status:        string(r.Status),
	}
}

func toInvoice(r queries.InvoiceResponse) Invoice {
	return Invoice{
		ID:            r.ID.Bytes(),
		CompanyID:     r.CompanyID.Bytes(),
		InvoiceNumber: r.InvoiceNumber,
		InvoiceType:   string(r.Type),
		CustomerID:    kernel.OptionalGoogleUUID(r.CustomerID),
		LoadID:        kernel.OptionalGoogleUUID(r.LoadID),
		TotalAmount:   r.TotalAmount,
		AmountPaid:    r.AmountPaid,
		BalanceDue:    r.BalanceDue,
		InvoiceDate:   wireDate(r.InvoiceDate),
		DueDate:       wireDate(r.DueDate),
		Status:        string(r.Status),
	}
}

func toFinancialSummary(r queries.FinancialSummaryResponse) FinancialSummary {
	return FinancialSummary{
		CompanyID:    r.CompanyID.Bytes(),
		StartDate:    wireDate(r.StartDate),
		EndDate:      wireDate(r.EndDate),
		TotalLoads:   r.TotalLoads,
		TotalRevenue: r.TotalRevenue,
		TotalCost:    r.TotalCost,
		TotalProfit:  r.TotalProfit,
		TotalMiles:   r.TotalMiles,
	}
}
