// Package events defines the facts the dispatch engine announces after a
// successful commit. Events are plain JSON-serializable values; the transport
// is chosen by the ports.EventPublisher implementation.
package events

import (
	"time"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
)

type Type string

const (
	LoadCreatedType              Type = "load.created"
	LoadStatusChangedType        Type = "load.status_changed"
	LoadAssignedType             Type = "load.assigned"
	FinancialSummaryReportedType Type = "finance.daily_summary"
)

// Event is implemented by every published fact. Key selects the partition:
// events of one load stay ordered.
type Event interface {
	EventType() Type
	Key() string
}

// Envelope carries the fields shared by all events.
type Envelope struct {
	Type       Type      `json:"type"`
	CompanyID  string    `json:"company_id"`
	LoadID     string    `json:"load_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

func (e Envelope) EventType() Type { return e.Type }

func (e Envelope) Key() string {
	if e.LoadID != "" {
		return e.LoadID
	}
	return e.CompanyID
}

func newEnvelope(t Type, companyID kernel.UUID, loadID *kernel.UUID, at time.Time) Envelope {
	e := Envelope{Type: t, CompanyID: companyID.String(), OccurredAt: at.UTC()}
	if loadID != nil {
		e.LoadID = loadID.String()
	}
	return e
}

type LoadCreated struct {
	Envelope
	LoadNumber   string `json:"load_number"`
	LoadType     string `json:"load_type"`
	PickupDate   string `json:"pickup_date"`
	DeliveryDate string `json:"delivery_date"`
}

func NewLoadCreated(l *load.Load) LoadCreated {
	id := l.ID()
	return LoadCreated{
		Envelope:     newEnvelope(LoadCreatedType, l.CompanyID(), &id, l.CreatedAt()),
		LoadNumber:   l.LoadNumber(),
		LoadType:     string(l.Type()),
		PickupDate:   l.PickupDate().String(),
		DeliveryDate: l.DeliveryDate().String(),
	}
}

type LoadStatusChanged struct {
	Envelope
	From    string `json:"from"`
	To      string `json:"to"`
	Version int    `json:"version"`
}

func NewLoadStatusChanged(l *load.Load, from load.Status) LoadStatusChanged {
	id := l.ID()
	return LoadStatusChanged{
		Envelope: newEnvelope(LoadStatusChangedType, l.CompanyID(), &id, l.UpdatedAt()),
		From:     from.String(),
		To:       l.Status().String(),
		Version:  l.Version(),
	}
}

// Resources identifies the driver and equipment of an assignment.
type Resources struct {
	DriverID  string  `json:"driver_id"`
	TruckID   string  `json:"truck_id"`
	TrailerID *string `json:"trailer_id,omitempty"`
}

func resourcesOf(a *load.Assignment) *Resources {
	if a == nil {
		return nil
	}
	r := &Resources{DriverID: a.DriverID().String(), TruckID: a.TruckID().String()}
	if trailer := a.TrailerID(); trailer != nil {
		s := trailer.String()
		r.TrailerID = &s
	}
	return r
}

// LoadAssigned records a (re)assignment together with the resources it replaced.
type LoadAssigned struct {
	Envelope
	Assignment *Resources `json:"assignment"`
	Previous   *Resources `json:"previous,omitempty"`
	FromStatus string     `json:"from_status"`
	Version    int        `json:"version"`
}

func NewLoadAssigned(l *load.Load, from load.Status, previous *load.Assignment) LoadAssigned {
	id := l.ID()
	return LoadAssigned{
		Envelope:   newEnvelope(LoadAssignedType, l.CompanyID(), &id, l.UpdatedAt()),
		Assignment: resourcesOf(l.Assignment()),
		Previous:   resourcesOf(previous),
		FromStatus: from.String(),
		Version:    l.Version(),
	}
}

// Reassigned reports whether the event replaced an earlier assignment.
func (e LoadAssigned) Reassigned() bool {
	return e.Previous != nil
}

type FinancialSummaryReported struct {
	Envelope
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	TotalLoads   int             `json:"total_loads"`
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalCost    decimal.Decimal `json:"total_cost"`
	TotalProfit  decimal.Decimal `json:"total_profit"`
	TotalMiles   int64           `json:"total_miles"`
}

// Totals is the aggregate a FinancialSummaryReported event announces.
type Totals struct {
	TotalLoads   int
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal
	TotalMiles   int64
}

func NewFinancialSummaryReported(companyID kernel.UUID, window kernel.DateRange, totals Totals, at time.Time) FinancialSummaryReported {
	return FinancialSummaryReported{
		Envelope:     newEnvelope(FinancialSummaryReportedType, companyID, nil, at),
		StartDate:    window.Start().String(),
		EndDate:      window.End().String(),
		TotalLoads:   totals.TotalLoads,
		TotalRevenue: totals.TotalRevenue,
		TotalCost:    totals.TotalCost,
		TotalProfit:  totals.TotalProfit,
		TotalMiles:   totals.TotalMiles,
	}
}
