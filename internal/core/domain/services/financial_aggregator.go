package services

import (
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"

	"github.com/shopspring/decimal"
)

// FinancialSummary is the derived performance of a company over a pickup window.
type FinancialSummary struct {
	CompanyID    kernel.UUID
	Window       kernel.DateRange
	TotalLoads   int
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal
	TotalMiles   int64
}

// FinancialAggregator sums revenue, cost, profit margin and miles of billable
// loads. Loads of other companies, loads picked up outside the window and
// loads that are not delivered or completed are ignored; missing amounts count as zero.
type FinancialAggregator struct{}

func NewFinancialAggregator() FinancialAggregator {
	return FinancialAggregator{}
}

func (a FinancialAggregator) Summarize(
	companyID kernel.UUID,
	window kernel.DateRange,
	loads []*load.Load,
) (FinancialSummary, error) {
	if err := companyID.Validate(); err != nil {
		return FinancialSummary{}, err
	}
	if err := window.Validate(); err != nil {
		return FinancialSummary{}, err
	}

	summary := FinancialSummary{
		CompanyID:    companyID,
		Window:       window,
		TotalRevenue: decimal.Zero,
		TotalCost:    decimal.Zero,
		TotalProfit:  decimal.Zero,
	}

	for _, l := range loads {
		if err := l.Validate(); err != nil {
			return FinancialSummary{}, err
		}
		if !l.CompanyID().IsEqual(companyID) || !l.Status().IsBillable() || !window.Contains(l.PickupDate()) {
			continue
		}

		summary.TotalLoads++
		summary.TotalRevenue = summary.TotalRevenue.Add(l.RevenueOrZero())
		summary.TotalCost = summary.TotalCost.Add(l.CostOrZero())
		summary.TotalProfit = summary.TotalProfit.Add(l.ProfitOrZero())
		summary.TotalMiles += int64(l.MilesOrZero())
	}

	return summary, nil
}
