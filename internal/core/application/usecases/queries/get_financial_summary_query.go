package queries

import (
	"context"
	"errors"

	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/services"
	"tms/internal/core/ports"
	"tms/internal/pkg/errs"
	"tms/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetFinancialSummaryQueryIsNotConstructed = errors.New(
	"GetFinancialSummaryQuery must be created via NewGetFinancialSummaryQuery constructor",
)

// GetFinancialSummaryQuery summarizes delivered and completed loads picked
// up between start and end, both inclusive.
//
// Example:
//
//	query, err := NewGetFinancialSummaryQuery(companyID,
//	    kernel.NewDate(2024, time.January, 1),
//	    kernel.NewDate(2024, time.January, 31))
//	if err != nil {
//	    return err // ValidationError, e.g. start after end
//	}
//	summary, err := handler.Handle(ctx, query)
type GetFinancialSummaryQuery struct { //nolint:recvcheck //using for validation
	companyID kernel.UUID
	window    kernel.DateRange

	guard guard.ConstructorGuard
}

func NewGetFinancialSummaryQuery(companyID kernel.UUID, start, end kernel.Date) (GetFinancialSummaryQuery, error) {
	var err error
	if vErr := companyID.Validate(); vErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("company_id", vErr))
	}
	if vErr := start.Validate(); vErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("start_date", vErr))
	}
	if vErr := end.Validate(); vErr != nil {
		err = errors.Join(err, errs.NewValueIsRequiredErrorWithCause("end_date", vErr))
	}
	if err != nil {
		return GetFinancialSummaryQuery{}, err
	}

	window, err := kernel.NewDateRange(start, end)
	if err != nil {
		return GetFinancialSummaryQuery{}, errs.NewValueIsInvalidErrorWithCause("start_date", err)
	}

	return GetFinancialSummaryQuery{
		companyID: companyID,
		window:    window,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetFinancialSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetFinancialSummaryQueryIsNotConstructed)
}

func (q GetFinancialSummaryQuery) CompanyID() kernel.UUID {
	return q.companyID
}

func (q GetFinancialSummaryQuery) Window() kernel.DateRange {
	return q.window
}

type FinancialSummaryResponse struct {
	CompanyID    kernel.UUID
	StartDate    kernel.Date
	EndDate      kernel.Date
	TotalLoads   int
	TotalRevenue decimal.Decimal
	TotalCost    decimal.Decimal
	TotalProfit  decimal.Decimal
	TotalMiles   int64
}

type GetFinancialSummaryQueryHandler struct {
	reader     ports.LoadReader
	aggregator services.FinancialAggregator
}

func NewGetFinancialSummaryQueryHandler(reader ports.LoadReader) GetFinancialSummaryQueryHandler {
	return GetFinancialSummaryQueryHandler{
		reader:     reader,
		aggregator: services.NewFinancialAggregator(),
	}
}

// Handle is read only; repeated calls over unchanged data return equal summaries.
func (h GetFinancialSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetFinancialSummaryQuery,
) (FinancialSummaryResponse, error) {
	if err := query.Validate(); err != nil {
		return FinancialSummaryResponse{}, err
	}

	loads, err := h.reader.ListBillable(ctx, query.CompanyID(), query.Window())
	if err != nil {
		return FinancialSummaryResponse{}, err
	}

	summary, err := h.aggregator.Summarize(query.CompanyID(), query.Window(), loads)
	if err != nil {
		return FinancialSummaryResponse{}, err
	}

	return FinancialSummaryResponse{
		CompanyID:    summary.CompanyID,
		StartDate:    summary.Window.Start(),
		EndDate:      summary.Window.End(),
		TotalLoads:   summary.TotalLoads,
		TotalRevenue: summary.TotalRevenue,
		TotalCost:    summary.TotalCost,
		TotalProfit:  summary.TotalProfit,
		TotalMiles:   summary.TotalMiles,
	}, nil
}
