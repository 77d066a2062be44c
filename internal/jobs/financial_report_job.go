package jobs

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/events"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// DefaultFinancialReportSchedule runs shortly after midnight UTC.
const DefaultFinancialReportSchedule = "0 5 0 * * *"

// ReportMetrics counts produced summaries per outcome.
type ReportMetrics interface {
	FinanceReport(ok bool)
}

// FinancialReportJob publishes the previous day's financial summary of every
// company that owns loads.
type FinancialReportJob struct {
	companies ports.LoadReader
	handler   queries.GetFinancialSummaryQueryHandler
	publisher ports.EventPublisher
	metrics   ReportMetrics

	schedule string
	timeout  time.Duration
	now      func() time.Time

	cron    *cron.Cron
	running sync.Mutex
	logger  *slog.Logger
}

func NewFinancialReportJob(
	companies ports.LoadReader,
	handler queries.GetFinancialSummaryQueryHandler,
	publisher ports.EventPublisher,
	metrics ReportMetrics,
	schedule string,
	logger *slog.Logger,
) *FinancialReportJob {
	if schedule == "" {
		schedule = DefaultFinancialReportSchedule
	}
	return &FinancialReportJob{
		companies: companies,
		handler:   handler,
		publisher: publisher,
		metrics:   metrics,
		schedule:  schedule,
		timeout:   5 * time.Minute,
		now:       time.Now,
		cron:      cron.New(cron.WithSeconds(), cron.WithLocation(time.UTC)),
		logger:    logger.With("component", "financial_report_job"),
	}
}

// Start registers the job on its schedule. Overlapping runs are skipped.
func (j *FinancialReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if !j.running.TryLock() {
			j.logger.Warn("Financial report still running, skipping tick")
			return
		}
		defer j.running.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()

		if err := j.Run(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Financial report job failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("Financial report job started", "schedule", j.schedule)
	return nil
}

// Stop waits for a running report to finish.
func (j *FinancialReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("Financial report job stopped")
}

// Run summarizes yesterday (UTC) for each company. A failing company does
// not stop the others; all failures are returned joined.
func (j *FinancialReportJob) Run(ctx context.Context) error {
	day := kernel.DateFromTime(j.now().UTC()).AddDays(-1)

	companyIDs, err := j.companies.CompanyIDs(ctx)
	if err != nil {
		return err
	}

	var failures error
	for _, companyID := range companyIDs {
		if err = j.report(ctx, companyID, day); err != nil {
			j.metrics.FinanceReport(false)
			failures = errors.Join(failures, fmt.Errorf("company %s: %w", companyID, err))
			continue
		}
		j.metrics.FinanceReport(true)
	}

	j.logger.InfoContext(ctx, "Financial report finished",
		"day", day.String(),
		"companies", len(companyIDs),
		"failed", failures != nil,
	)
	return failures
}

func (j *FinancialReportJob) report(ctx context.Context, companyID kernel.UUID, day kernel.Date) error {
	query, err := queries.NewGetFinancialSummaryQuery(companyID, day, day)
	if err != nil {
		return err
	}
	summary, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	window, err := kernel.NewDateRange(summary.StartDate, summary.EndDate)
	if err != nil {
		return err
	}
	evt := events.NewFinancialSummaryReported(companyID, window, events.Totals{
		TotalLoads:   summary.TotalLoads,
		TotalRevenue: summary.TotalRevenue,
		TotalCost:    summary.TotalCost,
		TotalProfit:  summary.TotalProfit,
		TotalMiles:   summary.TotalMiles,
	}, j.now())

	if j.publisher == nil {
		j.logger.InfoContext(ctx, "Daily financial summary",
			"company_id", companyID.String(),
			"total_loads", summary.TotalLoads,
			"total_revenue", summary.TotalRevenue.String(),
		)
		return nil
	}
	return j.publisher.Publish(ctx, evt)
}
