// Package jobs provides scheduled background tasks of the dispatch service.
//
// Jobs use github.com/robfig/cron/v3 with a seconds field and run in UTC.
//
// # Available Jobs
//
// FinancialReportJob summarizes the previous day's delivered and completed
// loads of every company and publishes one finance.daily_summary event per
// company. The schedule defaults to DefaultFinancialReportSchedule and is
// configured with FINANCE_REPORT_SCHEDULE.
//
// # Usage
//
//	job := jobs.NewFinancialReportJob(loads, summaryHandler, publisher, sink, schedule, logger)
//	manager := jobs.NewJobManager(logger, job)
//	if err := manager.StartAll(); err != nil {
//		return err
//	}
//	defer manager.StopAll()
//
// # Error Handling
//
// A company whose summary fails is logged and counted; the remaining
// companies are still reported. A tick that fires while the previous run is
// in progress is skipped.
package jobs
