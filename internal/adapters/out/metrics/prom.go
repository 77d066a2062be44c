// Package metrics records dispatch and HTTP metrics in Prometheus collectors.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "tms"

// PromSink implements ports.DispatchMetrics and the request observer used by
// the HTTP middleware.
type PromSink struct {
	gatherer prometheus.Gatherer

	loadsCreated       prometheus.Counter
	statusTransitions  *prometheus.CounterVec
	assignments        *prometheus.CounterVec
	assignmentRejected *prometheus.CounterVec
	invoicesIssued     prometheus.Counter
	paymentsRecorded   prometheus.Counter
	financeReports     *prometheus.CounterVec

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewPromSink registers the collectors on a private registry together with
// the Go and process collectors.
func NewPromSink() (*PromSink, error) {
	reg := prometheus.NewRegistry()
	if err := reg.Register(collectors.NewGoCollector()); err != nil {
		return nil, err
	}
	if err := reg.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		return nil, err
	}
	return NewPromSinkWithRegistry(reg, reg)
}

// NewPromSinkWithRegistry registers on reg. Collectors that are already
// registered are reused.
func NewPromSinkWithRegistry(reg prometheus.Registerer, gatherer prometheus.Gatherer) (*PromSink, error) {
	s := &PromSink{gatherer: gatherer}
	var err error

	if s.loadsCreated, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "loads_created_total",
		Help:      "Total number of loads created",
	})); err != nil {
		return nil, err
	}
	if s.statusTransitions, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "load_status_transitions_total",
		Help:      "Total number of load status transitions",
	}, []string{"from", "to"})); err != nil {
		return nil, err
	}
	if s.assignments, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "load_assignments_total",
		Help:      "Total number of successful load assignments",
	}, []string{"reassignment"})); err != nil {
		return nil, err
	}
	if s.assignmentRejected, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "load_assignments_rejected_total",
		Help:      "Total number of refused assignment requests",
	}, []string{"reason"})); err != nil {
		return nil, err
	}
	if s.invoicesIssued, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoices_issued_total",
		Help:      "Total number of invoices issued",
	})); err != nil {
		return nil, err
	}
	if s.paymentsRecorded, err = register(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "invoice_payments_total",
		Help:      "Total number of invoice payments recorded",
	})); err != nil {
		return nil, err
	}
	if s.financeReports, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "finance_reports_total",
		Help:      "Daily financial summaries produced per outcome",
	}, []string{"outcome"})); err != nil {
		return nil, err
	}
	if s.httpRequests, err = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests",
	}, []string{"method", "route", "status"})); err != nil {
		return nil, err
	}
	if s.httpDuration, err = register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})); err != nil {
		return nil, err
	}

	return s, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// Handler serves the gathered metrics in the exposition format.
func (s *PromSink) Handler() http.Handler {
	return promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})
}

func (s *PromSink) LoadCreated() {
	s.loadsCreated.Inc()
}

func (s *PromSink) LoadStatusChanged(from, to string) {
	s.statusTransitions.WithLabelValues(from, to).Inc()
}

func (s *PromSink) LoadAssigned(reassignment bool) {
	s.assignments.WithLabelValues(strconv.FormatBool(reassignment)).Inc()
}

func (s *PromSink) AssignmentRejected(reason string) {
	s.assignmentRejected.WithLabelValues(reason).Inc()
}

func (s *PromSink) InvoiceIssued() {
	s.invoicesIssued.Inc()
}

func (s *PromSink) PaymentRecorded() {
	s.paymentsRecorded.Inc()
}

// FinanceReport counts one company summary of the daily job.
func (s *PromSink) FinanceReport(ok bool) {
	outcome := "success"
	if !ok {
		outcome = "failure"
	}
	s.financeReports.WithLabelValues(outcome).Inc()
}

// ObserveRequest records one served request. route is the matched route
// pattern, never the raw path, to keep label cardinality bounded.
func (s *PromSink) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	s.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
