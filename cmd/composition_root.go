package cmd

import (
	"log/slog"

	httpin "tms/internal/adapters/in/http"
	"tms/internal/adapters/out/metrics"
	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/ports"
	"tms/internal/jobs"

	"github.com/labstack/echo/v4"
)

// CompositionRoot wires use cases to the selected store, the event
// publisher and the metrics sink.
type CompositionRoot struct {
	configs    Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	publisher  ports.EventPublisher
	metrics    *metrics.PromSink
	version    string
}

// NewCompositionRoot accepts a nil publisher; events are then dropped.
func NewCompositionRoot(
	configs Config,
	logger *slog.Logger,
	uowFactory ports.UnitOfWorkFactory,
	publisher ports.EventPublisher,
	sink *metrics.PromSink,
	version string,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		logger:     logger,
		uowFactory: uowFactory,
		publisher:  publisher,
		metrics:    sink,
		version:    version,
	}
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) billingUoWFactory() commands.BillingUoWFactory {
	return FuncBillingUoWFactory(func() commands.BillingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.loadUoWFactory(), c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateTransitionLoadStatusCommandHandler() commands.TransitionLoadStatusCommandHandler {
	return commands.NewTransitionLoadStatusCommandHandler(c.loadUoWFactory(), c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateAssignLoadCommandHandler() commands.AssignLoadCommandHandler {
	return commands.NewAssignLoadCommandHandler(c.dispatchUoWFactory(), c.publisher, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateUpdateLoadRatesCommandHandler() commands.UpdateLoadRatesCommandHandler {
	return commands.NewUpdateLoadRatesCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateUpdateDriverLocationCommandHandler() commands.UpdateDriverLocationCommandHandler {
	return commands.NewUpdateDriverLocationCommandHandler(c.driverUoWFactory())
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateEquipmentCommandHandler() commands.CreateEquipmentCommandHandler {
	var f commands.EquipmentUoWFactory = FuncEquipmentUoWFactory(func() commands.EquipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateEquipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateIssueInvoiceCommandHandler() commands.IssueInvoiceCommandHandler {
	return commands.NewIssueInvoiceCommandHandler(c.billingUoWFactory(), c.metrics)
}

func (c *CompositionRoot) CreateRecordInvoicePaymentCommandHandler() commands.RecordInvoicePaymentCommandHandler {
	return commands.NewRecordInvoicePaymentCommandHandler(c.billingUoWFactory(), c.metrics)
}

// Queries read outside any transaction.

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.uowFactory.Create().LoadRepository())
}

func (c *CompositionRoot) CreateListActiveLoadsQueryHandler() queries.ListActiveLoadsQueryHandler {
	return queries.NewListActiveLoadsQueryHandler(c.uowFactory.Create().LoadRepository())
}

func (c *CompositionRoot) CreateGetDriverQueryHandler() queries.GetDriverQueryHandler {
	return queries.NewGetDriverQueryHandler(c.uowFactory.Create().DriverRepository())
}

func (c *CompositionRoot) CreateListAvailableDriversQueryHandler() queries.ListAvailableDriversQueryHandler {
	return queries.NewListAvailableDriversQueryHandler(c.uowFactory.Create().DriverRepository())
}

func (c *CompositionRoot) CreateGetCustomerQueryHandler() queries.GetCustomerQueryHandler {
	return queries.NewGetCustomerQueryHandler(c.uowFactory.Create().CustomerRepository())
}

func (c *CompositionRoot) CreateGetEquipmentQueryHandler() queries.GetEquipmentQueryHandler {
	return queries.NewGetEquipmentQueryHandler(c.uowFactory.Create().EquipmentRepository())
}

func (c *CompositionRoot) CreateGetInvoiceQueryHandler() queries.GetInvoiceQueryHandler {
	return queries.NewGetInvoiceQueryHandler(c.uowFactory.Create().InvoiceRepository())
}

func (c *CompositionRoot) CreateGetFinancialSummaryQueryHandler() queries.GetFinancialSummaryQueryHandler {
	return queries.NewGetFinancialSummaryQueryHandler(c.uowFactory.Create().LoadRepository())
}

// CreateRouter mounts the HTTP API with request logging and metrics.
func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	server := httpin.NewServer(
		httpin.Commands{
			CreateLoad:           c.CreateCreateLoadCommandHandler(),
			TransitionLoadStatus: c.CreateTransitionLoadStatusCommandHandler(),
			AssignLoad:           c.CreateAssignLoadCommandHandler(),
			UpdateLoadRates:      c.CreateUpdateLoadRatesCommandHandler(),
			CreateDriver:         c.CreateCreateDriverCommandHandler(),
			UpdateDriverLocation: c.CreateUpdateDriverLocationCommandHandler(),
			CreateCustomer:       c.CreateCreateCustomerCommandHandler(),
			CreateEquipment:      c.CreateCreateEquipmentCommandHandler(),
			IssueInvoice:         c.CreateIssueInvoiceCommandHandler(),
			RecordPayment:        c.CreateRecordInvoicePaymentCommandHandler(),
		},
		httpin.Queries{
			GetLoad:              c.CreateGetLoadQueryHandler(),
			ListActiveLoads:      c.CreateListActiveLoadsQueryHandler(),
			GetDriver:            c.CreateGetDriverQueryHandler(),
			ListAvailableDrivers: c.CreateListAvailableDriversQueryHandler(),
			GetCustomer:          c.CreateGetCustomerQueryHandler(),
			GetEquipment:         c.CreateGetEquipmentQueryHandler(),
			GetInvoice:           c.CreateGetInvoiceQueryHandler(),
			GetFinancialSummary:  c.CreateGetFinancialSummaryQueryHandler(),
		},
		c.version,
	)

	return httpin.NewRouter(server, httpin.RouterOptions{
		Logger:         c.logger,
		Metrics:        c.metrics,
		MetricsHandler: c.metrics.Handler(),
		AllowedOrigins: c.configs.AllowedOrigins(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	report := jobs.NewFinancialReportJob(
		c.uowFactory.Create().LoadRepository(),
		c.CreateGetFinancialSummaryQueryHandler(),
		c.publisher,
		c.metrics,
		c.configs.FinanceReportSchedule,
		c.logger,
	)
	return jobs.NewJobManager(c.logger, report)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncEquipmentUoWFactory func() commands.EquipmentUoW

func (f FuncEquipmentUoWFactory) Create() commands.EquipmentUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncBillingUoWFactory func() commands.BillingUoW

func (f FuncBillingUoWFactory) Create() commands.BillingUoW {
	return f()
}
