package http

import (
	"time"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
)

// Commands groups the write use cases served over HTTP.
type Commands struct {
	CreateLoad           commands.CreateLoadCommandHandler
	TransitionLoadStatus commands.TransitionLoadStatusCommandHandler
	AssignLoad           commands.AssignLoadCommandHandler
	UpdateLoadRates      commands.UpdateLoadRatesCommandHandler
	CreateDriver         commands.CreateDriverCommandHandler
	UpdateDriverLocation commands.UpdateDriverLocationCommandHandler
	CreateCustomer       commands.CreateCustomerCommandHandler
	CreateEquipment      commands.CreateEquipmentCommandHandler
	IssueInvoice         commands.IssueInvoiceCommandHandler
	RecordPayment        commands.RecordInvoicePaymentCommandHandler
}

// Queries groups the read use cases served over HTTP.
type Queries struct {
	GetLoad              queries.GetLoadQueryHandler
	ListActiveLoads      queries.ListActiveLoadsQueryHandler
	GetDriver            queries.GetDriverQueryHandler
	ListAvailableDrivers queries.ListAvailableDriversQueryHandler
	GetCustomer          queries.GetCustomerQueryHandler
	GetEquipment         queries.GetEquipmentQueryHandler
	GetInvoice           queries.GetInvoiceQueryHandler
	GetFinancialSummary  queries.GetFinancialSummaryQueryHandler
}

// Server translates HTTP requests into commands and queries. Writes answer
// with the stored state read back through the matching query.
type Server struct {
	commands Commands
	queries  Queries
	version  string
	now      func() time.Time
}

func NewServer(cmds Commands, qs Queries, version string) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		version:  version,
		now:      time.Now,
	}
}
