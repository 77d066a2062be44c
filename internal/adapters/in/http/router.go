package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"tms/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const serviceName = "tms-dispatch"

type RouterOptions struct {
	Logger *slog.Logger

	// Metrics is optional. MetricsHandler is mounted at /metrics when set.
	Metrics        RequestObserver
	MetricsHandler http.Handler

	AllowedOrigins []string
	BodyLimit      string
}

// LoadOpenAPI parses and validates the embedded API document.
func LoadOpenAPI() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("load openapi document: %w", err)
	}
	if err = doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("validate openapi document: %w", err)
	}
	return doc, nil
}

// NewRouter mounts every route of the API on a new echo instance.
func NewRouter(s *Server, opts RouterOptions) (*echo.Echo, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.BodyLimit == "" {
		opts.BodyLimit = "1M"
	}
	if len(opts.AllowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}

	doc, err := LoadOpenAPI()
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = NewErrorHandler(opts.Logger)

	e.Use(middleware.RequestID())
	e.Use(NewSlogLogger(opts.Logger))
	e.Use(middleware.Recover())
	if opts.Metrics != nil {
		e.Use(NewMetrics(opts.Metrics))
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, HeaderCompanyID},
	}))
	e.Use(middleware.BodyLimit(opts.BodyLimit))

	e.GET("/health", s.Health)
	e.GET("/api/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, doc)
	})
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.URL("/api/openapi.json")))
	if opts.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(opts.MetricsHandler))
	}

	e.POST("/api/companies/:company_id/loads", s.CreateLoad)
	e.GET("/api/companies/:company_id/loads", s.ListActiveLoads)
	e.POST("/api/companies/:company_id/drivers", s.CreateDriver)
	e.GET("/api/companies/:company_id/drivers/available", s.ListAvailableDrivers)
	e.GET("/api/companies/:company_id/financial-summary", s.GetFinancialSummary)
	e.POST("/api/companies/:company_id/customers", s.CreateCustomer)
	e.POST("/api/companies/:company_id/equipment", s.CreateEquipment)

	e.GET("/api/loads/:load_id", s.GetLoad, RequireCompany)
	e.PATCH("/api/loads/:load_id/status/:status", s.TransitionLoadStatus, RequireCompany)
	e.POST("/api/loads/:load_id/assign", s.AssignLoad, RequireCompany)
	e.PATCH("/api/loads/:load_id/rates", s.UpdateLoadRates, RequireCompany)
	e.POST("/api/loads/:load_id/invoices", s.IssueInvoice, RequireCompany)
	e.GET("/api/drivers/:driver_id", s.GetDriver, RequireCompany)
	e.PATCH("/api/drivers/:driver_id/location", s.UpdateDriverLocation, RequireCompany)
	e.GET("/api/customers/:customer_id", s.GetCustomer, RequireCompany)
	e.GET("/api/equipment/:equipment_id", s.GetEquipment, RequireCompany)
	e.GET("/api/invoices/:invoice_id", s.GetInvoice, RequireCompany)
	e.POST("/api/invoices/:invoice_id/payments", s.RecordPayment, RequireCompany)

	return e, nil
}

// Health handles GET /health.
func (s *Server) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, Health{
		Status:  "healthy",
		Service: serviceName,
		Version: s.version,
	})
}
