package http

import (
	"net/http"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/core/domain/model/load"

	"github.com/labstack/echo/v4"
)

// CreateLoad handles POST /api/companies/{company_id}/loads.
func (s *Server) CreateLoad(c echo.Context) error {
	companyID, err := pathUUID(c, "company_id")
	if err != nil {
		return err
	}
	var body NewLoad
	if err = bind(c, &body); err != nil {
		return err
	}

	loadID := kernel.NewUUID()
	cmd, err := commands.NewCreateLoadCommand(loadID, companyID, commands.LoadDetails{
		LoadNumber:      body.LoadNumber,
		ReferenceNumber: body.ReferenceNumber,
		BOLNumber:       body.BOLNumber,
		LoadType:        body.LoadType,
		CustomerID:      domainOptionalUUID(body.CustomerID),
		PickupDate:      domainDate(body.PickupDate),
		DeliveryDate:    domainDate(body.DeliveryDate),
		Cargo: load.Cargo{
			EquipmentType: body.EquipmentType,
			WeightLbs:     body.WeightLbs,
			Pieces:        body.Pieces,
			Commodity:     body.Commodity,
		},
	})
	if err != nil {
		return err
	}
	if err = s.commands.CreateLoad.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondLoad(c, http.StatusCreated, companyID, loadID)
}

// ListActiveLoads handles GET /api/companies/{company_id}/loads.
func (s *Server) ListActiveLoads(c echo.Context) error {
	companyID, err := pathUUID(c, "company_id")
	if err != nil {
		return err
	}
	query, err := queries.NewListActiveLoadsQuery(companyID)
	if err != nil {
		return err
	}

	loads, err := s.queries.ListActiveLoads.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Load, len(loads))
	for i, l := range loads {
		response[i] = toLoad(l)
	}
	return c.JSON(http.StatusOK, response)
}

// GetLoad handles GET /api/loads/{load_id}.
func (s *Server) GetLoad(c echo.Context) error {
	companyID, loadID, err := s.loadScope(c)
	if err != nil {
		return err
	}
	return s.respondLoad(c, http.StatusOK, companyID, loadID)
}

// TransitionLoadStatus handles PATCH /api/loads/{load_id}/status/{status}.
func (s *Server) TransitionLoadStatus(c echo.Context) error {
	companyID, loadID, err := s.loadScope(c)
	if err != nil {
		return err
	}

	cmd, err := commands.NewTransitionLoadStatusCommand(companyID, loadID, c.Param("status"))
	if err != nil {
		return err
	}
	if err = s.commands.TransitionLoadStatus.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondLoad(c, http.StatusOK, companyID, loadID)
}

// AssignLoad handles POST /api/loads/{load_id}/assign. The load must be
// pending or dispatched; eligibility failures answer 400 or 409.
func (s *Server) AssignLoad(c echo.Context) error {
	companyID, loadID, err := s.loadScope(c)
	if err != nil {
		return err
	}
	var body Assignment
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewAssignLoadCommand(
		companyID,
		loadID,
		domainUUID(body.DriverID),
		domainUUID(body.TruckID),
		domainOptionalUUID(body.TrailerID),
	)
	if err != nil {
		return err
	}
	if err = s.commands.AssignLoad.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondLoad(c, http.StatusOK, companyID, loadID)
}

// UpdateLoadRates handles PATCH /api/loads/{load_id}/rates.
func (s *Server) UpdateLoadRates(c echo.Context) error {
	companyID, loadID, err := s.loadScope(c)
	if err != nil {
		return err
	}
	var body Rates
	if err = bind(c, &body); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateLoadRatesCommand(companyID, loadID, body.CustomerRate, body.CarrierRate, body.TotalMiles)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateLoadRates.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondLoad(c, http.StatusOK, companyID, loadID)
}

func (s *Server) loadScope(c echo.Context) (kernel.UUID, kernel.UUID, error) {
	companyID, err := tenantOf(c)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	loadID, err := pathUUID(c, "load_id")
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return companyID, loadID, nil
}

func (s *Server) respondLoad(c echo.Context, status int, companyID, loadID kernel.UUID) error {
	query, err := queries.NewGetLoadQuery(companyID, loadID)
	if err != nil {
		return err
	}
	l, err := s.queries.GetLoad.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toLoad(l))
}
