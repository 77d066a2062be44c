package http

import (
	"errors"
	"net/http"

	"tms/internal/core/application/usecases/commands"
	"tms/internal/core/application/usecases/queries"
	"tms/internal/core/domain/model/driver"
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CreateDriver handles POST /api/companies/{company_id}/drivers. New drivers
// are active and off duty.
func (s *Server) CreateDriver(c echo.Context) error {
	companyID, err := pathUUID(c, "company_id")
	if err != nil {
		return err
	}
	var body NewDriver
	if err = bind(c, &body); err != nil {
		return err
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(driverID, companyID, driver.Profile{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Phone:     body.Phone,
		License: driver.License{
			Number: body.CDLNumber,
			State:  body.CDLState,
			Class:  body.CDLClass,
			Expiry: domainDate(body.CDLExpiry),
		},
		HireDate: domainOptionalDate(body.HireDate),
		PayType:  driver.PayType(body.PayType),
		PayRate:  body.PayRate,
	})
	if err != nil {
		return err
	}
	if err = s.commands.CreateDriver.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDriver(c, http.StatusCreated, companyID, driverID)
}

// ListAvailableDrivers handles GET /api/companies/{company_id}/drivers/available.
func (s *Server) ListAvailableDrivers(c echo.Context) error {
	companyID, err := pathUUID(c, "company_id")
	if err != nil {
		return err
	}
	query, err := queries.NewListAvailableDriversQuery(companyID)
	if err != nil {
		return err
	}

	drivers, err := s.queries.ListAvailableDrivers.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]Driver, len(drivers))
	for i, d := range drivers {
		response[i] = toDriver(d)
	}
	return c.JSON(http.StatusOK, response)
}

// GetDriver handles GET /api/drivers/{driver_id}.
func (s *Server) GetDriver(c echo.Context) error {
	companyID, err := tenantOf(c)
	if err != nil {
		return err
	}
	driverID, err := pathUUID(c, "driver_id")
	if err != nil {
		return err
	}
	return s.respondDriver(c, http.StatusOK, companyID, driverID)
}

// UpdateDriverLocation handles PATCH /api/drivers/{driver_id}/location.
func (s *Server) UpdateDriverLocation(c echo.Context) error {
	companyID, err := tenantOf(c)
	if err != nil {
		return err
	}
	driverID, err := pathUUID(c, "driver_id")
	if err != nil {
		return err
	}
	var body LocationUpdate
	if err = bind(c, &body); err != nil {
		return err
	}
	if body.Latitude == nil || body.Longitude == nil {
		var missing error
		if body.Latitude == nil {
			missing = errors.Join(missing, errs.NewValueIsRequiredError("latitude"))
		}
		if body.Longitude == nil {
			missing = errors.Join(missing, errs.NewValueIsRequiredError("longitude"))
		}
		return missing
	}

	cmd, err := commands.NewUpdateDriverLocationCommand(
		companyID, driverID, *body.Latitude, *body.Longitude, body.Status, s.now(),
	)
	if err != nil {
		return err
	}
	if err = s.commands.UpdateDriverLocation.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return s.respondDriver(c, http.StatusOK, companyID, driverID)
}

func (s *Server) respondDriver(c echo.Context, status int, companyID, driverID kernel.UUID) error {
	query, err := queries.NewGetDriverQuery(companyID, driverID)
	if err != nil {
		return err
	}
	d, err := s.queries.GetDriver.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}
	return c.JSON(status, toDriver(d))
}
