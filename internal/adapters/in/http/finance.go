package http

import (
	"errors"
	"net/http"

	"tms/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetFinancialSummary handles
// GET /api/companies/{company_id}/financial-summary?start_date=&end_date=.
func (s *Server) GetFinancialSummary(c echo.Context) error {
	companyID, err := pathUUID(c, "company_id")
	if err != nil {
		return err
	}
	start, startErr := queryDate(c, "start_date")
	end, endErr := queryDate(c, "end_date")
	if err = errors.Join(startErr, endErr); err != nil {
		return err
	}

	query, err := queries.NewGetFinancialSummaryQuery(companyID, start, end)
	if err != nil {
		return err
	}
	summary, err := s.queries.GetFinancialSummary.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toFinancialSummary(summary))
}
