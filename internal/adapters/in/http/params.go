package http

import (
	"tms/internal/core/domain/model/kernel"
	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	// HeaderCompanyID identifies the tenant on routes without a company path segment.
	HeaderCompanyID = "X-Company-ID"

	companyContextKey = "company_id"
)

// RequireCompany resolves the tenant from the X-Company-ID header. A missing
// or malformed header is an authentication failure, not a validation one.
func RequireCompany(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(HeaderCompanyID)
		if raw == "" {
			return errs.NewUnauthorizedError("missing " + HeaderCompanyID + " header")
		}

		var id openapi_types.UUID
		if err := runtime.BindStyledParameterWithLocation(
			"simple", false, HeaderCompanyID, runtime.ParamLocationHeader, raw, &id,
		); err != nil {
			return errs.NewUnauthorizedError("invalid " + HeaderCompanyID + " header")
		}
		companyID, err := kernel.UUIDFromGoogle(id)
		if err != nil {
			return errs.NewUnauthorizedError("invalid " + HeaderCompanyID + " header")
		}

		c.Set(companyContextKey, companyID)
		return next(c)
	}
}

// tenantOf returns the company resolved by RequireCompany.
func tenantOf(c echo.Context) (kernel.UUID, error) {
	companyID, ok := c.Get(companyContextKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errs.NewUnauthorizedError("company is not resolved")
	}
	return companyID, nil
}

func pathUUID(c echo.Context, name string) (kernel.UUID, error) {
	var id openapi_types.UUID
	if err := runtime.BindStyledParameterWithLocation(
		"simple", false, name, runtime.ParamLocationPath, c.Param(name), &id,
	); err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	u, err := kernel.UUIDFromGoogle(id)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return u, nil
}

// queryDate binds a required date query parameter. The binder accepts a
// missing struct-typed parameter, so presence is checked first.
func queryDate(c echo.Context, name string) (kernel.Date, error) {
	if !c.QueryParams().Has(name) {
		return kernel.Date{}, errs.NewValueIsRequiredError(name)
	}
	var d openapi_types.Date
	if err := runtime.BindQueryParameter("form", true, true, name, c.QueryParams(), &d); err != nil {
		return kernel.Date{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return kernel.DateFromTime(d.Time), nil
}

// bind decodes the JSON body. Decoding failures are reported as 400.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return badRequest("invalid request body")
	}
	return nil
}

func domainOptionalUUID(id *openapi_types.UUID) *kernel.UUID {
	if id == nil {
		return nil
	}
	u := domainUUID(id)
	return &u
}
