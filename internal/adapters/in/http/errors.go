package http

import (
	"errors"
	"log/slog"
	"net/http"

	"tms/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	codeValidation   = "validation_error"
	codeNotFound     = "not_found"
	codeBusinessRule = "business_rule_violation"
	codeConflict     = "conflict"
	codeUnauthorized = "unauthorized"
	codeInternal     = "internal_error"
)

// statusOf maps the error taxonomy onto HTTP. Concurrent modification is
// checked before business rules because it matches both.
func statusOf(err error) (int, string) {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest, codeValidation
	case errors.Is(err, errs.ErrUnauthorized):
		return http.StatusUnauthorized, codeUnauthorized
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound, codeNotFound
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict, codeConflict
	case errors.Is(err, errs.ErrBusinessRuleViolated):
		return http.StatusConflict, codeBusinessRule
	default:
		return http.StatusInternalServerError, codeInternal
	}
}

// errorBody never exposes the text of internal failures.
func errorBody(err error) (int, Error) {
	status, code := statusOf(err)
	if status == http.StatusInternalServerError {
		return status, Error{Error: code, Message: "internal server error"}
	}
	return status, Error{Error: code, Message: err.Error()}
}

func badRequest(message string) *echo.HTTPError {
	return echo.NewHTTPError(http.StatusBadRequest, message)
}

// NewErrorHandler renders every error returned by a route as an Error body.
// Internal failures are logged with the request id.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var status int
		var body Error

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			body = Error{Error: echoCode(he.Code), Message: http.StatusText(he.Code)}
			if msg, ok := he.Message.(string); ok {
				body.Message = msg
			}
		} else {
			status, body = errorBody(err)
		}

		if status >= http.StatusInternalServerError {
			logger.ErrorContext(c.Request().Context(), "request failed",
				"method", c.Request().Method,
				"path", c.Path(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"error", err,
			)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = c.JSON(status, body)
		}
		if err != nil {
			logger.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
		}
	}
}

func echoCode(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnsupportedMediaType, http.StatusRequestEntityTooLarge:
		return codeValidation
	case http.StatusUnauthorized:
		return codeUnauthorized
	case http.StatusNotFound, http.StatusMethodNotAllowed:
		return codeNotFound
	case http.StatusConflict:
		return codeConflict
	default:
		return codeInternal
	}
}
