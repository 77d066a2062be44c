package http

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"
)

// RequestObserver receives one observation per served request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// render hands a route error to the error handler so that the response
// status is final when the surrounding middleware reads it.
func render(c echo.Context, err error) {
	if err != nil {
		c.Error(err)
	}
}

// NewSlogLogger logs each request with method, path, status, duration and
// the id set by the RequestID middleware, which must run before it.
func NewSlogLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			render(c, next(c))

			req := c.Request()
			logger.InfoContext(req.Context(), "request",
				"method", req.Method,
				"path", req.URL.Path,
				"status", c.Response().Status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			)
			return nil
		}
	}
}

// NewMetrics records request counts and latency labelled by route pattern.
func NewMetrics(observer RequestObserver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			render(c, next(c))

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			observer.ObserveRequest(c.Request().Method, route, c.Response().Status, time.Since(start))
			return nil
		}
	}
}
