// Package middleware holds the echo middleware stack: request logging,
// Prometheus metrics and bearer-token auth.
package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger logs one line per request with method, path, status and
// duration. Place it after the request-ID middleware so the ID is available.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			req := c.Request()
			res := c.Response()

			event := logger.Info()
			if err != nil {
				event = logger.Error().Err(err)
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", res.Status).
				Dur("duration", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return err
		}
	}
}

// RequestID tags every request with an ID header.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestID()
}
