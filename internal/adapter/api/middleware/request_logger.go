package middleware

import (
	"errors"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	apperrors "logisocial/pkg/errors"
	"logisocial/pkg/logger"
)

// RequestLogger writes one line per request, leveled by status.
func RequestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:     true,
		LogStatus:  true,
		LogError:   true,
		LogLatency: true,
		LogMethod:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			status := v.Status

			// Errors that reach the HTTPErrorHandler have not been written yet.
			if v.Error != nil {
				var appErr *apperrors.AppError
				var echoErr *echo.HTTPError
				if errors.As(v.Error, &appErr) {
					status = appErr.Status
				} else if errors.As(v.Error, &echoErr) {
					status = echoErr.Code
				}
			}

			log := logger.Logger()
			var e *zerolog.Event
			switch {
			case status >= 500:
				e = log.Error().Err(v.Error)
			case status >= 400:
				e = log.Warn()
			default:
				e = log.Info()
			}

			if requestID := GetRequestID(c); requestID != "" {
				e = e.Str("request_id", requestID)
			}

			e.Dur("latency", v.Latency).
				Int("status", status).
				Str("method", v.Method).
				Str("uri", v.URI).
				Str("ip", c.RealIP()).
				Msg("API")

			return nil
		},
	})
}
