package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"logisocial/pkg/errors"
	"logisocial/pkg/response"
)

// StoreChecker reports whether the backing store can serve requests.
type StoreChecker interface {
	Ready(ctx context.Context) error
}

type StoreCheckerFunc func(ctx context.Context) error

func (f StoreCheckerFunc) Ready(ctx context.Context) error {
	return f(ctx)
}

// RequireStore answers 503 before any handler runs while the store is down.
// The health check is exempt.
func RequireStore(store StoreChecker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if skipHealth(c) {
				return next(c)
			}
			if store == nil {
				return response.Error(c, errors.ServiceUnavailable("Database not connected", nil))
			}
			if err := store.Ready(c.Request().Context()); err != nil {
				return response.Error(c, errors.ServiceUnavailable("Database not connected", err))
			}
			return next(c)
		}
	}
}
