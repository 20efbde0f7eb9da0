package middleware

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"logisocial/pkg/config"
	"logisocial/pkg/logger"
)

// visitorTTL is how long an idle client IP keeps its token bucket.
const visitorTTL = 3 * time.Minute

type RateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retry_after"`
}

// RateLimit applies a per-IP token bucket. A zero RPS disables limiting.
func RateLimit(cfg config.RateLimitConfig) echo.MiddlewareFunc {
	if cfg.RPS <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	burst := cfg.Burst
	if burst <= 0 {
		burst = int(math.Ceil(cfg.RPS))
	}
	retryAfter := int(math.Ceil(1 / cfg.RPS))

	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(cfg.RPS),
		Burst:     burst,
		ExpiresIn: visitorTTL,
	})

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Skipper: skipHealth,
		Store:   store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, RateLimitResponse{Error: "Unable to identify client"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("Rate limit exceeded for %s on %s", identifier, c.Path())
			c.Response().Header().Set("Retry-After", strconv.Itoa(retryAfter))
			return c.JSON(http.StatusTooManyRequests, RateLimitResponse{
				Error:      "Rate limit exceeded",
				RetryAfter: retryAfter,
			})
		},
	})
}
