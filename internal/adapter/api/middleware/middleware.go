package middleware

import "github.com/labstack/echo/v4"

const HealthPath = "/health"

func skipHealth(c echo.Context) bool {
	return c.Request().URL.Path == HealthPath
}
