package router

import (
	"github.com/labstack/echo/v4"

	"logisocial/internal/adapter/api/handler"
	"logisocial/internal/adapter/api/middleware"
)

func SetupHealthRouter(e *echo.Echo, healthHandler *handler.HealthHandler) {
	e.GET(middleware.HealthPath, healthHandler.CheckHealth)
}
