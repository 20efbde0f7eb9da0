package router

import (
	"github.com/labstack/echo/v4"

	"logisocial/internal/adapter/api/handler"
)

func SetupLogisticProviderRouter(api *echo.Group, providerHandler *handler.LogisticProviderHandler) {
	providers := api.Group("/logistic_providers")
	providers.POST("", providerHandler.CreateProvider)
	providers.GET("", providerHandler.GetProviders)
	providers.GET("/:id", providerHandler.GetProviderByID)
	providers.PUT("/:id", providerHandler.UpdateProvider)
	providers.DELETE("/:id", providerHandler.DeleteProvider)
}
