package router

import (
	"github.com/labstack/echo/v4"

	"logisocial/internal/adapter/api/handler"
)

func SetupUserRouter(api *echo.Group, userHandler *handler.UserHandler) {
	users := api.Group("/users")
	users.POST("", userHandler.CreateUser)
	users.GET("", userHandler.GetUsers)
	users.GET("/:id", userHandler.GetUserByID)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)
}
