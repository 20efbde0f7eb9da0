package router

import (
	"github.com/labstack/echo/v4"

	"logisocial/internal/adapter/api/handler"
)

func SetupMessageRouter(api *echo.Group, messageHandler *handler.MessageHandler) {
	messages := api.Group("/messages")
	messages.POST("", messageHandler.CreateMessage)
	messages.GET("", messageHandler.GetMessages)
	messages.GET("/:id", messageHandler.GetMessageByID)
	messages.PUT("/:id", messageHandler.UpdateMessage)
	messages.PATCH("/:id/read", messageHandler.MarkAsRead)
	messages.DELETE("/:id", messageHandler.DeleteMessage)
}
