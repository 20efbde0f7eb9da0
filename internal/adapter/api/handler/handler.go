package handler

import (
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"logisocial/pkg/objectid"
)

// Handlers is everything the router mounts.
type Handlers struct {
	User             *UserHandler
	LogisticProvider *LogisticProviderHandler
	Review           *ReviewHandler
	Post             *PostHandler
	Message          *MessageHandler
	Health           *HealthHandler
	WebSocket        *WebSocketHandler
}

// pathID parses the :id route parameter. A malformed id never reaches the store.
func pathID(c echo.Context) (primitive.ObjectID, error) {
	return objectid.Parse(c.Param("id"))
}
