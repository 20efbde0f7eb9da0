package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"logisocial/internal/adapter/api"
	"logisocial/internal/adapter/api/handler"
	"logisocial/internal/adapter/api/middleware"
	"logisocial/pkg/config"
	"logisocial/pkg/response"
)

type Dependencies struct {
	Handlers    *handler.Handlers
	Store       middleware.StoreChecker
	RateLimit   config.RateLimitConfig
	CORSOrigins []string
}

type RouteNotFoundResponse struct {
	Error string `json:"error"`
	Path  string `json:"path"`
}

// New builds the HTTP surface: global middleware, /health, /ws and the /api resources.
func New(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = api.NewValidator()
	e.HTTPErrorHandler = errorHandler

	e.Pre(echomiddleware.RemoveTrailingSlash())

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: deps.CORSOrigins,
	}))
	e.Use(middleware.RateLimit(deps.RateLimit))
	e.Use(middleware.RequireStore(deps.Store))

	h := deps.Handlers
	SetupHealthRouter(e, h.Health)
	if h.WebSocket != nil {
		SetupWebSocketRouter(e, h.WebSocket)
	}

	apiGroup := e.Group("/api")
	SetupUserRouter(apiGroup, h.User)
	SetupLogisticProviderRouter(apiGroup, h.LogisticProvider)
	SetupReviewRouter(apiGroup, h.Review)
	SetupPostRouter(apiGroup, h.Post)
	SetupMessageRouter(apiGroup, h.Message)

	return e
}

// errorHandler only sees errors produced outside the handlers: routing misses
// and recovered panics.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var echoErr *echo.HTTPError
	if errors.As(err, &echoErr) &&
		(echoErr.Code == http.StatusNotFound || echoErr.Code == http.StatusMethodNotAllowed) {
		_ = c.JSON(http.StatusNotFound, RouteNotFoundResponse{
			Error: "Route not found",
			Path:  c.Request().URL.Path,
		})
		return
	}

	_ = response.Error(c, err)
}
