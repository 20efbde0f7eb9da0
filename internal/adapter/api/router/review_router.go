package router

import (
	"github.com/labstack/echo/v4"

	"logisocial/internal/adapter/api/handler"
)

func SetupReviewRouter(api *echo.Group, reviewHandler *handler.ReviewHandler) {
	reviews := api.Group("/reviews")
	reviews.POST("", reviewHandler.CreateReview)
	reviews.GET("", reviewHandler.GetReviews)
	reviews.GET("/:id", reviewHandler.GetReviewByID)
	reviews.PUT("/:id", reviewHandler.UpdateReview)
	reviews.DELETE("/:id", reviewHandler.DeleteReview)
}
