package router

import (
	"github.com/labstack/echo/v4"

	"logisocial/internal/adapter/api/handler"
)

func SetupPostRouter(api *echo.Group, postHandler *handler.PostHandler) {
	posts := api.Group("/posts")
	posts.POST("", postHandler.CreatePost)
	posts.GET("", postHandler.GetPosts)
	posts.GET("/:id", postHandler.GetPostByID)
	posts.PUT("/:id", postHandler.UpdatePost)
	posts.POST("/:id/like", postHandler.LikePost)
	posts.DELETE("/:id", postHandler.DeletePost)
}
