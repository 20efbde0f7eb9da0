package handler

import (
	"github.com/labstack/echo/v4"

	"logisocial/internal/domain/entity"
	"logisocial/internal/usecase"
	"logisocial/pkg/response"
)

type PostHandler struct {
	postUseCase *usecase.PostUseCase
}

func NewPostHandler(postUseCase *usecase.PostUseCase) *PostHandler {
	return &PostHandler{
		postUseCase: postUseCase,
	}
}

type createPostRequest struct {
	UserID     string   `json:"userId" validate:"required"`
	ProviderID *string  `json:"providerId"`
	Title      string   `json:"title"`
	Content    string   `json:"content" validate:"required"`
	Images     []string `json:"images"`
	Tags       []string `json:"tags"`
}

type updatePostRequest struct {
	Title   *string   `json:"title"`
	Content *string   `json:"content"`
	Images  *[]string `json:"images"`
	Tags    *[]string `json:"tags"`
}

func (h *PostHandler) CreatePost(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	// An empty providerId is stored as null, the same as an absent one.
	providerID := req.ProviderID
	if providerID != nil && *providerID == "" {
		providerID = nil
	}

	post, err := h.postUseCase.Create(c.Request().Context(), &entity.Post{
		UserID:     req.UserID,
		ProviderID: providerID,
		Title:      req.Title,
		Content:    req.Content,
		Images:     req.Images,
		Tags:       req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Post created successfully", post.ID)
}

// GetPosts filters by userId, else by providerId, else lists everything.
func (h *PostHandler) GetPosts(c echo.Context) error {
	posts, err := h.postUseCase.ListPosts(c.Request().Context(), entity.PostFilter{
		UserID:     c.QueryParam("userId"),
		ProviderID: c.QueryParam("providerId"),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, posts)
}

func (h *PostHandler) GetPostByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	post, err := h.postUseCase.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, post)
}

func (h *PostHandler) UpdatePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	err = h.postUseCase.Update(c.Request().Context(), id, entity.PostUpdate{
		Title:   req.Title,
		Content: req.Content,
		Images:  req.Images,
		Tags:    req.Tags,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Post updated successfully")
}

func (h *PostHandler) LikePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.postUseCase.Like(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Post liked successfully")
}

func (h *PostHandler) DeletePost(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.postUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Post deleted successfully")
}
