package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"logisocial/internal/domain/entity"
	"logisocial/internal/usecase"
	"logisocial/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

// Rating is an int so a string or fractional value fails at bind time. The
// range is enforced by the use case.
type createReviewRequest struct {
	UserID     string     `json:"userId" validate:"required"`
	ProviderID string     `json:"providerId" validate:"required"`
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Rating     int        `json:"rating" validate:"required"`
	CreatedAt  *time.Time `json:"created_at"`
}

type updateReviewRequest struct {
	UserID     *string    `json:"userId"`
	ProviderID *string    `json:"providerId"`
	Title      *string    `json:"title"`
	Content    *string    `json:"content"`
	Rating     *int       `json:"rating"`
	CreatedAt  *time.Time `json:"created_at"`
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Create(c.Request().Context(), &entity.Review{
		UserID:     req.UserID,
		ProviderID: req.ProviderID,
		Title:      req.Title,
		Content:    req.Content,
		Rating:     req.Rating,
		CreatedAt:  req.CreatedAt,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Review created successfully", review.ID)
}

func (h *ReviewHandler) GetReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) GetReviewByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, review)
}

func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	err = h.reviewUseCase.Update(c.Request().Context(), id, entity.ReviewUpdate{
		UserID:     req.UserID,
		ProviderID: req.ProviderID,
		Title:      req.Title,
		Content:    req.Content,
		Rating:     req.Rating,
		CreatedAt:  req.CreatedAt,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Review updated successfully")
}

func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.reviewUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "Review deleted successfully")
}
