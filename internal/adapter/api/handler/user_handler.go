package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"logisocial/internal/domain/entity"
	"logisocial/internal/usecase"
	"logisocial/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type createUserRequest struct {
	Username       string     `json:"username" validate:"required"`
	FullName       string     `json:"full_name"`
	Email          string     `json:"email" validate:"required"`
	RegisteredDate *time.Time `json:"registered_date"`
}

type updateUserRequest struct {
	Username       *string    `json:"username"`
	FullName       *string    `json:"full_name"`
	Email          *string    `json:"email"`
	RegisteredDate *time.Time `json:"registered_date"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Create(c.Request().Context(), &entity.User{
		Username:       req.Username,
		FullName:       req.FullName,
		Email:          req.Email,
		RegisteredDate: req.RegisteredDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "User created successfully", user.ID)
}

func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userUseCase.List(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, users)
}

func (h *UserHandler) GetUserByID(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	user, err := h.userUseCase.Get(c.Request().Context(), id)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, user)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	err = h.userUseCase.Update(c.Request().Context(), id, entity.UserUpdate{
		Username:       req.Username,
		FullName:       req.FullName,
		Email:          req.Email,
		RegisteredDate: req.RegisteredDate,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "User updated successfully")
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return response.Error(c, err)
	}

	if err := h.userUseCase.Delete(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Message(c, "User deleted successfully")
}
