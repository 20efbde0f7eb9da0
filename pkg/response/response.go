package response

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "logisocial/pkg/errors"
	"logisocial/pkg/logger"
)

type ErrorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

type MessageBody struct {
	Message string `json:"message"`
}

type CreatedBody struct {
	Message string      `json:"message"`
	ID      interface{} `json:"id"`
}

func Success(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, message string, id interface{}) error {
	return c.JSON(http.StatusCreated, CreatedBody{Message: message, ID: id})
}

func Message(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageBody{Message: message})
}

// Error converts any failure into one of the public error shapes. Causes of
// 5xx responses are logged here and never serialized.
func Error(c echo.Context, err error) error {
	var validationErr validator.ValidationErrors
	if errors.As(err, &validationErr) {
		return handleValidationError(c, validationErr)
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Status >= http.StatusInternalServerError {
			logger.ErrorWithCause(appErr.Err, "%s %s: %s", c.Request().Method, c.Path(), appErr.Message)
			return c.JSON(appErr.Status, ErrorBody{Error: publicMessage(appErr.Status), Code: appErr.Code})
		}
		return c.JSON(appErr.Status, ErrorBody{Error: appErr.Message, Code: appErr.Code})
	}

	// Bind failures: malformed JSON, a value of the wrong type or a missing
	// or unsupported content type. All of them are a bad request.
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code >= 400 && httpErr.Code < 500 {
		return c.JSON(http.StatusBadRequest, ErrorBody{
			Error: "Invalid request body",
			Code:  apperrors.CodeValidation,
		})
	}

	logger.ErrorWithCause(err, "%s %s: unhandled error", c.Request().Method, c.Path())
	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Error: publicMessage(http.StatusInternalServerError),
		Code:  apperrors.CodeInternal,
	})
}

func publicMessage(status int) string {
	if status == http.StatusServiceUnavailable {
		return "Database not connected"
	}
	return "Internal server error"
}

func handleValidationError(c echo.Context, validationErr validator.ValidationErrors) error {
	for _, err := range validationErr {
		field := err.Field()
		param := err.Param()

		var message string
		switch err.Tag() {
		case "required":
			message = field + " is required"
		case "min":
			message = field + " must be at least " + param
		case "max":
			message = field + " must be at most " + param
		case "oneof":
			message = field + " must be one of: " + strings.ReplaceAll(param, " ", ", ")
		default:
			message = field + " is invalid"
		}

		return c.JSON(http.StatusBadRequest, ErrorBody{
			Error: message,
			Code:  apperrors.CodeValidation,
		})
	}

	return c.JSON(http.StatusBadRequest, ErrorBody{
		Error: "Invalid input data",
		Code:  apperrors.CodeValidation,
	})
}
