package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "logisocial/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/users/1", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorBody {
	t.Helper()
	var body ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestErrorMapsAppErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"bad request", apperrors.BadRequest("Invalid ID format", nil), http.StatusBadRequest, apperrors.CodeValidation, "Invalid ID format"},
		{"not found", apperrors.NotFound("User", nil), http.StatusNotFound, apperrors.CodeNotFound, "User not found"},
		{"internal hides cause", apperrors.Internal("Failed to get user", fmt.Errorf("socket closed")), http.StatusInternalServerError, apperrors.CodeInternal, "Internal server error"},
		{"unavailable", apperrors.ServiceUnavailable("no client", nil), http.StatusServiceUnavailable, apperrors.CodeServiceUnavailable, "Database not connected"},
		{"plain error", fmt.Errorf("boom"), http.StatusInternalServerError, apperrors.CodeInternal, "Internal server error"},
		{"bind error", echo.NewHTTPError(http.StatusBadRequest, "unmarshal"), http.StatusBadRequest, apperrors.CodeValidation, "Invalid request body"},
		{"unsupported media type", echo.ErrUnsupportedMediaType, http.StatusBadRequest, apperrors.CodeValidation, "Invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()
			require.NoError(t, Error(c, tt.err))

			assert.Equal(t, tt.status, rec.Code)
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.Equal(t, tt.msg, body.Error)
			assert.NotContains(t, rec.Body.String(), "socket closed")
		})
	}
}

func TestCreated(t *testing.T) {
	c, rec := newContext()
	require.NoError(t, Created(c, "User created successfully", "507f1f77bcf86cd799439011"))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"message":"User created successfully","id":"507f1f77bcf86cd799439011"}`, rec.Body.String())
}
