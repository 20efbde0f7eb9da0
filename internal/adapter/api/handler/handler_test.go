package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logisocial/internal/adapter/api"
	"logisocial/internal/testutil/memstore"
	"logisocial/internal/usecase"
	apperrors "logisocial/pkg/errors"
)

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = api.NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestParseConversation(t *testing.T) {
	conv, err := parseConversation("u1, u2")
	require.NoError(t, err)
	assert.Equal(t, "u1", conv.UserA)
	assert.Equal(t, "u2", conv.UserB)

	for _, raw := range []string{"u1", "u1,", ",u2", " , ", "u1,u2,u3"} {
		_, err := parseConversation(raw)
		assert.True(t, apperrors.Is(err, apperrors.CodeValidation), raw)
	}
}

func TestMalformedIDSkipsStore(t *testing.T) {
	store := memstore.New()
	h := NewUserHandler(usecase.NewUserUseCase(store.Users))

	c, rec := newContext(http.MethodGet, "/api/users/abc", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.GetUserByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"Invalid ID format","code":"VALIDATION_ERROR"}`, rec.Body.String())
	assert.Zero(t, store.Calls())
}

func TestCreateUserRequiresFields(t *testing.T) {
	store := memstore.New()
	h := NewUserHandler(usecase.NewUserUseCase(store.Users))

	c, rec := newContext(http.MethodPost, "/api/users", `{"username":"ana"}`)
	require.NoError(t, h.CreateUser(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"email is required","code":"VALIDATION_ERROR"}`, rec.Body.String())
	assert.Zero(t, store.Calls())
}

func TestCreateReviewRejectsNonNumericRating(t *testing.T) {
	store := memstore.New()
	h := NewReviewHandler(usecase.NewReviewUseCase(store.Reviews))

	c, rec := newContext(http.MethodPost, "/api/reviews", `{"userId":"u","providerId":"p","rating":"abc"}`)
	require.NoError(t, h.CreateReview(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, store.Calls())
}

func TestHealth(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "")
	require.NoError(t, NewHealthHandler().CheckHealth(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"OK"`)
	assert.Contains(t, rec.Body.String(), `"message":"Server is running"`)
}

func TestOriginChecker(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "http://evil.test")

	assert.True(t, originChecker([]string{"*"})(req))
	assert.False(t, originChecker([]string{"http://app.test"})(req))

	req.Header.Set("Origin", "http://app.test")
	assert.True(t, originChecker([]string{"http://app.test"})(req))

	req.Header.Del("Origin")
	assert.True(t, originChecker([]string{"http://app.test"})(req))
}
