package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-signup/internal/config"
	"github.com/deppfellow/go-signup/internal/errs"
	"github.com/deppfellow/go-signup/internal/server"
)

func newTestGlobal() *GlobalMiddlewares {
	log := zerolog.Nop()
	return NewGlobalMiddlewares(&server.Server{
		Config: &config.Config{Primary: config.Primary{Env: "test"}},
		Logger: &log,
	})
}

func renderError(t *testing.T, method string, err error) (int, errs.HTTPError) {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(method, "/", nil), rec)

	newTestGlobal().GlobalErrorHandler(err, c)

	var body errs.HTTPError
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body
}

func TestGlobalErrorHandlerHTTPError(t *testing.T) {
	code := "EMAIL_ALREADY_EXISTS"
	status, body := renderError(t, http.MethodPost, errs.NewBadRequestError("Email address already exists!", true, &code, nil))

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", body.Code)
	assert.Equal(t, "Email address already exists!", body.Message)
}

func TestGlobalErrorHandlerEchoErrors(t *testing.T) {
	status, body := renderError(t, http.MethodGet, echo.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Route not found", body.Message)

	status, body = renderError(t, http.MethodGet, echo.ErrMethodNotAllowed)
	assert.Equal(t, http.StatusMethodNotAllowed, status)
	assert.Equal(t, "METHOD_NOT_ALLOWED", body.Code)
}

func TestGlobalErrorHandlerDatabaseErrors(t *testing.T) {
	status, body := renderError(t, http.MethodPost, &pgconn.PgError{
		Code:           "23505",
		TableName:      "users",
		ConstraintName: "users_email_address_key",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "USER_ALREADY_EXISTS", body.Code)
	assert.Equal(t, "A User with this Email Address already exists", body.Message)

	status, body = renderError(t, http.MethodPost, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", body.Code)
	assert.Empty(t, body.Detail)
}

func TestToHTTPErrorUnwrapsDatabaseErrors(t *testing.T) {
	wrapped := fmt.Errorf("creating user: %w", &pgconn.PgError{
		Code:           "23505",
		TableName:      "users",
		ConstraintName: "users_email_address_key",
	})

	httpErr := toHTTPError(wrapped)
	require.NotNil(t, httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.Equal(t, "USER_ALREADY_EXISTS", httpErr.Code)

	httpErr = toHTTPError(errors.New("boom"))
	require.NotNil(t, httpErr)
	assert.Equal(t, http.StatusInternalServerError, httpErr.Status)
}

func TestGlobalErrorHandlerHead(t *testing.T) {
	status, body := renderError(t, http.MethodHead, echo.ErrNotFound)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Empty(t, body.Code)
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusUnprocessableEntity, errorStatus(errs.NewUnprocessableEntityError("Validation failed", nil)))
	assert.Equal(t, http.StatusNotFound, errorStatus(echo.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(errors.New("boom")))
}

func TestRequestID(t *testing.T) {
	e := echo.New()
	var seen string
	h := RequestID()(func(c echo.Context) error {
		seen = GetRequestID(c)
		return nil
	})

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}

func TestEnhanceContextStoresRequestLogger(t *testing.T) {
	log := zerolog.New(zerolog.NewTestWriter(t))
	enhancer := NewContextEnhancer(&server.Server{Logger: &log})

	var fromEcho, fromRequest *zerolog.Logger
	h := RequestID()(enhancer.EnhanceContext()(func(c echo.Context) error {
		fromEcho = GetLogger(c)
		fromRequest = zerolog.Ctx(c.Request().Context())
		return nil
	}))

	require.NoError(t, h(echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())))
	require.NotNil(t, fromEcho)
	assert.NotEqual(t, zerolog.Disabled, fromEcho.GetLevel())
	assert.NotEqual(t, zerolog.Disabled, fromRequest.GetLevel())
}

func TestGetLoggerFallsBackToNop(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	assert.Equal(t, zerolog.Disabled, GetLogger(c).GetLevel())
}
