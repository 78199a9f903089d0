package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/go-signup/internal/errs"
)

type profilePayload struct {
	Name  string `json:"name" form:"name" validate:"required,min=3"`
	Email string `json:"email" form:"email" validate:"required,email"`
}

func (p *profilePayload) Validate() error {
	return Struct(p)
}

func (p *profilePayload) Sanitize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = NormalizeEmail(strings.TrimSpace(p.Email))
}

func (p *profilePayload) ValidationMessages() map[string]string {
	return map[string]string{
		"name.min": "too short",
	}
}

type customPayload struct{}

func (customPayload) Validate() error {
	return CustomValidationErrors{{Field: "range", Message: "start must precede end"}}
}

func newContext(contentType, body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, contentType)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidateSuccess(t *testing.T) {
	c := newContext(echo.MIMEApplicationJSON, `{"name":"  Ann  ","email":" Ann@X.com "}`)
	payload := &profilePayload{}

	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "Ann", payload.Name)
	assert.Equal(t, "ann@x.com", payload.Email)
}

func TestBindAndValidateFormBody(t *testing.T) {
	c := newContext(echo.MIMEApplicationForm, "name=Ann&email=ann%40x.com")
	payload := &profilePayload{}

	require.NoError(t, BindAndValidate(c, payload))
	assert.Equal(t, "ann@x.com", payload.Email)
}

func TestBindAndValidateFieldErrors(t *testing.T) {
	c := newContext(echo.MIMEApplicationJSON, `{"name":" An ","email":"nope"}`)

	err := BindAndValidate(c, &profilePayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.Equal(t, []errs.FieldError{
		{Field: "name", Message: "too short"},
		{Field: "email", Message: "must be a valid email address"},
	}, httpErr.Errors)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	c := newContext(echo.MIMEApplicationJSON, `{"name":`)

	err := BindAndValidate(c, &profilePayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestBindAndValidateCustomErrors(t *testing.T) {
	c := newContext(echo.MIMEApplicationJSON, `{}`)

	err := BindAndValidate(c, &customPayload{})

	var httpErr *errs.HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, http.StatusUnprocessableEntity, httpErr.Status)
	assert.Equal(t, []errs.FieldError{{Field: "range", Message: "start must precede end"}}, httpErr.Errors)
}
