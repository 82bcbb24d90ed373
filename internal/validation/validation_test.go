package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/deppfellow/expense-categories/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labelRequest struct {
	Label string `json:"label" validate:"notblank,max=8"`
	Limit int    `json:"limit" validate:"omitempty,gt=0"`
}

func (r *labelRequest) Validate() error {
	return Validator().Struct(r)
}

type customRequest struct {
	Name string `json:"name"`
}

func (r *customRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return CustomValidationErrors{{Field: "name", Message: "Category name is required"}}
	}
	return nil
}

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func requireBadRequest(t *testing.T, err error) *errs.HTTPError {
	t.Helper()

	httpErr, ok := err.(*errs.HTTPError)
	require.True(t, ok, "expected *errs.HTTPError, got %T", err)
	assert.Equal(t, http.StatusBadRequest, httpErr.Status)
	return httpErr
}

func TestBindAndValidate(t *testing.T) {
	req := &labelRequest{}
	require.NoError(t, BindAndValidate(newContext(`{"label":"food","limit":3}`), req))
	assert.Equal(t, "food", req.Label)
	assert.Equal(t, 3, req.Limit)
}

func TestBindAndValidateTagErrors(t *testing.T) {
	httpErr := requireBadRequest(t, BindAndValidate(newContext(`{"label":"   ","limit":-1}`), &labelRequest{}))

	assert.Equal(t, "Validation failed", httpErr.Message)
	assert.ElementsMatch(t, []errs.FieldError{
		{Field: "label", Error: "is required"},
		{Field: "limit", Error: "must be greater than 0"},
	}, httpErr.Errors)
}

func TestBindAndValidateMaxLength(t *testing.T) {
	httpErr := requireBadRequest(t, BindAndValidate(newContext(`{"label":"groceries!"}`), &labelRequest{}))

	require.Len(t, httpErr.Errors, 1)
	assert.Equal(t, "must not exceed 8 characters", httpErr.Errors[0].Error)
}

func TestBindAndValidateCustomError(t *testing.T) {
	httpErr := requireBadRequest(t, BindAndValidate(newContext(`{"name":""}`), &customRequest{}))

	assert.Equal(t, "Category name is required", httpErr.Message)
	assert.Equal(t, []errs.FieldError{{Field: "name", Error: "Category name is required"}}, httpErr.Errors)
}

func TestBindAndValidateMalformedBody(t *testing.T) {
	httpErr := requireBadRequest(t, BindAndValidate(newContext(`{"name":`), &customRequest{}))

	assert.NotEmpty(t, httpErr.Message)
	assert.Empty(t, httpErr.Errors)
}

func TestCustomValidationErrorsMessage(t *testing.T) {
	one := CustomValidationErrors{{Field: "id", Message: "Category ID is required"}}
	assert.Equal(t, "Category ID is required", one.Error())

	two := append(one, CustomValidationError{Field: "name", Message: "Category name is required"})
	assert.Equal(t, "Validation failed", two.Error())
}
