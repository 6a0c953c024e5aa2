package validation

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/shoplist/internal/errs"
)

type pageRequest struct {
	Page int `param:"page" validate:"gte=1"`
	Size int `query:"size" validate:"gte=0,max=100"`
}

func (r *pageRequest) Validate() error {
	return Validator.Struct(r)
}

type customRequest struct{}

func (r *customRequest) Validate() error {
	return CustomValidationErrors{{Field: "name", Message: "must not be blank"}}
}

func newContext(method, target, body string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestBindAndValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c := newContext(http.MethodGet, "/?size=6", "")
		c.SetParamNames("page")
		c.SetParamValues("2")

		req := &pageRequest{}
		require.NoError(t, BindAndValidate(c, req))
		assert.Equal(t, 2, req.Page)
		assert.Equal(t, 6, req.Size)
	})

	t.Run("tag failure", func(t *testing.T) {
		c := newContext(http.MethodGet, "/?size=500", "")
		c.SetParamNames("page")
		c.SetParamValues("1")

		err := BindAndValidate(c, &pageRequest{})
		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		require.Len(t, httpErr.Errors, 1)
		assert.Equal(t, "size", httpErr.Errors[0].Field)
		assert.Equal(t, "must not exceed 100", httpErr.Errors[0].Error)
	})

	t.Run("bind failure", func(t *testing.T) {
		c := newContext(http.MethodGet, "/", "")
		c.SetParamNames("page")
		c.SetParamValues("two")

		err := BindAndValidate(c, &pageRequest{})
		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Status)
		assert.Empty(t, httpErr.Errors)
	})

	t.Run("custom errors", func(t *testing.T) {
		c := newContext(http.MethodGet, "/", "")

		err := BindAndValidate(c, &customRequest{})
		var httpErr *errs.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, []errs.FieldError{{Field: "name", Error: "must not be blank"}}, httpErr.Errors)
	})
}

func TestToSnakeCase(t *testing.T) {
	assert.Equal(t, "date_added", toSnakeCase("DateAdded"))
	assert.Equal(t, "id", toSnakeCase("ID"))
	assert.Equal(t, "name", toSnakeCase("Name"))
}
