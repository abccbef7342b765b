package apis

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestAPIKeyAuth_DisabledWithoutKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := APIKeyAuth("")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestAPIKeyAuth_RejectsWrongKey(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("X-API-Key", "wrong")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := APIKeyAuth("secret")(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	assert.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAPIKeyAuth_SetsPrincipal(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	req.Header.Set("X-API-Key", "secret")
	req.Header.Set("X-User-ID", "7")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := APIKeyAuth("secret")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	assert.NoError(t, err)

	userID, ok := principalUserID(c)
	assert.True(t, ok)
	assert.Equal(t, 7, userID)
}
