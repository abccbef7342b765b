package apis

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestHealthCheckAPI_ReportsServiceName(t *testing.T) {
	e := echo.New()
	c, rec := newJSONContext(e, http.MethodGet, "/health", "")

	api := NewHealthCheckAPI("qr-tracking-service")

	err := api.healthCheck(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload map[string]string
	err = json.Unmarshal(rec.Body.Bytes(), &payload)
	assert.NoError(t, err)
	assert.Equal(t, "healthy", payload["status"])
	assert.Equal(t, "qr-tracking-service", payload["service"])
}
