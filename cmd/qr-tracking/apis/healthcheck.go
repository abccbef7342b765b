package apis

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type HealthCheckAPI struct {
	serviceName string
}

func NewHealthCheckAPI(serviceName string) *HealthCheckAPI {
	return &HealthCheckAPI{
		serviceName: serviceName,
	}
}

func (a *HealthCheckAPI) Setup(g *echo.Group) {
	g.GET("/health", a.healthCheck)
}

func (a *HealthCheckAPI) healthCheck(c echo.Context) error {

	return c.JSON(
		http.StatusOK,
		map[string]string{
			"status":  "healthy",
			"service": a.serviceName,
		},
	)
}
