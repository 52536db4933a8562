package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/devops/pipeline-v1/internal/model"
)

// Health is the health‑check endpoint used by load balancers and deployment
// pipelines.  It returns a JSON HealthStatus whose timestamp is read from the
// clock on every call, so two calls never share a cached value.
func Health(c echo.Context) error {
	return HealthAt(time.Now)(c)
}

// HealthAt builds a health handler that reads the time from now.
func HealthAt(now func() time.Time) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, model.NewHealthStatus(now()))
	}
}
