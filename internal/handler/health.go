package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health lets load balancers and uptime monitors verify the service is
// running. It deliberately does not touch storage.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
