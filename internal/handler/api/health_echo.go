package api

import (
	"fmt"

	xhttp "SmartInvest/pkg/http"

	"github.com/labstack/echo/v4"
)

type HealthEchoHandler struct {
	appName string
}

func NewHealthEchoHandler(appName string) *HealthEchoHandler {
	return &HealthEchoHandler{appName: appName}
}

func (h *HealthEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/", h.Root)
	e.GET("/healthz", h.Health)
}

func (h *HealthEchoHandler) Root(c echo.Context) error {
	return xhttp.OK(c, map[string]string{"message": fmt.Sprintf("%s backend is running", h.appName)})
}

func (h *HealthEchoHandler) Health(c echo.Context) error {
	return xhttp.OK(c, map[string]string{"status": "ok"})
}
