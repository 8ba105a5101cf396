package api

import (
	"time"

	svcmetrics "SmartInvest/internal/service/metrics"
	"SmartInvest/internal/usecase"
	xhttp "SmartInvest/pkg/http"
	xlogger "SmartInvest/pkg/logger"

	"github.com/labstack/echo/v4"
)

type DashboardEchoHandler struct {
	logger    *xlogger.Logger
	dashboard *usecase.DashboardUseCase
}

func NewDashboardEchoHandler(logger *xlogger.Logger, dashboard *usecase.DashboardUseCase) *DashboardEchoHandler {
	return &DashboardEchoHandler{logger: logger, dashboard: dashboard}
}

func (h *DashboardEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/dashboard/overview", h.Overview)
}

func (h *DashboardEchoHandler) Overview(c echo.Context) error {
	start := time.Now()
	res, err := h.dashboard.Overview(c.Request().Context())
	if err != nil {
		return fail(c, h.logger, "dashboard", start, err)
	}
	svcmetrics.Observe("dashboard", start, "")
	return xhttp.OK(c, res)
}
