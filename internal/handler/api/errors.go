package api

import (
	"time"

	models "SmartInvest/internal/domain/models"
	svcmetrics "SmartInvest/internal/service/metrics"
	xhttp "SmartInvest/pkg/http"
	xlogger "SmartInvest/pkg/logger"
	"SmartInvest/pkg/util"

	"github.com/labstack/echo/v4"
)

const (
	ownerHeader  = "X-User-ID"
	defaultOwner = "anonymous"
)

// owner identifies the caller for watchlist scoping. There is no authentication.
func owner(c echo.Context) string {
	return util.StringDefault(c.Request().Header.Get(ownerHeader), defaultOwner)
}

// fail maps a usecase error onto the response envelope and records endpoint metrics.
func fail(c echo.Context, l *xlogger.Logger, endpoint string, start time.Time, err error) error {
	if models.IsPipelineError(err) {
		svcmetrics.Observe(endpoint, start, "not_found")
		return xhttp.Fail(c, xhttp.NotFound(err.Error()).Wrap(err))
	}

	svcmetrics.Observe(endpoint, start, "internal")
	l.Error("request failed",
		xlogger.String("endpoint", endpoint),
		xlogger.Error(err),
	)
	return xhttp.Fail(c, err)
}
