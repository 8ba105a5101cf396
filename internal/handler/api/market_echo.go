package api

import (
	"time"

	models "SmartInvest/internal/domain/models"
	domrepo "SmartInvest/internal/domain/repository"
	svcmetrics "SmartInvest/internal/service/metrics"
	"SmartInvest/internal/usecase"
	xhttp "SmartInvest/pkg/http"
	xlogger "SmartInvest/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketEchoHandler serves the prediction, recommendation and insight endpoints.
type MarketEchoHandler struct {
	logger *xlogger.Logger
	market *usecase.MarketService
}

func NewMarketEchoHandler(logger *xlogger.Logger, market *usecase.MarketService) *MarketEchoHandler {
	return &MarketEchoHandler{logger: logger, market: market}
}

func (h *MarketEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/market")
	g.POST("/predict", h.Predict)
	g.POST("/recommend", h.Recommend)
	g.POST("/insights", h.Insights)
}

func (h *MarketEchoHandler) Predict(c echo.Context) error {
	start := time.Now()
	req := &models.PredictionRequest{}
	if verr := xhttp.Bind(c, req); verr != nil {
		return xhttp.Invalid(c, verr)
	}

	res, err := h.market.Predict(c.Request().Context(), req.Symbol, domrepo.AssetType(req.AssetType))
	if err != nil {
		return fail(c, h.logger, "predict", start, err)
	}
	svcmetrics.Observe("predict", start, "")
	return xhttp.OK(c, res)
}

func (h *MarketEchoHandler) Recommend(c echo.Context) error {
	start := time.Now()
	req := &models.PredictionRequest{}
	if verr := xhttp.Bind(c, req); verr != nil {
		return xhttp.Invalid(c, verr)
	}

	res, err := h.market.Recommend(c.Request().Context(), req.Symbol, domrepo.AssetType(req.AssetType))
	if err != nil {
		return fail(c, h.logger, "recommend", start, err)
	}
	svcmetrics.Observe("recommend", start, "")
	return xhttp.OK(c, res)
}

func (h *MarketEchoHandler) Insights(c echo.Context) error {
	start := time.Now()
	req := &models.PredictionRequest{}
	if verr := xhttp.Bind(c, req); verr != nil {
		return xhttp.Invalid(c, verr)
	}

	res, err := h.market.Insights(c.Request().Context(), req.Symbol, domrepo.AssetType(req.AssetType))
	if err != nil {
		return fail(c, h.logger, "insights", start, err)
	}
	svcmetrics.Observe("insights", start, "")
	return xhttp.OK(c, res)
}
