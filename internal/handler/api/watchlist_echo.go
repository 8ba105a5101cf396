package api

import (
	"time"

	models "SmartInvest/internal/domain/models"
	"SmartInvest/internal/usecase"
	xhttp "SmartInvest/pkg/http"
	xlogger "SmartInvest/pkg/logger"

	"github.com/labstack/echo/v4"
)

type watchlistView struct {
	ID        uint   `json:"id"`
	Symbol    string `json:"symbol"`
	AssetType string `json:"asset_type"`
}

type alertView struct {
	ID          uint    `json:"id"`
	Symbol      string  `json:"symbol"`
	TargetPrice float64 `json:"target_price"`
}

// WatchlistEchoHandler serves the owner-scoped watchlist and alert CRUD.
type WatchlistEchoHandler struct {
	logger    *xlogger.Logger
	watchlist *usecase.WatchlistUseCase
}

func NewWatchlistEchoHandler(logger *xlogger.Logger, watchlist *usecase.WatchlistUseCase) *WatchlistEchoHandler {
	return &WatchlistEchoHandler{logger: logger, watchlist: watchlist}
}

func (h *WatchlistEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/market")
	g.POST("/watchlist", h.AddItem)
	g.GET("/watchlist", h.Items)
	g.POST("/alerts", h.CreateAlert)
	g.GET("/alerts", h.Alerts)
}

func (h *WatchlistEchoHandler) AddItem(c echo.Context) error {
	start := time.Now()
	req := &models.WatchlistItemCreate{}
	if verr := xhttp.Bind(c, req); verr != nil {
		return xhttp.Invalid(c, verr)
	}

	item, err := h.watchlist.AddItem(c.Request().Context(), owner(c), *req)
	if err != nil {
		return fail(c, h.logger, "watchlist_add", start, err)
	}
	return xhttp.OK(c, watchlistView{ID: item.ID, Symbol: item.Symbol, AssetType: item.AssetType})
}

func (h *WatchlistEchoHandler) Items(c echo.Context) error {
	start := time.Now()
	items, err := h.watchlist.Items(c.Request().Context(), owner(c))
	if err != nil {
		return fail(c, h.logger, "watchlist_list", start, err)
	}
	out := make([]watchlistView, 0, len(items))
	for _, it := range items {
		out = append(out, watchlistView{ID: it.ID, Symbol: it.Symbol, AssetType: it.AssetType})
	}
	return xhttp.OK(c, out)
}

func (h *WatchlistEchoHandler) CreateAlert(c echo.Context) error {
	start := time.Now()
	req := &models.AlertCreate{}
	if verr := xhttp.Bind(c, req); verr != nil {
		return xhttp.Invalid(c, verr)
	}

	alert, err := h.watchlist.CreateAlert(c.Request().Context(), owner(c), *req)
	if err != nil {
		return fail(c, h.logger, "alerts_create", start, err)
	}
	return xhttp.OK(c, alertView{ID: alert.ID, Symbol: alert.Symbol, TargetPrice: alert.TargetPrice})
}

// Alerts lists the caller's alerts with their full definition.
func (h *WatchlistEchoHandler) Alerts(c echo.Context) error {
	start := time.Now()
	alerts, err := h.watchlist.Alerts(c.Request().Context(), owner(c))
	if err != nil {
		return fail(c, h.logger, "alerts_list", start, err)
	}
	return xhttp.OK(c, alerts)
}
