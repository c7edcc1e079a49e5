package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/raditp/dompet/internal/pkg/middleware"
	"github.com/raditp/dompet/internal/pkg/models"
	httphandler "github.com/raditp/dompet/services/wallet/handler/http"
)

// RegisterRoutes registers the wallet service routes
func RegisterRoutes(e *echo.Echo, h *httphandler.WalletHandler, cfg *models.Config) {
	g := e.Group("/api/v1")
	g.Use(middleware.JWTAuthMiddleware(cfg.JWT))
	g.GET("/wallet/:userId/balance", h.GetBalance)
	g.GET("/wallet/:userId/ledger", h.ListEntries)
}
