package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/raditp/dompet/internal/pkg/middleware"
	"github.com/raditp/dompet/internal/pkg/models"
	httphandler "github.com/raditp/dompet/services/transaction/handler/http"
)

// RegisterRoutes registers the transaction service routes
func RegisterRoutes(e *echo.Echo, h *httphandler.TransactionHandler, cfg *models.Config) {
	// Webhook endpoint authenticates via HMAC signature, not JWT
	e.POST("/payment/webhook", h.HandleWebhook)

	g := e.Group("/api/v1")
	g.Use(middleware.JWTAuthMiddleware(cfg.JWT))
	g.GET("/transactions/:txnId", h.GetTransaction)
}
