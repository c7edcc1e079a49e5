package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/raditp/dompet/internal/utils"
	"github.com/raditp/dompet/services/wallet"
)

// WalletHandler handles HTTP requests for the wallet service
type WalletHandler struct {
	walletUC wallet.WalletUC
}

// NewWalletHandler creates a new wallet handler
func NewWalletHandler(walletUC wallet.WalletUC) *WalletHandler {
	return &WalletHandler{walletUC: walletUC}
}

// GetBalance returns a user's current balance
func (h *WalletHandler) GetBalance(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "userId must be an integer")
	}

	balance, err := h.walletUC.GetBalance(c.Request().Context(), userID)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to get balance")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Balance retrieved", map[string]interface{}{
		"user_id": userID,
		"balance": balance,
	})
}

// ListEntries returns a user's most recent ledger entries
func (h *WalletHandler) ListEntries(c echo.Context) error {
	userID, err := strconv.ParseInt(c.Param("userId"), 10, 64)
	if err != nil {
		return utils.BadRequestResponse(c, "userId must be an integer")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "limit must be an integer")
		}
	}

	entries, err := h.walletUC.ListEntries(c.Request().Context(), userID, limit)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list ledger entries")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Ledger entries retrieved", entries)
}
