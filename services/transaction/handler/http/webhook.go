package http

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/raditp/dompet/internal/utils"
	"github.com/raditp/dompet/services/transaction"
)

// TransactionHandler handles HTTP requests for the transaction service
type TransactionHandler struct {
	transactionUC   transaction.TransactionUC
	signatureHeader string
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionUC transaction.TransactionUC, signatureHeader string) *TransactionHandler {
	if signatureHeader == "" {
		signatureHeader = "X-PG-Signature"
	}
	return &TransactionHandler{
		transactionUC:   transactionUC,
		signatureHeader: signatureHeader,
	}
}

// HandleWebhook processes payment-gateway callbacks. The body is read
// raw and passed through untouched: the signature covers these exact
// bytes. Echo's binding is deliberately not used here.
func (h *TransactionHandler) HandleWebhook(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return utils.BadRequestResponse(c, "Failed to read request body")
	}

	signature := c.Request().Header.Get(h.signatureHeader)
	if signature == "" {
		return utils.UnauthorizedResponse(c, "Missing signature header")
	}

	txn, emitted, err := h.transactionUC.HandleWebhook(c.Request().Context(), rawBody, signature)
	if err != nil {
		switch {
		case errors.Is(err, transaction.ErrInvalidSignature):
			return utils.UnauthorizedResponse(c, "Invalid signature")
		case errors.Is(err, transaction.ErrMalformedPayload):
			return utils.BadRequestResponse(c, "Malformed payload")
		default:
			// 5xx tells the gateway to retry; retries are safe because
			// terminal transactions ignore further deliveries.
			return utils.InternalServerErrorResponse(c, "Failed to process webhook")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Webhook processed", map[string]interface{}{
		"txn_id":  txn.TxnID,
		"status":  txn.Status,
		"emitted": emitted,
	})
}

// GetTransaction returns the current state of a transaction
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	txnID := c.Param("txnId")
	if txnID == "" {
		return utils.BadRequestResponse(c, "txnId is required")
	}

	txn, err := h.transactionUC.GetTransaction(c.Request().Context(), txnID)
	if err != nil {
		if errors.Is(err, transaction.ErrTxnNotFound) {
			return utils.NotFoundResponse(c, "Transaction not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to get transaction")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Transaction found", txn)
}
