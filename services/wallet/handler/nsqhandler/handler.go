package nsqhandler

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/raditp/dompet/internal/pkg/models"
	nsqpkg "github.com/raditp/dompet/internal/pkg/nsq"
	"github.com/raditp/dompet/services/wallet"
)

// LedgerHandler consumes transaction completion events and feeds them
// into the wallet use case.
type LedgerHandler struct {
	walletUC wallet.WalletUC
	logger   *logrus.Logger
}

// NewLedgerHandler creates a new ledger event handler
func NewLedgerHandler(walletUC wallet.WalletUC, logger *logrus.Logger) *LedgerHandler {
	return &LedgerHandler{
		walletUC: walletUC,
		logger:   logger,
	}
}

// HandleCompletionEvent processes one delivery of a completion event.
// Only transient failures are returned for requeue; a message that can
// never be applied (bad JSON, invalid fields) is logged and finished,
// requeueing it would loop forever.
func (h *LedgerHandler) HandleCompletionEvent(body []byte) error {
	var event models.TxnCompletedEvent
	if err := nsqpkg.UnmarshalMessage(body, &event); err != nil {
		h.logger.WithError(err).Error("Dropping undecodable completion event")
		return nil
	}

	if err := h.walletUC.Apply(context.Background(), &event); err != nil {
		if errors.Is(err, wallet.ErrInvalidEvent) {
			h.logger.WithFields(logrus.Fields{
				"request_id": event.RequestID,
			}).WithError(err).Error("Dropping invalid completion event")
			return nil
		}
		return err
	}

	return nil
}
