package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/raditp/dompet/internal/pkg/constants"
	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/services/wallet"
)

const appliedMarkerTTL = 24 * time.Hour

// WalletUC implements the wallet.WalletUC interface
type WalletUC struct {
	repo   wallet.LedgerRepo
	cache  wallet.AppliedCache
	logger *logrus.Logger
}

// NewWalletUC creates a new wallet use case
func NewWalletUC(repo wallet.LedgerRepo, cache wallet.AppliedCache, logger *logrus.Logger) wallet.WalletUC {
	return &WalletUC{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Apply turns one completion-event delivery into at most one ledger
// entry. Duplicates are resolved in two layers: a redis marker as the
// cheap fast path and the ledger's (txn_id, direction) uniqueness
// constraint as the authoritative one.
func (uc *WalletUC) Apply(ctx context.Context, event *models.TxnCompletedEvent) error {
	if event.RequestID == "" {
		return fmt.Errorf("%w: missing requestId", wallet.ErrInvalidEvent)
	}

	if !event.Success {
		uc.logger.WithFields(logrus.Fields{
			"request_id": event.RequestID,
			"reason":     event.Reason,
		}).Info("Received failed transaction event, no ledger effect")
		return nil
	}

	if !event.Amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", wallet.ErrInvalidEvent)
	}

	key := fmt.Sprintf(constants.KeyLedgerApplied, event.RequestID)
	if uc.cache != nil {
		if applied, err := uc.cache.Exists(ctx, key); err == nil && applied {
			uc.logger.WithField("request_id", event.RequestID).
				Debug("Event already applied (cache hit), skipping")
			return nil
		}
	}

	entry := models.CreditEntry(event.RequestID, event.ToUserID, event.Amount)

	inserted, err := uc.repo.InsertLedgerEntry(ctx, entry)
	if err != nil {
		// Transient: the caller requeues, and the constraint keeps the
		// redelivery safe.
		return fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	if inserted {
		uc.logger.WithFields(logrus.Fields{
			"request_id": event.RequestID,
			"user_id":    event.ToUserID,
			"amount":     event.Amount.String(),
		}).Info("Ledger entry created")
	} else {
		uc.logger.WithField("request_id", event.RequestID).
			Info("Ledger entry already exists, duplicate delivery ignored")
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, "1", appliedMarkerTTL); err != nil {
			uc.logger.WithError(err).Debug("Failed to set applied marker")
		}
	}

	return nil
}

// GetBalance returns a user's current balance
func (uc *WalletUC) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	return uc.repo.GetBalance(ctx, userID)
}

// ListEntries returns a user's most recent ledger entries
func (uc *WalletUC) ListEntries(ctx context.Context, userID int64, limit int) ([]*models.LedgerEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return uc.repo.ListEntries(ctx, userID, limit)
}
