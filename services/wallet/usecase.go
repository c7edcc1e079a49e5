package wallet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raditp/dompet/internal/pkg/models"
)

// WalletUC applies transaction outcomes to the wallet ledger
type WalletUC interface {
	// Apply processes one delivery of a completion event. Deliveries are
	// at-least-once: Apply must converge to exactly one balance effect
	// per successful transaction no matter how often it is called.
	Apply(ctx context.Context, event *models.TxnCompletedEvent) error

	// GetBalance returns a user's current balance
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)

	// ListEntries returns a user's most recent ledger entries
	ListEntries(ctx context.Context, userID int64, limit int) ([]*models.LedgerEntry, error)
}

// AppliedCache is a best-effort fast path for duplicate detection. The
// ledger's uniqueness constraint is the correctness backstop; cache
// errors are ignored.
type AppliedCache interface {
	Exists(ctx context.Context, key string) (bool, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}
