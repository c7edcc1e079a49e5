package wallet

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/raditp/dompet/internal/pkg/models"
)

// LedgerRepo provides access to the append-only wallet ledger
type LedgerRepo interface {
	// InsertLedgerEntry appends one ledger entry. It returns false when
	// an entry for the same (txn_id, direction) already exists; the
	// uniqueness constraint in the store serializes concurrent duplicate
	// inserts, so a conflict is an idempotent no-op, never an error.
	InsertLedgerEntry(ctx context.Context, entry *models.LedgerEntry) (bool, error)

	// GetBalance derives a user's balance from the ledger
	GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error)

	// ListEntries returns a user's most recent ledger entries
	ListEntries(ctx context.Context, userID int64, limit int) ([]*models.LedgerEntry, error)
}
