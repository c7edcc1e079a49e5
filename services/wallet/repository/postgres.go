package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/services/wallet"
)

// PostgresLedgerRepo implements the wallet.LedgerRepo interface
type PostgresLedgerRepo struct {
	db *sqlx.DB
}

// NewLedgerRepository creates a new ledger repository
func NewLedgerRepository(db *sqlx.DB) wallet.LedgerRepo {
	return &PostgresLedgerRepo{db: db}
}

// InsertLedgerEntry appends one entry. The (txn_id, direction) unique
// constraint absorbs duplicate deliveries: the conflicting insert
// affects zero rows and the method reports false without error.
func (r *PostgresLedgerRepo) InsertLedgerEntry(ctx context.Context, entry *models.LedgerEntry) (bool, error) {
	query := `
		INSERT INTO wallet_ledger (
			id, txn_id, user_id, amount, direction, created_at
		) VALUES (
			:id, :txn_id, :user_id, :amount, :direction, :created_at
		)
		ON CONFLICT (txn_id, direction) DO NOTHING
	`

	result, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		return false, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetBalance derives a user's balance by summing their ledger entries
func (r *PostgresLedgerRepo) GetBalance(ctx context.Context, userID int64) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(CASE WHEN direction = 'CREDIT' THEN amount ELSE -amount END), 0)
		FROM wallet_ledger
		WHERE user_id = $1
	`

	var balance decimal.Decimal
	if err := r.db.GetContext(ctx, &balance, query, userID); err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}

	return balance, nil
}

// ListEntries returns a user's most recent ledger entries
func (r *PostgresLedgerRepo) ListEntries(ctx context.Context, userID int64, limit int) ([]*models.LedgerEntry, error) {
	query := `
		SELECT id, txn_id, user_id, amount, direction, created_at
		FROM wallet_ledger
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	entries := []*models.LedgerEntry{}
	if err := r.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return entries, nil
}
