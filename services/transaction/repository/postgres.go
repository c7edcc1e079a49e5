package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/services/transaction"
)

// PostgresTransactionRepo implements the transaction.TransactionRepo interface
type PostgresTransactionRepo struct {
	db *sqlx.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sqlx.DB) transaction.TransactionRepo {
	return &PostgresTransactionRepo{db: db}
}

// GetByTxnID retrieves a transaction by its correlation id
func (r *PostgresTransactionRepo) GetByTxnID(ctx context.Context, txnID string) (*models.Transaction, error) {
	query := `
		SELECT id, txn_id, from_user_id, to_user_id, amount, status, reason, pg_ref, created_at, updated_at
		FROM transactions
		WHERE txn_id = $1
	`

	var txn models.Transaction
	if err := r.db.GetContext(ctx, &txn, query, txnID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, transaction.ErrTxnNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}

	return &txn, nil
}

// CreateIfAbsent inserts a pending transaction unless the txn id is
// already known; the first delivery's amount/payer/payee win.
func (r *PostgresTransactionRepo) CreateIfAbsent(ctx context.Context, txn *models.Transaction) error {
	query := `
		INSERT INTO transactions (
			id, txn_id, from_user_id, to_user_id, amount, status, reason, pg_ref, created_at, updated_at
		) VALUES (
			:id, :txn_id, :from_user_id, :to_user_id, :amount, :status, :reason, :pg_ref, :created_at, :updated_at
		)
		ON CONFLICT (txn_id) DO NOTHING
	`

	if _, err := r.db.NamedExecContext(ctx, query, txn); err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}

	return nil
}

// MarkTerminal performs the terminal transition and writes the outbox
// row in one database transaction. The status='PENDING' guard serializes
// racing deliveries: only one of them ever observes rows affected = 1.
func (r *PostgresTransactionRepo) MarkTerminal(ctx context.Context, txnID string, status models.TxnStatus, reason string, outbox *models.OutboxEvent) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `
		UPDATE transactions
		SET status = $2, reason = $3, updated_at = NOW()
		WHERE txn_id = $1 AND status = $4
	`, txnID, status, reason, models.TxnStatusPending)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return false, nil
	}

	_, err = tx.NamedExecContext(ctx, `
		INSERT INTO txn_outbox (
			id, txn_id, topic, key, payload, status, attempts, created_at
		) VALUES (
			:id, :txn_id, :topic, :key, :payload, :status, :attempts, :created_at
		)
	`, outbox)
	if err != nil {
		return false, fmt.Errorf("failed to insert outbox event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return true, nil
}

// FetchPendingOutbox returns undelivered outbox rows, oldest first
func (r *PostgresTransactionRepo) FetchPendingOutbox(ctx context.Context, limit int) ([]*models.OutboxEvent, error) {
	query := `
		SELECT id, txn_id, topic, key, payload, status, attempts, created_at, delivered_at
		FROM txn_outbox
		WHERE status = $1
		ORDER BY created_at ASC
		LIMIT $2
	`

	events := []*models.OutboxEvent{}
	if err := r.db.SelectContext(ctx, &events, query, models.OutboxStatusPending, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch pending outbox events: %w", err)
	}

	return events, nil
}

// MarkOutboxDelivered records a channel-acknowledged delivery
func (r *PostgresTransactionRepo) MarkOutboxDelivered(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE txn_outbox
		SET status = $2, attempts = attempts + 1, delivered_at = NOW()
		WHERE id = $1
	`, id, models.OutboxStatusDelivered)
	if err != nil {
		return fmt.Errorf("failed to mark outbox event delivered: %w", err)
	}
	return nil
}

// RecordOutboxAttempt increments the attempt counter of a pending row
func (r *PostgresTransactionRepo) RecordOutboxAttempt(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE txn_outbox
		SET attempts = attempts + 1
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("failed to record outbox attempt: %w", err)
	}
	return nil
}
