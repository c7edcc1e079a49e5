package transaction

import (
	"context"

	"github.com/google/uuid"

	"github.com/raditp/dompet/internal/pkg/models"
)

// TransactionRepo provides access to the transaction store and its
// outbox. The transaction record for a correlation id is mutated only
// through these methods.
type TransactionRepo interface {
	// GetByTxnID returns the transaction for a correlation id, or
	// ErrTxnNotFound.
	GetByTxnID(ctx context.Context, txnID string) (*models.Transaction, error)

	// CreateIfAbsent inserts a new pending transaction unless one
	// already exists for the same txn id (first write wins).
	CreateIfAbsent(ctx context.Context, txn *models.Transaction) error

	// MarkTerminal moves a pending transaction to a terminal status and
	// writes the outbox row in the same database transaction. It returns
	// false when the row was no longer pending, in which case nothing is
	// written.
	MarkTerminal(ctx context.Context, txnID string, status models.TxnStatus, reason string, outbox *models.OutboxEvent) (bool, error)

	// FetchPendingOutbox returns undelivered outbox rows, oldest first
	FetchPendingOutbox(ctx context.Context, limit int) ([]*models.OutboxEvent, error)

	// MarkOutboxDelivered records a channel-acknowledged delivery
	MarkOutboxDelivered(ctx context.Context, id uuid.UUID) error

	// RecordOutboxAttempt increments the attempt counter of a row that
	// failed to publish; the row stays pending for the next poll.
	RecordOutboxAttempt(ctx context.Context, id uuid.UUID) error
}
