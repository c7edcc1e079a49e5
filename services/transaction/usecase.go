package transaction

import (
	"context"

	"github.com/raditp/dompet/internal/pkg/models"
)

// TransactionUC handles payment-gateway webhook reconciliation
type TransactionUC interface {
	// HandleWebhook verifies, parses and applies one webhook delivery.
	// The returned bool reports whether this call performed the terminal
	// transition (and therefore enqueued a completion event); duplicate
	// and late deliveries return false.
	HandleWebhook(ctx context.Context, rawBody []byte, signature string) (*models.Transaction, bool, error)

	// GetTransaction returns the current state of a transaction
	GetTransaction(ctx context.Context, txnID string) (*models.Transaction, error)
}
