package transaction

import (
	"context"

	"github.com/raditp/dompet/internal/pkg/models"
)

// TransactionGW publishes outbox rows to the message channel
type TransactionGW interface {
	// PublishOutbox delivers one outbox row to its topic, keyed by the
	// correlation id. An error means the channel did not acknowledge the
	// message and the row must stay pending.
	PublishOutbox(ctx context.Context, event *models.OutboxEvent) error
}
