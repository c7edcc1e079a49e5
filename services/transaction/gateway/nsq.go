package gateway

import (
	"context"
	"fmt"

	"github.com/raditp/dompet/internal/pkg/models"
	nsqpkg "github.com/raditp/dompet/internal/pkg/nsq"
	"github.com/raditp/dompet/services/transaction"
)

// NSQGateway implements the transaction.TransactionGW interface
type NSQGateway struct {
	producer *nsqpkg.Producer
}

// NewNSQGateway creates a new NSQ gateway
func NewNSQGateway(producer *nsqpkg.Producer) transaction.TransactionGW {
	return &NSQGateway{producer: producer}
}

// PublishOutbox delivers one outbox row to its topic. The payload is the
// exact bytes written to the outbox; the event is never rebuilt here.
func (g *NSQGateway) PublishOutbox(ctx context.Context, event *models.OutboxEvent) error {
	if err := g.producer.Publish(event.Topic, event.Key, event.Payload); err != nil {
		return fmt.Errorf("failed to publish outbox event %s: %w", event.ID, err)
	}
	return nil
}
