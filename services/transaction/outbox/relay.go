package outbox

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/internal/pkg/retry"
	"github.com/raditp/dompet/services/transaction"
)

// Relay drains the transactional outbox: it polls pending rows, pushes
// them to the message channel and marks them delivered only after the
// channel acknowledges the publish. Rows that fail to publish stay
// pending and are picked up again on the next poll, indefinitely, which
// gives at-least-once delivery across crashes.
type Relay struct {
	cfg     models.OutboxConfig
	repo    transaction.TransactionRepo
	gateway transaction.TransactionGW
	retrier *retry.Retrier
	logger  *logrus.Logger
}

// NewRelay creates a new outbox relay
func NewRelay(
	cfg models.OutboxConfig,
	repo transaction.TransactionRepo,
	gateway transaction.TransactionGW,
	logger *logrus.Logger,
) *Relay {
	retryCfg := retry.DefaultConfig()
	if cfg.MaxRetries > 0 {
		retryCfg.MaxRetries = cfg.MaxRetries
	}

	return &Relay{
		cfg:     cfg,
		repo:    repo,
		gateway: gateway,
		retrier: retry.New(retryCfg, logger),
		logger:  logger,
	}
}

// Run polls the outbox until the context is cancelled
func (r *Relay) Run(ctx context.Context) {
	interval := time.Duration(r.cfg.PollInterval) * time.Millisecond
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}

	r.logger.WithField("poll_interval", interval.String()).Info("Outbox relay started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Outbox relay stopped")
			return
		case <-ticker.C:
			if err := r.Drain(ctx); err != nil && ctx.Err() == nil {
				r.logger.WithError(err).Error("Outbox drain failed")
			}
		}
	}
}

// Drain publishes one batch of pending outbox rows
func (r *Relay) Drain(ctx context.Context) error {
	batchSize := r.cfg.BatchSize
	if batchSize <= 0 {
		batchSize = 50
	}

	events, err := r.repo.FetchPendingOutbox(ctx, batchSize)
	if err != nil {
		return err
	}

	for _, event := range events {
		if err := r.deliver(ctx, event); err != nil {
			r.logger.WithFields(logrus.Fields{
				"outbox_id": event.ID,
				"txn_id":    event.TxnID,
				"topic":     event.Topic,
				"attempts":  event.Attempts,
			}).WithError(err).Error("Failed to deliver outbox event, keeping pending")

			if recErr := r.repo.RecordOutboxAttempt(ctx, event.ID); recErr != nil {
				r.logger.WithError(recErr).Warn("Failed to record outbox attempt")
			}
			continue
		}

		if err := r.repo.MarkOutboxDelivered(ctx, event.ID); err != nil {
			// The message is on the channel but the row is still
			// pending, so it will be republished: consumers must (and
			// do) tolerate the duplicate.
			r.logger.WithField("outbox_id", event.ID).
				WithError(err).
				Warn("Delivered event could not be marked, duplicate delivery expected")
			continue
		}

		r.logger.WithFields(logrus.Fields{
			"outbox_id": event.ID,
			"txn_id":    event.TxnID,
			"topic":     event.Topic,
		}).Debug("Outbox event delivered")
	}

	return nil
}

func (r *Relay) deliver(ctx context.Context, event *models.OutboxEvent) error {
	return r.retrier.Execute(ctx, func(ctx context.Context) error {
		return r.gateway.PublishOutbox(ctx, event)
	})
}
