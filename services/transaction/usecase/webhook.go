package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/raditp/dompet/internal/pkg/constants"
	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/services/transaction"
)

// TransactionUC implements the transaction.TransactionUC interface
type TransactionUC struct {
	cfg      *models.Config
	verifier transaction.SignatureVerifier
	repo     transaction.TransactionRepo
	mapper   *statusMapper
	logger   *logrus.Logger
}

// NewTransactionUC creates a new transaction use case
func NewTransactionUC(
	cfg *models.Config,
	verifier transaction.SignatureVerifier,
	repo transaction.TransactionRepo,
	logger *logrus.Logger,
) transaction.TransactionUC {
	return &TransactionUC{
		cfg:      cfg,
		verifier: verifier,
		repo:     repo,
		mapper:   newStatusMapper(cfg.Gateway),
		logger:   logger,
	}
}

// HandleWebhook processes one payment-gateway callback delivery.
//
// Deliveries may arrive duplicated, reordered or retried; the terminal
// guard makes every delivery after the first terminal one a no-op, so
// telling the gateway to retry on a persistence error is always safe.
func (uc *TransactionUC) HandleWebhook(ctx context.Context, rawBody []byte, signature string) (*models.Transaction, bool, error) {
	payload, err := uc.verifier.ParseAndVerify(rawBody, signature)
	if err != nil {
		return nil, false, err
	}

	if payload.TxnID == "" {
		return nil, false, fmt.Errorf("%w: missing txnId", transaction.ErrMalformedPayload)
	}
	if !payload.Amount.IsPositive() {
		return nil, false, fmt.Errorf("%w: amount must be positive", transaction.ErrMalformedPayload)
	}

	// First delivery for an unseen txn id creates the pending record;
	// amount/payer/payee are immutable facts, first write wins.
	now := time.Now()
	if err := uc.repo.CreateIfAbsent(ctx, &models.Transaction{
		ID:         uuid.New(),
		TxnID:      payload.TxnID,
		FromUserID: payload.FromUserID,
		ToUserID:   payload.ToUserID,
		Amount:     payload.Amount,
		Status:     models.TxnStatusPending,
		PgRef:      payload.PgRef,
		CreatedAt:  now,
		UpdatedAt:  now,
	}); err != nil {
		return nil, false, fmt.Errorf("failed to create transaction: %w", err)
	}

	txn, err := uc.repo.GetByTxnID(ctx, payload.TxnID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to load transaction: %w", err)
	}

	if txn.Status.IsTerminal() {
		uc.logger.WithFields(logrus.Fields{
			"txn_id": txn.TxnID,
			"status": txn.Status,
		}).Info("Transaction already terminal, ignoring delivery")
		return txn, false, nil
	}

	status := uc.mapper.Map(payload.Status)
	if !status.IsTerminal() {
		uc.logger.WithFields(logrus.Fields{
			"txn_id":     txn.TxnID,
			"raw_status": payload.Status,
		}).Info("Status token not terminal, transaction stays pending")
		return txn, false, nil
	}

	reason := ""
	if status == models.TxnStatusFailed {
		reason = payload.Reason
	}

	outbox, err := uc.buildOutboxEvent(txn, status, reason)
	if err != nil {
		return nil, false, err
	}

	// Terminal update and outbox row commit atomically; a crash after
	// this point can only delay delivery, never lose the event.
	updated, err := uc.repo.MarkTerminal(ctx, txn.TxnID, status, reason, outbox)
	if err != nil {
		return nil, false, fmt.Errorf("failed to persist terminal transition: %w", err)
	}
	if !updated {
		// Lost the race against a concurrent delivery; report the state
		// that actually won.
		current, err := uc.repo.GetByTxnID(ctx, txn.TxnID)
		if err != nil {
			return nil, false, fmt.Errorf("failed to reload transaction: %w", err)
		}
		return current, false, nil
	}

	txn.Status = status
	txn.Reason = reason
	txn.UpdatedAt = time.Now()

	uc.logger.WithFields(logrus.Fields{
		"txn_id": txn.TxnID,
		"status": status,
		"topic":  outbox.Topic,
	}).Info("Transaction reached terminal state, event enqueued")

	return txn, true, nil
}

// GetTransaction returns the current state of a transaction
func (uc *TransactionUC) GetTransaction(ctx context.Context, txnID string) (*models.Transaction, error) {
	return uc.repo.GetByTxnID(ctx, txnID)
}

func (uc *TransactionUC) buildOutboxEvent(txn *models.Transaction, status models.TxnStatus, reason string) (*models.OutboxEvent, error) {
	event := models.TxnCompletedEvent{
		ID:         uuid.New().String(),
		RequestID:  txn.TxnID,
		Success:    status == models.TxnStatusSuccess,
		Reason:     reason,
		Amount:     txn.Amount,
		FromUserID: txn.FromUserID,
		ToUserID:   txn.ToUserID,
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal completion event: %w", err)
	}

	topic := constants.TopicTxnCompleted
	if !event.Success {
		topic = constants.TopicTxnFailed
	}

	return &models.OutboxEvent{
		ID:        uuid.New(),
		TxnID:     txn.TxnID,
		Topic:     topic,
		Key:       txn.TxnID,
		Payload:   payload,
		Status:    models.OutboxStatusPending,
		CreatedAt: time.Now(),
	}, nil
}
