package models

import (
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the delivery state of an outbox row
type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "PENDING"
	OutboxStatusDelivered OutboxStatus = "DELIVERED"
)

// OutboxEvent is an event-to-be-sent, written in the same database
// transaction as the state change that caused it. The relay publishes
// pending rows and marks them delivered only after the channel accepts
// the message, so a crash between commit and publish loses nothing.
type OutboxEvent struct {
	ID          uuid.UUID    `json:"id" db:"id"`
	TxnID       string       `json:"txn_id" db:"txn_id"`
	Topic       string       `json:"topic" db:"topic"`
	Key         string       `json:"key" db:"key"`
	Payload     []byte       `json:"payload" db:"payload"`
	Status      OutboxStatus `json:"status" db:"status"`
	Attempts    int          `json:"attempts" db:"attempts"`
	CreatedAt   time.Time    `json:"created_at" db:"created_at"`
	DeliveredAt *time.Time   `json:"delivered_at,omitempty" db:"delivered_at"`
}
