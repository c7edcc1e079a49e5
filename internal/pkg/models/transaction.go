package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TxnStatus represents the canonical status of a payment transaction
type TxnStatus string

const (
	TxnStatusPending TxnStatus = "PENDING"
	TxnStatusSuccess TxnStatus = "SUCCESS"
	TxnStatusFailed  TxnStatus = "FAILED"
)

// IsTerminal reports whether the status may never change again.
func (s TxnStatus) IsTerminal() bool {
	return s == TxnStatusSuccess || s == TxnStatusFailed
}

// Transaction is the authoritative record of one payment attempt. It is
// owned by the transaction service; downstream services only ever read it.
type Transaction struct {
	ID         uuid.UUID       `json:"id" db:"id"`
	TxnID      string          `json:"txn_id" db:"txn_id"`
	FromUserID int64           `json:"from_user_id" db:"from_user_id"`
	ToUserID   int64           `json:"to_user_id" db:"to_user_id"`
	Amount     decimal.Decimal `json:"amount" db:"amount"`
	Status     TxnStatus       `json:"status" db:"status"`
	Reason     string          `json:"reason,omitempty" db:"reason"`
	PgRef      string          `json:"pg_ref,omitempty" db:"pg_ref"`
	CreatedAt  time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at" db:"updated_at"`
}
