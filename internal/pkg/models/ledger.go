package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerDirection is the sign of a balance effect
type LedgerDirection string

const (
	LedgerDirectionCredit LedgerDirection = "CREDIT"
	LedgerDirectionDebit  LedgerDirection = "DEBIT"
)

// LedgerEntry records one completed balance effect. Entries are
// append-only and unique per (txn_id, direction); the uniqueness
// constraint in the store is what makes duplicate event deliveries safe.
type LedgerEntry struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	TxnID     string          `json:"txn_id" db:"txn_id"`
	UserID    int64           `json:"user_id" db:"user_id"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Direction LedgerDirection `json:"direction" db:"direction"`
	CreatedAt time.Time       `json:"created_at" db:"created_at"`
}

// CreditEntry builds a CREDIT ledger entry for the beneficiary of a
// successful transaction.
func CreditEntry(txnID string, userID int64, amount decimal.Decimal) *LedgerEntry {
	return &LedgerEntry{
		ID:        uuid.New(),
		TxnID:     txnID,
		UserID:    userID,
		Amount:    amount,
		Direction: LedgerDirectionCredit,
		CreatedAt: time.Now(),
	}
}
