package models

import "github.com/shopspring/decimal"

// PGWebhookPayload is the canonical payment-gateway callback body. JSON
// field names follow the gateway's wire format, not our own conventions:
// the raw bytes are what the signature covers, so the payload is only
// ever decoded, never re-encoded.
type PGWebhookPayload struct {
	TxnID      string          `json:"txnId"`
	Status     string          `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
	FromUserID int64           `json:"fromUserId"`
	ToUserID   int64           `json:"toUserId"`
	Reason     string          `json:"reason,omitempty"`
	PgRef      string          `json:"pgRef,omitempty"`
	OccurredAt string          `json:"occurredAt,omitempty"` // ISO8601, informational only
}
