package models

import "github.com/shopspring/decimal"

// TxnCompletedEvent is the wire record published after a transaction
// reaches a terminal state. The same schema is used on the success and
// failure topics; RequestID carries the correlation id (= txnId) and is
// the delivery key. Field names are part of the cross-service contract.
type TxnCompletedEvent struct {
	ID         string          `json:"id"`
	RequestID  string          `json:"requestId"`
	Success    bool            `json:"success"`
	Reason     string          `json:"reason,omitempty"`
	Amount     decimal.Decimal `json:"amount"`
	FromUserID int64           `json:"fromUserId"`
	ToUserID   int64           `json:"toUserId"`
}
