package constants

// NSQ topics
const (
	// Transaction outcome events, one topic per outcome. Both carry the
	// same TxnCompletedEvent schema keyed by requestId.
	TopicTxnCompleted = "txn.completed"
	TopicTxnFailed    = "txn.failed"
)

// NSQ consumer channels
const (
	ChannelWallet = "wallet"
)
