package constants

// Redis key formats
const (
	// Wallet Service
	KeyLedgerApplied = "ledger:applied:%s" // Format: ledger:applied:{txn_id}
)
