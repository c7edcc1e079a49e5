package transaction

import "errors"

var (
	// ErrInvalidSignature means the webhook signature did not match the
	// HMAC computed over the raw request bytes. The request must be
	// rejected without any side effect.
	ErrInvalidSignature = errors.New("invalid webhook signature")

	// ErrMalformedPayload means the body could not be parsed into the
	// canonical gateway payload, or failed structural validation.
	ErrMalformedPayload = errors.New("malformed webhook payload")

	// ErrTxnNotFound means no transaction exists for the correlation id
	ErrTxnNotFound = errors.New("transaction not found")
)
