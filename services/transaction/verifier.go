package transaction

import "github.com/raditp/dompet/internal/pkg/models"

// SignatureVerifier authenticates inbound webhook requests. It must
// operate on the literal raw request bytes: re-serializing the body
// before verification would let an attacker bypass the signature by
// re-encoding an equivalent JSON document.
type SignatureVerifier interface {
	ParseAndVerify(rawBody []byte, signature string) (*models.PGWebhookPayload, error)
}
