package verifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"github.com/raditp/dompet/internal/pkg/models"
	"github.com/raditp/dompet/services/transaction"
)

// HMACVerifier verifies webhook signatures using HMAC-SHA256 over the
// raw request bytes with a pre-shared secret. The secret is injected at
// construction; there is no global state.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier creates a verifier for the given pre-shared secret
func NewHMACVerifier(secret string) transaction.SignatureVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// ParseAndVerify checks the hex-encoded signature against the HMAC of
// the raw body and, only on a match, decodes the canonical payload.
// The comparison is constant-time so a caller cannot recover the
// expected signature byte by byte.
func (v *HMACVerifier) ParseAndVerify(rawBody []byte, signature string) (*models.PGWebhookPayload, error) {
	supplied, err := hex.DecodeString(signature)
	if err != nil {
		return nil, transaction.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, v.secret)
	mac.Write(rawBody)
	expected := mac.Sum(nil)

	// hmac.Equal is constant-time
	if !hmac.Equal(expected, supplied) {
		return nil, transaction.ErrInvalidSignature
	}

	var payload models.PGWebhookPayload
	if err := json.Unmarshal(rawBody, &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", transaction.ErrMalformedPayload, err)
	}

	return &payload, nil
}
