package verifier

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raditp/dompet/services/transaction"
)

const testSecret = "demo-secret"

func sign(body []byte) string {
	mac := hmac.New(sha256.New, []byte(testSecret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestParseAndVerifyValidSignature(t *testing.T) {
	v := NewHMACVerifier(testSecret)

	body := []byte(`{"txnId":"T1","status":"CAPTURED","amount":100.00,"fromUserId":1,"toUserId":2}`)
	payload, err := v.ParseAndVerify(body, sign(body))

	require.NoError(t, err)
	assert.Equal(t, "T1", payload.TxnID)
	assert.Equal(t, "CAPTURED", payload.Status)
	assert.Equal(t, "100", payload.Amount.String())
	assert.Equal(t, int64(1), payload.FromUserID)
	assert.Equal(t, int64(2), payload.ToUserID)
}

func TestParseAndVerifyTamperedBody(t *testing.T) {
	v := NewHMACVerifier(testSecret)

	body := []byte(`{"txnId":"T1","status":"CAPTURED","amount":100.00}`)
	signature := sign(body)

	// Amount changed after signing; the stale signature must not match
	tampered := []byte(`{"txnId":"T1","status":"CAPTURED","amount":999.00}`)

	payload, err := v.ParseAndVerify(tampered, signature)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, transaction.ErrInvalidSignature)
}

func TestParseAndVerifyOneByteDifference(t *testing.T) {
	v := NewHMACVerifier(testSecret)

	body := []byte(`{"txnId":"T1","status":"SUCCESS","amount":10}`)
	signature := sign(body)

	// Flip the last hex digit
	last := signature[len(signature)-1]
	flipped := byte('0')
	if last == '0' {
		flipped = '1'
	}
	broken := signature[:len(signature)-1] + string(flipped)

	payload, err := v.ParseAndVerify(body, broken)
	assert.Nil(t, payload)
	assert.ErrorIs(t, err, transaction.ErrInvalidSignature)
}

func TestParseAndVerifyNonHexSignature(t *testing.T) {
	v := NewHMACVerifier(testSecret)

	body := []byte(`{"txnId":"T1"}`)
	payload, err := v.ParseAndVerify(body, "not-hex!!")

	assert.Nil(t, payload)
	assert.ErrorIs(t, err, transaction.ErrInvalidSignature)
}

func TestParseAndVerifyValidSignatureBadJSON(t *testing.T) {
	v := NewHMACVerifier(testSecret)

	body := []byte(`{"txnId": broken`)
	payload, err := v.ParseAndVerify(body, sign(body))

	assert.Nil(t, payload)
	require.Error(t, err)
	assert.True(t, errors.Is(err, transaction.ErrMalformedPayload))
}

func TestParseAndVerifyWrongSecret(t *testing.T) {
	v := NewHMACVerifier("other-secret")

	body := []byte(`{"txnId":"T1","status":"SUCCESS","amount":10}`)
	payload, err := v.ParseAndVerify(body, sign(body))

	assert.Nil(t, payload)
	assert.ErrorIs(t, err, transaction.ErrInvalidSignature)
}
