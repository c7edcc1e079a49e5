package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/raditp/dompet/internal/pkg/models"
)

func TestStatusMapper(t *testing.T) {
	mapper := newStatusMapper(models.GatewayConfig{
		SuccessTokens: []string{"SUCCESS", "PAID", "CAPTURED"},
		FailureTokens: []string{"FAILED"},
	})

	testCases := []struct {
		name     string
		raw      string
		expected models.TxnStatus
	}{
		{"success token", "SUCCESS", models.TxnStatusSuccess},
		{"paid synonym", "PAID", models.TxnStatusSuccess},
		{"captured synonym", "CAPTURED", models.TxnStatusSuccess},
		{"lowercase success", "captured", models.TxnStatusSuccess},
		{"mixed case", "Paid", models.TxnStatusSuccess},
		{"failure token", "FAILED", models.TxnStatusFailed},
		{"lowercase failure", "failed", models.TxnStatusFailed},
		{"whitespace around token", " SUCCESS ", models.TxnStatusSuccess},
		{"unknown token stays pending", "AUTHORIZED", models.TxnStatusPending},
		{"empty token stays pending", "", models.TxnStatusPending},
		{"pending passthrough", "PENDING", models.TxnStatusPending},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, mapper.Map(tc.raw))
		})
	}
}

func TestStatusMapperCustomTokenSet(t *testing.T) {
	// A second gateway integration configures its own token set
	mapper := newStatusMapper(models.GatewayConfig{
		SuccessTokens: []string{"SETTLED"},
		FailureTokens: []string{"DECLINED", "EXPIRED"},
	})

	assert.Equal(t, models.TxnStatusSuccess, mapper.Map("settled"))
	assert.Equal(t, models.TxnStatusFailed, mapper.Map("DECLINED"))
	assert.Equal(t, models.TxnStatusFailed, mapper.Map("expired"))
	// Tokens from the default set are unknown here
	assert.Equal(t, models.TxnStatusPending, mapper.Map("CAPTURED"))
}
