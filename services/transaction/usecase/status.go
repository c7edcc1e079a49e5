package usecase

import (
	"strings"

	"github.com/raditp/dompet/internal/pkg/models"
)

// statusMapper maps free-text gateway status tokens onto the canonical
// status domain. Token sets come from configuration; matching is
// case-insensitive. Unrecognized tokens map to PENDING: silently
// treating an unknown token as a failure (or a success) would lose the
// real outcome, while staying pending just waits for a clearer signal.
type statusMapper struct {
	success map[string]struct{}
	failure map[string]struct{}
}

func newStatusMapper(cfg models.GatewayConfig) *statusMapper {
	m := &statusMapper{
		success: make(map[string]struct{}, len(cfg.SuccessTokens)),
		failure: make(map[string]struct{}, len(cfg.FailureTokens)),
	}
	for _, token := range cfg.SuccessTokens {
		m.success[strings.ToUpper(strings.TrimSpace(token))] = struct{}{}
	}
	for _, token := range cfg.FailureTokens {
		m.failure[strings.ToUpper(strings.TrimSpace(token))] = struct{}{}
	}
	return m
}

// Map canonicalizes one gateway status token
func (m *statusMapper) Map(rawStatus string) models.TxnStatus {
	token := strings.ToUpper(strings.TrimSpace(rawStatus))

	if _, ok := m.success[token]; ok {
		return models.TxnStatusSuccess
	}
	if _, ok := m.failure[token]; ok {
		return models.TxnStatusFailed
	}
	return models.TxnStatusPending
}
