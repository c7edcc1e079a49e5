package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raditp/dompet/internal/pkg/models"
)

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 5,
		Issuer:     "dompet-test",
	}

	tokenString, expiresAt, err := GenerateToken(42, "admin", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(tokenString, cfg.Secret)
	require.NoError(t, err)

	assert.Equal(t, float64(42), (*claims)["user_id"])
	assert.Equal(t, "admin", (*claims)["role"])
	assert.Equal(t, "dompet-test", (*claims)["iss"])
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := models.JWTConfig{
		Secret:     "test-secret",
		Expiration: 5,
		Issuer:     "dompet-test",
	}

	tokenString, _, err := GenerateToken(42, "admin", cfg)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString, "other-secret")
	assert.Error(t, err)
}

func TestValidateTokenGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
