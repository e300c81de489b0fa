package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT("user-1", "secret", time.Minute, "issuer-a")
	require.NoError(t, err)

	claims, err := ParseAndValidateJWT(token, "secret", "issuer-a")
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.Subject)
	assert.Equal(t, "issuer-a", claims.Issuer)
}

func TestParseAndValidateJWT_Rejects(t *testing.T) {
	valid, err := GenerateJWT("user-1", "secret", time.Minute, "issuer-a")
	require.NoError(t, err)
	expired, err := GenerateJWT("user-1", "secret", -time.Minute, "issuer-a")
	require.NoError(t, err)
	noSubject, err := GenerateJWT("", "secret", time.Minute, "issuer-a")
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := ParseAndValidateJWT(valid, "other", "issuer-a")
		assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
	})
	t.Run("wrong issuer", func(t *testing.T) {
		_, err := ParseAndValidateJWT(valid, "secret", "issuer-b")
		assert.ErrorIs(t, err, jwt.ErrTokenInvalidIssuer)
	})
	t.Run("expired", func(t *testing.T) {
		_, err := ParseAndValidateJWT(expired, "secret", "issuer-a")
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})
	t.Run("missing subject", func(t *testing.T) {
		_, err := ParseAndValidateJWT(noSubject, "secret", "issuer-a")
		assert.Error(t, err)
	})
}

func TestSecretHash(t *testing.T) {
	hash, err := HashSecret("admin-key")
	require.NoError(t, err)

	assert.True(t, CheckSecretHash("admin-key", hash))
	assert.False(t, CheckSecretHash("wrong", hash))

	random, err := GenerateSecureRandomString(16)
	require.NoError(t, err)
	assert.Len(t, random, 32)

	_, err = GenerateSecureRandomString(0)
	assert.Error(t, err)
}
