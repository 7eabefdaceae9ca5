package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "jwt-test-secret"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u1", true, testSecret, time.Hour)
	require.NoError(t, err)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.UserID)
	require.True(t, claims.IsAdmin)
	require.Equal(t, "u1", claims.Subject)
}

func TestGenerateToken_EmptyUser(t *testing.T) {
	_, err := GenerateToken("", false, testSecret, time.Hour)
	require.Error(t, err)
}

func TestValidateToken(t *testing.T) {
	t.Run("empty_string", func(t *testing.T) {
		_, err := ValidateToken("  ", testSecret)
		require.Error(t, err)
	})

	t.Run("wrong_secret", func(t *testing.T) {
		token, err := GenerateToken("u1", false, "other-secret", time.Hour)
		require.NoError(t, err)

		_, err = ValidateToken(token, testSecret)
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		token, err := GenerateToken("u1", false, testSecret, -time.Minute)
		require.NoError(t, err)

		_, err = ValidateToken(token, testSecret)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ValidateToken("not.a.jwt", testSecret)
		require.Error(t, err)
	})
}

func TestPasswordRoundTrip(t *testing.T) {
	hashed, err := HashPassword("hunter22")
	require.NoError(t, err)
	require.NotEqual(t, "hunter22", hashed)

	ok, err := VerifyPassword(hashed, "hunter22")
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = VerifyPassword(hashed, "wrong")
	require.NoError(t, err)
	require.False(t, ok)
}
