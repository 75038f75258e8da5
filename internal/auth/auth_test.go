package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-12345"

func TestHashPassword(t *testing.T) {
	t.Run("Successfully hash password", func(t *testing.T) {
		password := "mySecurePassword123"
		hashed, err := HashPassword(password)

		assert.NoError(t, err)
		assert.NotEmpty(t, hashed)
		assert.NotEqual(t, password, hashed)
	})

	t.Run("Different hashes for same password", func(t *testing.T) {
		password := "samePassword"
		hash1, _ := HashPassword(password)
		hash2, _ := HashPassword(password)

		assert.NotEqual(t, hash1, hash2)
	})
}

func TestCheckPassword(t *testing.T) {
	password := "correctPassword"
	hashed, _ := HashPassword(password)

	t.Run("Correct password", func(t *testing.T) {
		assert.True(t, CheckPassword(hashed, password))
	})

	t.Run("Incorrect password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, "wrongPassword"))
	})

	t.Run("Empty password", func(t *testing.T) {
		assert.False(t, CheckPassword(hashed, ""))
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	token, err := GenerateAccessToken(1, "member@example.com", "member", testSecret)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, 1, claims.MemberID)
	assert.Equal(t, "member@example.com", claims.Email)
	assert.Equal(t, "member", claims.Role)
	assert.Equal(t, "access", claims.TokenType)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(1, "member@example.com", "member", testSecret)
	require.NoError(t, err)

	_, err = ValidateToken(token, "other-secret")
	assert.Error(t, err)
}

func TestGenerateTokenEmptySecret(t *testing.T) {
	_, err := GenerateAccessToken(1, "member@example.com", "member", "")
	assert.ErrorIs(t, err, ErrEmptyJWTSecret)
}

func TestRefreshAccessToken(t *testing.T) {
	t.Run("Refresh with refresh token", func(t *testing.T) {
		_, refreshToken, err := GenerateTokens(7, "member@example.com", "member", testSecret)
		require.NoError(t, err)

		newAccess, claims, err := RefreshAccessToken(refreshToken, testSecret)
		require.NoError(t, err)
		assert.NotEmpty(t, newAccess)
		assert.Equal(t, 7, claims.MemberID)

		accessClaims, err := ValidateToken(newAccess, testSecret)
		require.NoError(t, err)
		assert.Equal(t, "access", accessClaims.TokenType)
	})

	t.Run("Refresh with access token fails", func(t *testing.T) {
		accessToken, _, err := GenerateTokens(7, "member@example.com", "member", testSecret)
		require.NoError(t, err)

		_, _, err = RefreshAccessToken(accessToken, testSecret)
		assert.ErrorIs(t, err, ErrInvalidTokenType)
	})
}
