package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/myorder/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                "test-secret-key-for-unit-tests-only",
		AccessTokenExpiration: 30 * time.Minute,
		Issuer:                "myorder-test",
	})
}

func TestGenerateToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, err := service.GenerateToken(GenerateTokenInput{
		UserID:   userID,
		Username: "tanaka",
		IsAdmin:  true,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	assert.Equal(t, "bearer", token.TokenType)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), token.ExpiresAt, 5*time.Second)
}

func TestValidateToken(t *testing.T) {
	service := newTestService()
	userID := uuid.New()

	token, err := service.GenerateToken(GenerateTokenInput{
		UserID:   userID,
		Username: "tanaka",
		IsAdmin:  false,
	})
	require.NoError(t, err)

	t.Run("valid token round-trips claims", func(t *testing.T) {
		claims, err := service.ValidateToken(token.AccessToken)

		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
		assert.Equal(t, "tanaka", claims.Username)
		assert.False(t, claims.IsAdmin)

		parsed, err := claims.GetUserUUID()
		require.NoError(t, err)
		assert.Equal(t, userID, parsed)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := service.ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewJWTService(config.JWTConfig{
			Secret:                "a-completely-different-secret-value",
			AccessTokenExpiration: 30 * time.Minute,
			Issuer:                "myorder-test",
		})
		foreign, err := other.GenerateToken(GenerateTokenInput{UserID: userID, Username: "x"})
		require.NoError(t, err)

		_, err = service.ValidateToken(foreign.AccessToken)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewJWTService(config.JWTConfig{
			Secret:                "test-secret-key-for-unit-tests-only",
			AccessTokenExpiration: -time.Minute,
			Issuer:                "myorder-test",
		})
		tok, err := expired.GenerateToken(GenerateTokenInput{UserID: userID, Username: "x"})
		require.NoError(t, err)

		_, err = service.ValidateToken(tok.AccessToken)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})
}
