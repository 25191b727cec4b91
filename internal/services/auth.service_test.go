package services

import (
	"testing"
	"upkeep/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthService() *AuthService {
	return NewAuthService(config.Config{
		AuthSecret:           "test-secret-for-signing",
		AuthTokenExpiryHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	service := newTestAuthService()
	userID := uuid.New()

	token, err := service.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsedID, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	service := newTestAuthService()
	other := NewAuthService(config.Config{
		AuthSecret:           "a-different-secret",
		AuthTokenExpiryHours: 1,
	})

	token, err := service.GenerateToken(uuid.New())
	require.NoError(t, err)

	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	service := newTestAuthService()

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	service := newTestAuthService()

	hash, err := service.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, service.CheckPassword(hash, "hunter2hunter2"))
	assert.False(t, service.CheckPassword(hash, "wrong-password"))
}
