package services

import (
	"testing"
	"time"

	"alumninet/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_PasswordHashing(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour, 24*time.Hour)

	hash, err := auth.HashPassword("hunter2hunter2")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", hash)

	assert.True(t, auth.CheckPassword("hunter2hunter2", hash))
	assert.False(t, auth.CheckPassword("wrong-password", hash))
}

func TestAuthService_TokenRoundtrip(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour, 24*time.Hour)

	token, err := auth.GenerateSessionToken("user-1", domain.RoleAdmin)
	require.NoError(t, err)

	claims, err := auth.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, domain.UserID("user-1"), claims.UserID)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestAuthService_TokenTTLAsymmetry(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour, 24*time.Hour)

	signup, err := auth.GenerateSignupToken("user-1", domain.RoleStandard)
	require.NoError(t, err)
	session, err := auth.GenerateSessionToken("user-1", domain.RoleStandard)
	require.NoError(t, err)

	signupClaims, err := auth.ValidateToken(signup)
	require.NoError(t, err)
	sessionClaims, err := auth.ValidateToken(session)
	require.NoError(t, err)

	diff := sessionClaims.ExpiresAt.Time.Sub(signupClaims.ExpiresAt.Time)
	assert.InDelta(t, (23 * time.Hour).Seconds(), diff.Seconds(), (2 * time.Hour).Seconds())
	assert.True(t, sessionClaims.ExpiresAt.Time.After(signupClaims.ExpiresAt.Time))
}

func TestAuthService_ExpiredToken(t *testing.T) {
	auth := NewAuthService("test-secret", -time.Minute, -time.Minute)

	token, err := auth.GenerateSessionToken("user-1", domain.RoleStandard)
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestAuthService_InvalidToken(t *testing.T) {
	auth := NewAuthService("test-secret", time.Hour, 24*time.Hour)

	_, err := auth.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// Token signed with a different key
	other := NewAuthService("other-secret", time.Hour, 24*time.Hour)
	token, err := other.GenerateSessionToken("user-1", domain.RoleStandard)
	require.NoError(t, err)

	_, err = auth.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
