package jwt

import (
	"testing"
	"time"

	"github.com/mikiasgoitom/BazaarHub/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager() *JWTManager {
	return NewJWTManager("access-secret", "refresh-secret", 15*time.Minute, time.Hour, "BazaarHub")
}

func TestAccessToken_RoundTrip(t *testing.T) {
	svc := NewJWTService(newTestManager())
	user := &entity.User{ID: "u-1", Username: "alice", Email: "alice@example.com", Role: entity.UserRoleAdmin}

	token, err := svc.GenerateAccessToken(user)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "alice@example.com", claims.Email)
	assert.Equal(t, entity.UserRoleAdmin, claims.Role)
}

func TestRefreshToken_CarriesSubjectAndRoleOnly(t *testing.T) {
	svc := NewJWTService(newTestManager())

	token, err := svc.GenerateRefreshToken("u-1", entity.UserRoleUser)
	require.NoError(t, err)

	claims, err := svc.ParseRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, entity.UserRoleUser, claims.Role)
	assert.Empty(t, claims.Email)
	assert.NotEmpty(t, claims.ID)
}

func TestRefreshTokens_AreUnique(t *testing.T) {
	svc := NewJWTService(newTestManager())

	a, err := svc.GenerateRefreshToken("u-1", entity.UserRoleUser)
	require.NoError(t, err)
	b, err := svc.GenerateRefreshToken("u-1", entity.UserRoleUser)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestSecretsAreNotInterchangeable(t *testing.T) {
	svc := NewJWTService(newTestManager())
	access, err := svc.GenerateAccessToken(&entity.User{ID: "u-1", Role: entity.UserRoleUser})
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken("u-1", entity.UserRoleUser)
	require.NoError(t, err)

	_, err = svc.ParseRefreshToken(access)
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.ParseAccessToken(refresh)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	mgr := newTestManager()
	mgr.now = func() time.Time { return time.Now().Add(-time.Hour) }
	token, err := mgr.GenerateAccessToken("u-1", "alice", "a@example.com", "user")
	require.NoError(t, err)

	mgr.now = time.Now
	_, err = mgr.VerifyToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestTamperedToken(t *testing.T) {
	mgr := newTestManager()
	token, err := mgr.GenerateAccessToken("u-1", "alice", "a@example.com", "user")
	require.NoError(t, err)

	_, err = mgr.VerifyToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = mgr.VerifyToken("not.a.jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
