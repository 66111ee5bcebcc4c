package auth

import (
	"testing"
	"time"

	"expense-tracker/internal/config"
	"expense-tracker/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(now time.Time) *TokenService {
	ts := NewTokenService(config.Config{JWTSecret: "test-secret", JWTExpiresIn: time.Hour})
	ts.now = func() time.Time { return now }
	return ts
}

func TestTokenRoundTrip(t *testing.T) {
	now := time.Now()
	ts := newTestTokenService(now)

	token, exp, err := ts.GenerateToken("user-1", "a@b.co")
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(time.Hour), exp, time.Second)

	claims, err := ts.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@b.co", claims.Email)
}

func TestTokenExpired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	token, _, err := newTestTokenService(issued).GenerateToken("user-1", "a@b.co")
	require.NoError(t, err)

	_, err = newTestTokenService(time.Now()).ParseToken(token)
	var authErr *domain.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.AuthExpired, authErr.Kind)
	assert.Equal(t, "Token expired", authErr.Error())
}

func TestTokenInvalid(t *testing.T) {
	ts := newTestTokenService(time.Now())

	other := NewTokenService(config.Config{JWTSecret: "other-secret", JWTExpiresIn: time.Hour})
	foreign, _, err := other.GenerateToken("user-1", "a@b.co")
	require.NoError(t, err)

	none := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{UserID: "user-1"})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, token := range map[string]string{
		"garbage":      "not-a-token",
		"wrong secret": foreign,
		"alg none":     unsigned,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ts.ParseToken(token)
			var authErr *domain.AuthError
			require.ErrorAs(t, err, &authErr)
			assert.Equal(t, domain.AuthInvalid, authErr.Kind)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(4)
	hash, err := h.Hash("abc123!x")
	require.NoError(t, err)

	ok, err := h.Check(hash, "abc123!x")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Check(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = h.Check("not-a-hash", "abc123!x")
	assert.Error(t, err)
}
