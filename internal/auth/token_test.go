package auth

import (
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "unit-test-secret"

func TestIssueAndVerify(t *testing.T) {
	tm := NewTokenManager(testSecret, 7)

	token, expiresAt, err := tm.Issue("user-123")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(7*24*time.Hour), expiresAt, time.Minute)

	subject, err := tm.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestVerifyExpiredToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 7)

	expired := signToken(t, testSecret, jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-8 * 24 * time.Hour)),
	})

	_, err := tm.Verify(expired)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyWrongSecret(t *testing.T) {
	tm := NewTokenManager(testSecret, 7)

	forged := signToken(t, "another-secret", jwt.RegisteredClaims{
		Subject:   "user-123",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := tm.Verify(forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyMalformedToken(t *testing.T) {
	tm := NewTokenManager(testSecret, 7)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Verify(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyMissingSubject(t *testing.T) {
	tm := NewTokenManager(testSecret, 7)

	token := signToken(t, testSecret, jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})

	_, err := tm.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func signToken(t *testing.T, secret string, claims jwt.RegisteredClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}
