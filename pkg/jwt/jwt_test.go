package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := Claims{
		UserID: "7d9c6c0e-5d5e-4c1c-9a0b-1b2c3d4e5f60",
		Email:  "reader@bookstore.vn",
		Role:   "user",
		Type:   "access",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(expiresAt.Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestInspector_UnverifiedAcceptsLiveToken(t *testing.T) {
	token := sign(t, "backend-secret", time.Now().Add(time.Hour))

	claims, err := NewInspector("").Inspect(token)
	require.NoError(t, err)
	assert.Equal(t, "reader@bookstore.vn", claims.Email)
	assert.False(t, claims.IsAdmin())
}

func TestInspector_RejectsExpiredToken(t *testing.T) {
	token := sign(t, "backend-secret", time.Now().Add(-time.Minute))

	_, err := NewInspector("").Inspect(token)
	assert.ErrorIs(t, err, ErrTokenExpired)

	_, err = NewInspector("backend-secret").Inspect(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestInspector_VerifiesSignatureWhenSecretSet(t *testing.T) {
	token := sign(t, "other-secret", time.Now().Add(time.Hour))

	insp := NewInspector("backend-secret")
	assert.True(t, insp.Verifies())
	_, err := insp.Inspect(token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	assert.True(t, NewInspector("other-secret").IsAuthenticated(token))
}

func TestInspector_EmptyAndGarbage(t *testing.T) {
	insp := NewInspector("")
	_, err := insp.Inspect("")
	assert.ErrorIs(t, err, ErrEmptyToken)
	assert.False(t, insp.IsAuthenticated("not-a-jwt"))
}
