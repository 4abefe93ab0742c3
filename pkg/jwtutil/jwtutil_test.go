package jwtutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims *Claims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestDecodeReadsClaimsWithoutSecret(t *testing.T) {
	token := signedToken(t, &Claims{
		UserID:      "u1",
		Email:       "amina@example.com",
		Role:        "Admin",
		Permissions: []string{"dashboard", "products"},
	})

	claims, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "amina@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Role)
	assert.Equal(t, []string{"dashboard", "products"}, claims.Permissions)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpired(t *testing.T) {
	past := signedToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	future := signedToken(t, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	noExp := signedToken(t, &Claims{UserID: "u1"})

	assert.True(t, Expired(past))
	assert.False(t, Expired(future))
	assert.False(t, Expired(noExp))
	assert.True(t, Expired("garbage"))
}
