// Package jwtutil inspects the bearer token issued by the backend. The client
// never holds the signing secret, so claims are parsed without verification
// and used only for display and proactive expiry checks; authorization stays
// with the server.
package jwtutil

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims mirrors the payload the admin backend puts in its tokens.
type Claims struct {
	UserID      string   `json:"user_id"`
	Email       string   `json:"email"`
	Name        string   `json:"name"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// Decode parses token claims without signature verification.
func Decode(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Expired reports whether the token carries an exp claim in the past. Tokens
// without an exp claim are treated as live; the server remains the authority.
func Expired(tokenString string) bool {
	claims, err := Decode(tokenString)
	if err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return false
	}
	return claims.ExpiresAt.Before(time.Now())
}
