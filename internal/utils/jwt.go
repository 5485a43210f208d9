// Package utils holds small helpers shared across the client.
package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the displayable slice of a session token's claims.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// ParseTokenClaims decodes the claims of a JWT session token for display
// purposes (whoami, status). The signature is NOT verified: the backend is
// the only party that validates tokens, the client merely shows what it
// holds. Never use the result for an authorization decision.
func ParseTokenClaims(tokenString string) (TokenClaims, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return TokenClaims{}, fmt.Errorf("parse token: %w", err)
	}

	var claims TokenClaims
	if sub, err := token.Claims.GetSubject(); err == nil {
		claims.Subject = sub
	}
	if exp, err := token.Claims.GetExpirationTime(); err == nil && exp != nil {
		claims.ExpiresAt = exp.Time
	}

	return claims, nil
}
