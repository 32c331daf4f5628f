package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformed is returned when a token is not a structurally valid JWT.
var ErrMalformed = errors.New("jwtx: malformed token")

// Claims are the claims the backend places in its session tokens. The
// gateway never verifies them; the backend stays the authority.
type Claims struct {
	jwt.RegisteredClaims

	// Backend user id (UUID)
	UserID string `json:"user_id,omitempty"`
}

// Peek decodes the claims of token without verifying its signature.
// Only use the result for hints such as cookie lifetimes, never for
// authorization decisions.
func Peek(token string) (*Claims, error) {
	var c Claims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &c); err != nil {
		return nil, errors.Join(ErrMalformed, err)
	}
	return &c, nil
}

// PeekExpiry returns the exp claim of token. ok is false for opaque tokens
// or tokens without an expiry.
func PeekExpiry(token string) (exp time.Time, ok bool) {
	c, err := Peek(token)
	if err != nil || c.ExpiresAt == nil {
		return time.Time{}, false
	}
	return c.ExpiresAt.Time, true
}
