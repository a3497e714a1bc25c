package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned by TokenService for any token that cannot be
// trusted: malformed, badly signed, expired, or missing required claims.
// Callers never learn which of those failed.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claim names the service injects or reads.
const (
	ClaimSubject  = "sub"
	ClaimUserID   = "uid"
	ClaimUsername = "name"
)

// TokenService defines the interface for issuing and inspecting JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs the given claims into a compact token. An "exp" claim is
	// always injected from the optional ttl (the configured default applies
	// when omitted), overriding any caller-supplied value.
	Issue(claims jwt.MapClaims, ttl ...time.Duration) (string, error)

	// Decode parses and validates a token and returns its claims.
	// Every failure is reported as ErrInvalidToken.
	Decode(tokenString string) (jwt.MapClaims, error)

	// Verify reports whether the token is valid. When expectedSubject is
	// given, the token's "sub" claim must also match it exactly.
	Verify(tokenString string, expectedSubject ...string) bool

	// IsExpired reports whether the token is expired or otherwise invalid.
	IsExpired(tokenString string) bool
}
