package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
)

// ErrTokenInvalid is returned for unknown or expired tokens.
var ErrTokenInvalid = errors.New("auth: invalid or expired token")

// TokenStore maps opaque session tokens to user ids with TTL-based expiry.
// Implementations own their state; there are no package-level token maps.
type TokenStore interface {
	// Issue creates a new token for the user and returns it.
	Issue(ctx context.Context, userID string) (string, error)

	// Resolve returns the user id for a token, or ErrTokenInvalid when the
	// token is unknown or past its TTL.
	Resolve(ctx context.Context, token string) (string, error)

	// Revoke invalidates a token. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}

// NewToken generates a URL-safe random token.
func NewToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// HashPassword hashes a password with SHA-256.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword compares a password against its stored hash in constant time.
func VerifyPassword(password, passwordHash string) bool {
	return subtle.ConstantTimeCompare([]byte(HashPassword(password)), []byte(passwordHash)) == 1
}
