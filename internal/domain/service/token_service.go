package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenClaims is the validated content of a bearer token.
type TokenClaims struct {
	UserID    uuid.UUID
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and validates the signed, time-limited bearer tokens
// that the auth middleware resolves to a user identity.
type TokenService interface {
	// GenerateToken creates a signed token for the given user.
	GenerateToken(userID uuid.UUID) (string, error)

	// ValidateToken verifies signature and expiry and returns the claims.
	ValidateToken(tokenString string) (*TokenClaims, error)
}
