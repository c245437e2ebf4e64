// Package auth implements the credential gate: stateless signed-token
// issuance and verification plus password comparison for the login endpoint.
package auth

import (
	"context"
	"time"
)

// JWTService defines operations for managing the signed bearer tokens that
// gate mutating endpoints.
type JWTService interface {
	// GenerateToken creates a signed access token for the given subject.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken verifies the signature and time claims of the provided
	// token string and extracts its claims. Any failure (bad signature,
	// expired, malformed, missing subject) results in an error; callers must
	// not expose which check failed.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the verified contents of an access token.
type Claims struct {
	// Subject is the identity the token was issued for.
	Subject string `json:"sub,omitempty"`

	// Standard registered JWT time claims.
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`

	// ID is the unique token identifier (jti).
	ID string `json:"jti,omitempty"`
}
