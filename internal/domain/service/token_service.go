package service

import (
	"time"

	"cashless/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims carried by client tokens. The subject is the account id.
type Claims struct {
	SessionID string           `json:"sid"`
	Kind      entity.TokenKind `json:"kind"`
	jwt.RegisteredClaims
}

// AccountID parses the subject claim.
func (c *Claims) AccountID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}

// TokenService frames session identifiers into tamper-evident client tokens.
// The framing is authenticated; the server-side record decides validity.
type TokenService interface {
	// Sign produces the client token for a session id.
	Sign(sessionID string, kind entity.TokenKind, accountID uuid.UUID, issuedAt, expiresAt time.Time) (string, error)

	// Parse verifies the signature and expiry of a client token.
	Parse(tokenString string) (*Claims, error)
}
