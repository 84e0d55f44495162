package entity

import (
	"time"

	"github.com/google/uuid"
)

// TokenKind distinguishes the lifetimes and read semantics of issued tokens.
type TokenKind string

const (
	// TokenLongSession is durable with a sliding expiry and survives reads.
	TokenLongSession TokenKind = "long_session"
	// TokenOnetime is ephemeral and read-once.
	TokenOnetime TokenKind = "onetime"
	// TokenPasswordReset is durable and read-once.
	TokenPasswordReset TokenKind = "password_reset"
	// TokenPasswordInvitation is durable and read-once.
	TokenPasswordInvitation TokenKind = "password_invitation"
)

// IsValid checks if the TokenKind is a valid value.
func (k TokenKind) IsValid() bool {
	switch k {
	case TokenLongSession, TokenOnetime, TokenPasswordReset, TokenPasswordInvitation:
		return true
	default:
		return false
	}
}

// IsReadOnce reports whether reading the token consumes it.
func (k TokenKind) IsReadOnce() bool {
	return k != TokenLongSession
}

// IsDurable reports whether the token is kept in the database rather than the key-value store.
func (k TokenKind) IsDurable() bool {
	return k != TokenOnetime
}

// StoredToken is the server-side record of a durable token. Only the hash of
// the session id is kept, never the id itself.
type StoredToken struct {
	IDHash    string
	AccountID uuid.UUID
	Kind      TokenKind
	TTL       time.Duration // sliding window for long sessions
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the token is no longer valid at now.
func (t *StoredToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// ChallengeState is the pending half of an NFC handshake.
type ChallengeState struct {
	RndA       []byte    `json:"rnd_a"`
	RndB       []byte    `json:"rnd_b"`
	ValidUntil time.Time `json:"valid_until"`
}
