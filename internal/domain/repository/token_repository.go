package repository

import (
	"context"
	"time"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrTokenNotFound is returned when a durable token is missing, consumed or expired.
var ErrTokenNotFound = errors.New("token not found")

// TokenRepository persists durable tokens (long sessions, password resets, invitations).
// Tokens are addressed by the hash of their id.
type TokenRepository interface {
	// Create persists a new token record.
	Create(ctx context.Context, token *entity.StoredToken) error

	// Find returns an unexpired token without consuming it.
	Find(ctx context.Context, idHash string, now time.Time) (*entity.StoredToken, error)

	// Consume deletes an unexpired token and returns it. A token can be consumed once.
	Consume(ctx context.Context, idHash string, now time.Time) (*entity.StoredToken, error)

	// Touch moves the expiry of an unexpired token to expiresAt.
	Touch(ctx context.Context, idHash string, now, expiresAt time.Time) error

	// Delete removes a token regardless of its state.
	Delete(ctx context.Context, idHash string) error

	// DeleteByAccountAndKind removes every token of a kind belonging to the account.
	DeleteByAccountAndKind(ctx context.Context, accountID uuid.UUID, kind entity.TokenKind) (int64, error)

	// DeleteExpired removes every expired token and returns how many were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
