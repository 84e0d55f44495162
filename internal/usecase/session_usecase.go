package usecase

import (
	"context"
	"time"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
)

// LoginOutput returns the long session issued after a successful login.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// SessionUsecase issues, reads and revokes client tokens.
type SessionUsecase interface {
	// Create stores a new session of the given kind and returns its client token.
	// A zero ttl selects the configured default for the kind.
	Create(ctx context.Context, kind entity.TokenKind, accountID uuid.UUID, ttl time.Duration) (string, error)

	// Read resolves a token to its account. Read-once kinds are consumed,
	// long sessions slide their expiry.
	Read(ctx context.Context, kind entity.TokenKind, token string) (uuid.UUID, error)

	// Authenticate resolves a long session token to its account.
	Authenticate(ctx context.Context, token string) (*entity.Account, error)

	// Revoke deletes the session behind token.
	Revoke(ctx context.Context, token string) error

	// RevokeAll deletes every durable session of a kind belonging to the account.
	RevokeAll(ctx context.Context, accountID uuid.UUID, kind entity.TokenKind) (int64, error)

	// CleanupExpired removes expired durable sessions.
	CleanupExpired(ctx context.Context) (int64, error)

	// IssueAccessToken lets an admin mint a short one-time login token for an account.
	IssueAccessToken(ctx context.Context, actor Actor, accountID uuid.UUID) (string, error)

	// LoginWithAccessToken exchanges an access token for a long session.
	LoginWithAccessToken(ctx context.Context, token string) (*LoginOutput, error)
}
