package postgres

import (
	"context"
	"testing"
	"time"

	"cashless/internal/domain/entity"
	"cashless/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStoredToken(hash string, kind entity.TokenKind, accountID uuid.UUID, expiresAt time.Time) *entity.StoredToken {
	return &entity.StoredToken{
		IDHash:    hash,
		AccountID: accountID,
		Kind:      kind,
		TTL:       10 * time.Minute,
		ExpiresAt: expiresAt,
	}
}

func TestTokenRepository_ConsumeIsReadOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestDB(t))
	now := time.Now()
	accountID := uuid.New()

	require.NoError(t, repo.Create(ctx, newStoredToken("h1", entity.TokenPasswordReset, accountID, now.Add(30*time.Minute))))

	got, err := repo.Consume(ctx, "h1", now)
	require.NoError(t, err)
	assert.Equal(t, accountID, got.AccountID)
	assert.Equal(t, entity.TokenPasswordReset, got.Kind)

	_, err = repo.Consume(ctx, "h1", now)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}

func TestTokenRepository_ExpiredTokensAreNeverReturned(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestDB(t))
	now := time.Now()

	require.NoError(t, repo.Create(ctx, newStoredToken("old", entity.TokenLongSession, uuid.New(), now.Add(-time.Second))))

	_, err := repo.Find(ctx, "old", now)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	_, err = repo.Consume(ctx, "old", now)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
	assert.ErrorIs(t, repo.Touch(ctx, "old", now, now.Add(time.Hour)), repository.ErrTokenNotFound)

	removed, err := repo.DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)
}

func TestTokenRepository_TouchSlidesExpiry(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestDB(t))
	now := time.Now()

	require.NoError(t, repo.Create(ctx, newStoredToken("s", entity.TokenLongSession, uuid.New(), now.Add(time.Minute))))
	require.NoError(t, repo.Touch(ctx, "s", now, now.Add(10*time.Minute)))

	later := now.Add(5 * time.Minute)
	got, err := repo.Find(ctx, "s", later)
	require.NoError(t, err)
	assert.WithinDuration(t, now.Add(10*time.Minute), got.ExpiresAt, time.Second)
	assert.Equal(t, 10*time.Minute, got.TTL)
}

func TestTokenRepository_DeleteByAccountAndKind(t *testing.T) {
	ctx := context.Background()
	repo := NewTokenRepository(newTestDB(t))
	now := time.Now()
	accountID := uuid.New()

	require.NoError(t, repo.Create(ctx, newStoredToken("a", entity.TokenPasswordInvitation, accountID, now.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newStoredToken("b", entity.TokenPasswordInvitation, accountID, now.Add(time.Hour))))
	require.NoError(t, repo.Create(ctx, newStoredToken("c", entity.TokenLongSession, accountID, now.Add(time.Hour))))

	removed, err := repo.DeleteByAccountAndKind(ctx, accountID, entity.TokenPasswordInvitation)
	require.NoError(t, err)
	assert.Equal(t, int64(2), removed)

	_, err = repo.Find(ctx, "c", now)
	assert.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "c"))
	_, err = repo.Find(ctx, "c", now)
	assert.ErrorIs(t, err, repository.ErrTokenNotFound)
}
