package impl

import (
	"context"
	"testing"
	"time"

	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	"cashless/internal/infra/kvstore"
	mockRepo "cashless/internal/mocks/repository"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	srv         *sessionService
	tokenRepo   *mockRepo.MockTokenRepository
	accountRepo *mockRepo.MockAccountRepository
	now         time.Time
}

func newSessionFixture(t *testing.T) *sessionFixture {
	cfg := newTestConfig()
	kv := kvstore.NewMemory(time.Minute)
	t.Cleanup(func() { _ = kv.Close() })

	f := &sessionFixture{
		tokenRepo:   mockRepo.NewMockTokenRepository(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		now:         time.Now().Truncate(time.Second),
	}
	f.srv = newSessionService(SessionServiceParams{
		KV:           kv,
		TokenRepo:    f.tokenRepo,
		AccountRepo:  f.accountRepo,
		TokenService: newTestTokenService(t, cfg),
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})
	f.srv.now = func() time.Time { return f.now }

	return f
}

func TestSessionService_OnetimeIsReadOnce(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	accountID := uuid.New()

	token, err := f.srv.Create(ctx, entity.TokenOnetime, accountID, 0)
	require.NoError(t, err)

	got, err := f.srv.Read(ctx, entity.TokenOnetime, token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)

	_, err = f.srv.Read(ctx, entity.TokenOnetime, token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_ReadRejectsWrongKindAndGarbage(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	token, err := f.srv.Create(ctx, entity.TokenOnetime, uuid.New(), 0)
	require.NoError(t, err)

	_, err = f.srv.Read(ctx, entity.TokenLongSession, token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = f.srv.Read(ctx, entity.TokenOnetime, "not-a-token")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_LongSessionSlidesExpiry(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	accountID := uuid.New()
	ttl := f.srv.cfg.LongSessionTTL

	var stored *entity.StoredToken
	f.tokenRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.StoredToken")).
		RunAndReturn(func(_ context.Context, tok *entity.StoredToken) error {
			stored = tok

			return nil
		})

	token, err := f.srv.Create(ctx, entity.TokenLongSession, accountID, 0)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, f.now.Add(ttl), stored.ExpiresAt)
	assert.Equal(t, ttl, stored.TTL)
	assert.Len(t, stored.IDHash, 64)

	f.now = f.now.Add(5 * time.Minute)
	f.tokenRepo.EXPECT().Find(ctx, stored.IDHash, f.now).Return(stored, nil)
	f.tokenRepo.EXPECT().Touch(ctx, stored.IDHash, f.now, f.now.Add(ttl)).Return(nil)

	got, err := f.srv.Read(ctx, entity.TokenLongSession, token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)
}

func TestSessionService_ExpiredLongSessionIsRejected(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.tokenRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)
	token, err := f.srv.Create(ctx, entity.TokenLongSession, uuid.New(), 0)
	require.NoError(t, err)

	f.tokenRepo.EXPECT().Find(ctx, mock.Anything, f.now).Return(nil, repository.ErrTokenNotFound)

	_, err = f.srv.Read(ctx, entity.TokenLongSession, token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_PasswordResetIsConsumed(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	accountID := uuid.New()

	var stored *entity.StoredToken
	f.tokenRepo.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, tok *entity.StoredToken) error {
			stored = tok

			return nil
		})

	token, err := f.srv.Create(ctx, entity.TokenPasswordReset, accountID, 0)
	require.NoError(t, err)
	assert.Equal(t, f.now.Add(30*time.Minute), stored.ExpiresAt)

	f.tokenRepo.EXPECT().Consume(ctx, stored.IDHash, f.now).Return(stored, nil).Once()
	f.tokenRepo.EXPECT().Consume(ctx, stored.IDHash, f.now).Return(nil, repository.ErrTokenNotFound).Once()

	got, err := f.srv.Read(ctx, entity.TokenPasswordReset, token)
	require.NoError(t, err)
	assert.Equal(t, accountID, got)

	_, err = f.srv.Read(ctx, entity.TokenPasswordReset, token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_Revoke(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	onetime, err := f.srv.Create(ctx, entity.TokenOnetime, uuid.New(), 0)
	require.NoError(t, err)
	require.NoError(t, f.srv.Revoke(ctx, onetime))
	_, err = f.srv.Read(ctx, entity.TokenOnetime, onetime)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	var stored *entity.StoredToken
	f.tokenRepo.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, tok *entity.StoredToken) error {
			stored = tok

			return nil
		})
	long, err := f.srv.Create(ctx, entity.TokenLongSession, uuid.New(), 0)
	require.NoError(t, err)

	f.tokenRepo.EXPECT().Delete(ctx, stored.IDHash).Return(nil)
	require.NoError(t, f.srv.Revoke(ctx, long))

	assert.ErrorIs(t, f.srv.Revoke(ctx, "garbage"), domainerrors.ErrUnauthorized)
}

func TestSessionService_RevokeAll(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	accountID := uuid.New()

	f.tokenRepo.EXPECT().DeleteByAccountAndKind(ctx, accountID, entity.TokenLongSession).Return(3, nil)

	count, err := f.srv.RevokeAll(ctx, accountID, entity.TokenLongSession)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	_, err = f.srv.RevokeAll(ctx, accountID, entity.TokenOnetime)
	assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
}

func TestSessionService_CleanupExpired(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()

	f.tokenRepo.EXPECT().DeleteExpired(ctx, f.now).Return(7, nil)

	count, err := f.srv.CleanupExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)
}

func TestSessionService_AccessTokenFlow(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	admin := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}
	member := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleMember}
	account := newTestAccount(entity.RoleBasic)

	_, err := f.srv.IssueAccessToken(ctx, member, account.ID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	f.accountRepo.EXPECT().FindByID(ctx, account.ID).Return(account, nil)
	f.tokenRepo.EXPECT().Create(ctx, mock.Anything).Return(nil)

	accessToken, err := f.srv.IssueAccessToken(ctx, admin, account.ID)
	require.NoError(t, err)

	out, err := f.srv.LoginWithAccessToken(ctx, accessToken)
	require.NoError(t, err)
	assert.Equal(t, account, out.Account)
	assert.NotEmpty(t, out.Token)

	_, err = f.srv.LoginWithAccessToken(ctx, accessToken)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestSessionService_AuthenticateMissingAccount(t *testing.T) {
	f := newSessionFixture(t)
	ctx := context.Background()
	accountID := uuid.New()

	var stored *entity.StoredToken
	f.tokenRepo.EXPECT().
		Create(ctx, mock.Anything).
		RunAndReturn(func(_ context.Context, tok *entity.StoredToken) error {
			stored = tok

			return nil
		})
	token, err := f.srv.Create(ctx, entity.TokenLongSession, accountID, 0)
	require.NoError(t, err)

	f.tokenRepo.EXPECT().Find(ctx, stored.IDHash, f.now).Return(stored, nil)
	f.tokenRepo.EXPECT().Touch(ctx, stored.IDHash, f.now, mock.Anything).Return(nil)
	f.accountRepo.EXPECT().FindByID(ctx, accountID).Return(nil, repository.ErrAccountNotFound)

	_, err = f.srv.Authenticate(ctx, token)
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
