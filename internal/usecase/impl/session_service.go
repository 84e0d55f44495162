// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"time"

	"cashless/config"
	deliverycontext "cashless/internal/delivery/context"
	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	"cashless/internal/domain/service"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const onetimeKeyPrefix = "onetime:"

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	kv           repository.KeyValueStore
	tokenRepo    repository.TokenRepository
	accountRepo  repository.AccountRepository
	tokenService service.TokenService
	cfg          *config.AuthConfig
	now          func() time.Time
	logger       *slog.Logger
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	KV           repository.KeyValueStore
	TokenRepo    repository.TokenRepository
	AccountRepo  repository.AccountRepository
	TokenService service.TokenService
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	return newSessionService(params)
}

func newSessionService(params SessionServiceParams) *sessionService {
	return &sessionService{
		kv:           params.KV,
		tokenRepo:    params.TokenRepo,
		accountRepo:  params.AccountRepo,
		tokenService: params.TokenService,
		cfg:          params.Config.Auth,
		now:          time.Now,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *sessionService) defaultTTL(kind entity.TokenKind) time.Duration {
	switch kind {
	case entity.TokenLongSession:
		return srv.cfg.LongSessionTTL
	case entity.TokenOnetime:
		return srv.cfg.OnetimeTTL
	case entity.TokenPasswordReset:
		return srv.cfg.PasswordResetTTL
	case entity.TokenPasswordInvitation:
		return srv.cfg.InvitationTTL
	default:
		return 0
	}
}

// hashSessionID is the key under which durable sessions are stored.
func hashSessionID(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))

	return hex.EncodeToString(sum[:])
}

// Create stores a new session and returns the signed client token.
func (srv *sessionService) Create(ctx context.Context, kind entity.TokenKind, accountID uuid.UUID, ttl time.Duration) (string, error) {
	if !kind.IsValid() {
		return "", domainerrors.ErrBadRequest.WrapMessage("unknown token kind")
	}
	if ttl <= 0 {
		ttl = srv.defaultTTL(kind)
	}

	now := srv.now()
	sessionID := uuid.NewString()
	expiresAt := now.Add(ttl)
	tokenExpiresAt := expiresAt

	if kind.IsDurable() {
		if kind == entity.TokenLongSession && srv.cfg.LongSessionMaxLifetime > ttl {
			tokenExpiresAt = now.Add(srv.cfg.LongSessionMaxLifetime)
		}

		err := srv.tokenRepo.Create(ctx, &entity.StoredToken{
			IDHash:    hashSessionID(sessionID),
			AccountID: accountID,
			Kind:      kind,
			TTL:       ttl,
			ExpiresAt: expiresAt,
			CreatedAt: now,
		})
		if err != nil {
			return "", errors.Wrap(err, "failed to store session")
		}
	} else {
		if err := srv.kv.Put(ctx, onetimeKeyPrefix+sessionID, []byte(accountID.String()), ttl); err != nil {
			return "", errors.Wrap(err, "failed to store one-time session")
		}
	}

	token, err := srv.tokenService.Sign(sessionID, kind, accountID, now, tokenExpiresAt)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	srv.log(ctx).Debug("Session created", slog.String("kind", string(kind)), slog.Any("account_id", accountID))

	return token, nil
}

// Read resolves a token of the expected kind to its account.
func (srv *sessionService) Read(ctx context.Context, kind entity.TokenKind, token string) (uuid.UUID, error) {
	claims, err := srv.tokenService.Parse(token)
	if err != nil || claims.Kind != kind {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("invalid session token")
	}
	accountID, err := claims.AccountID()
	if err != nil {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("invalid session subject")
	}

	if !kind.IsDurable() {
		return srv.readOnetime(ctx, claims.SessionID, accountID)
	}

	return srv.readDurable(ctx, kind, claims.SessionID, accountID)
}

func (srv *sessionService) readOnetime(ctx context.Context, sessionID string, accountID uuid.UUID) (uuid.UUID, error) {
	raw, err := srv.kv.GetAndDelete(ctx, onetimeKeyPrefix+sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("one-time session used or expired")
		}

		return uuid.Nil, errors.Wrap(err, "failed to read one-time session")
	}
	if string(raw) != accountID.String() {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("one-time session account mismatch")
	}

	return accountID, nil
}

func (srv *sessionService) readDurable(ctx context.Context, kind entity.TokenKind, sessionID string, accountID uuid.UUID) (uuid.UUID, error) {
	now := srv.now()
	idHash := hashSessionID(sessionID)

	var stored *entity.StoredToken
	var err error
	if kind.IsReadOnce() {
		stored, err = srv.tokenRepo.Consume(ctx, idHash, now)
	} else {
		stored, err = srv.tokenRepo.Find(ctx, idHash, now)
	}
	if err != nil {
		if errors.Is(err, repository.ErrTokenNotFound) {
			return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("session revoked or expired")
		}

		return uuid.Nil, errors.Wrap(err, "failed to read session")
	}
	if stored.Kind != kind || stored.AccountID != accountID {
		return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("session does not match token")
	}

	if !kind.IsReadOnce() {
		if err := srv.tokenRepo.Touch(ctx, idHash, now, now.Add(stored.TTL)); err != nil {
			if errors.Is(err, repository.ErrTokenNotFound) {
				return uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("session expired")
			}

			return uuid.Nil, errors.Wrap(err, "failed to extend session")
		}
	}

	return accountID, nil
}

// Authenticate resolves a long session to its account.
func (srv *sessionService) Authenticate(ctx context.Context, token string) (*entity.Account, error) {
	accountID, err := srv.Read(ctx, entity.TokenLongSession, token)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("session account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to load session account")
	}

	return account, nil
}

// Revoke deletes the session behind a token. Revoking an unknown session is not an error.
func (srv *sessionService) Revoke(ctx context.Context, token string) error {
	claims, err := srv.tokenService.Parse(token)
	if err != nil {
		return domainerrors.ErrUnauthorized.WrapMessage("invalid session token")
	}

	if !claims.Kind.IsDurable() {
		return errors.Wrap(srv.kv.Delete(ctx, onetimeKeyPrefix+claims.SessionID), "failed to revoke one-time session")
	}

	if err := srv.tokenRepo.Delete(ctx, hashSessionID(claims.SessionID)); err != nil {
		return errors.Wrap(err, "failed to revoke session")
	}

	srv.log(ctx).Info("Session revoked", slog.String("kind", string(claims.Kind)), slog.String("account_id", claims.Subject))

	return nil
}

// RevokeAll deletes every durable session of a kind for the account.
func (srv *sessionService) RevokeAll(ctx context.Context, accountID uuid.UUID, kind entity.TokenKind) (int64, error) {
	if !kind.IsValid() || !kind.IsDurable() {
		return 0, domainerrors.ErrBadRequest.WrapMessage("only durable sessions can be revoked in bulk")
	}

	count, err := srv.tokenRepo.DeleteByAccountAndKind(ctx, accountID, kind)
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke sessions")
	}

	return count, nil
}

// CleanupExpired removes durable sessions past their expiry.
func (srv *sessionService) CleanupExpired(ctx context.Context) (int64, error) {
	count, err := srv.tokenRepo.DeleteExpired(ctx, srv.now())
	if err != nil {
		srv.log(ctx).Error("Failed to clean up expired sessions", slog.Any("error", err))

		return 0, errors.Wrap(err, "failed to clean up expired sessions")
	}

	srv.log(ctx).Info("Expired sessions cleaned up", slog.Int64("count", count))

	return count, nil
}

// IssueAccessToken mints a one-time login token for an account on behalf of an admin.
func (srv *sessionService) IssueAccessToken(ctx context.Context, actor usecase.Actor, accountID uuid.UUID) (string, error) {
	if !actor.IsAdmin() {
		return "", domainerrors.ErrForbidden.WrapMessage("only admins can issue access tokens")
	}

	if _, err := srv.accountRepo.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", domainerrors.ErrAccountNotFound.WrapMessage("cannot issue access token")
		}

		return "", errors.Wrap(err, "failed to find account")
	}

	token, err := srv.Create(ctx, entity.TokenOnetime, accountID, srv.cfg.AccessTokenTTL)
	if err != nil {
		return "", err
	}

	srv.log(ctx).Info("Access token issued", slog.Any("account_id", accountID), slog.Any("admin_id", actor.AccountID))

	return token, nil
}

// LoginWithAccessToken redeems an access token and opens a long session.
func (srv *sessionService) LoginWithAccessToken(ctx context.Context, token string) (*usecase.LoginOutput, error) {
	accountID, err := srv.Read(ctx, entity.TokenOnetime, token)
	if err != nil {
		return nil, err
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("access token account no longer exists")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	session, err := srv.Create(ctx, entity.TokenLongSession, accountID, 0)
	if err != nil {
		return nil, err
	}

	return &usecase.LoginOutput{Token: session, Account: account}, nil
}
