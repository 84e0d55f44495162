package impl

import (
	"context"
	"log/slog"
	"strings"

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

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	accountRepo repository.AccountRepository
	txManager   repository.TransactionManager
	hasher      service.PasswordHasher
	sessions    usecase.SessionUsecase
	logger      *slog.Logger
}

// PasswordServiceParams holds dependencies for PasswordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	TxManager   repository.TransactionManager
	Hasher      service.PasswordHasher
	Sessions    usecase.SessionUsecase
	Logger      *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	return &passwordService{
		accountRepo: params.AccountRepo,
		txManager:   params.TxManager,
		hasher:      params.Hasher,
		sessions:    params.Sessions,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login checks username and password and opens a long session.
func (srv *passwordService) Login(ctx context.Context, username, password string) (*usecase.LoginOutput, error) {
	if password == "" || username == "" {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("empty credentials")
	}

	account, err := srv.accountRepo.FindByAuthMethod(ctx, entity.AuthMethodPassword, username)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Debug("Login failed", slog.String("reason", "unknown username"))

			return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid credentials")
		}

		return nil, errors.Wrap(err, "failed to find account by username")
	}

	auth, ok := account.PasswordAuth()
	if !ok || !srv.hasher.Check(password, auth.PasswordHash) {
		srv.log(ctx).Debug("Login failed", slog.String("reason", "password mismatch"), slog.Any("account_id", account.ID))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid credentials")
	}

	token, err := srv.sessions.Create(ctx, entity.TokenLongSession, account.ID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("account_id", account.ID))

	return &usecase.LoginOutput{Token: token, Account: account}, nil
}

// issueLink revokes the account's earlier links of kind and issues a fresh one.
func (srv *passwordService) issueLink(ctx context.Context, actor usecase.Actor, accountID uuid.UUID, kind entity.TokenKind, check func(*entity.Account) error) (string, error) {
	if !actor.IsAdmin() {
		return "", domainerrors.ErrForbidden.WrapMessage("only admins may issue password links")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", errors.Wrap(domainerrors.ErrAccountNotFound, "link target not found")
		}

		return "", errors.Wrap(err, "failed to find account")
	}
	if check != nil {
		if err := check(account); err != nil {
			return "", err
		}
	}

	if _, err := srv.sessions.RevokeAll(ctx, accountID, kind); err != nil {
		return "", errors.Wrap(err, "failed to revoke earlier links")
	}
	token, err := srv.sessions.Create(ctx, kind, accountID, 0)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue link")
	}

	srv.log(ctx).Info("Password link issued", slog.Any("account_id", accountID), slog.String("kind", string(kind)))

	return token, nil
}

// CreateInvitation issues a single-use link to set username and password.
func (srv *passwordService) CreateInvitation(ctx context.Context, actor usecase.Actor, accountID uuid.UUID) (string, error) {
	return srv.issueLink(ctx, actor, accountID, entity.TokenPasswordInvitation, nil)
}

// CreatePasswordReset issues a single-use link to replace the password of an account that has one.
func (srv *passwordService) CreatePasswordReset(ctx context.Context, actor usecase.Actor, accountID uuid.UUID) (string, error) {
	return srv.issueLink(ctx, actor, accountID, entity.TokenPasswordReset, func(account *entity.Account) error {
		if _, ok := account.PasswordAuth(); !ok {
			return domainerrors.ErrAuthMethodInvalid.WrapMessage("account has no password to reset")
		}

		return nil
	})
}

// RedeemInvitation consumes the invitation and sets the account's username and password.
func (srv *passwordService) RedeemInvitation(ctx context.Context, token, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return domainerrors.ErrBadRequest.WrapMessage("username is required")
	}
	if password == "" {
		return domainerrors.ErrEmptyPassword
	}

	accountID, err := srv.sessions.Read(ctx, entity.TokenPasswordInvitation, token)
	if err != nil {
		return err
	}

	return srv.storePassword(ctx, accountID, password, func(*entity.PasswordAuth) (string, error) {
		return username, nil
	})
}

// ResetPassword consumes the reset link, replaces the hash and ends the account's long sessions.
func (srv *passwordService) ResetPassword(ctx context.Context, token, password string) error {
	if password == "" {
		return domainerrors.ErrEmptyPassword
	}

	accountID, err := srv.sessions.Read(ctx, entity.TokenPasswordReset, token)
	if err != nil {
		return err
	}

	err = srv.storePassword(ctx, accountID, password, func(existing *entity.PasswordAuth) (string, error) {
		if existing == nil {
			return "", domainerrors.ErrAuthMethodInvalid.WrapMessage("account has no password to reset")
		}

		return existing.Username, nil
	})
	if err != nil {
		return err
	}

	revoked, err := srv.sessions.RevokeAll(ctx, accountID, entity.TokenLongSession)
	if err != nil {
		return errors.Wrap(err, "failed to revoke sessions after password reset")
	}
	srv.log(ctx).Info("Password reset", slog.Any("account_id", accountID), slog.Int64("revoked_sessions", revoked))

	return nil
}

// storePassword hashes password and writes it with the username chosen by pickUsername.
func (srv *passwordService) storePassword(ctx context.Context, accountID uuid.UUID, password string, pickUsername func(existing *entity.PasswordAuth) (string, error)) error {
	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "password owner not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		existing, _ := account.PasswordAuth()
		username, err := pickUsername(existing)
		if err != nil {
			return err
		}

		account.SetAuthMethod(&entity.PasswordAuth{Username: username, PasswordHash: hash})
		if err := accountRepo.Store(ctx, account); err != nil {
			if errors.Is(err, repository.ErrAuthMethodTaken) {
				return errors.Wrap(domainerrors.ErrAuthMethodConflict, "username already taken")
			}

			return errors.Wrap(err, "failed to store password")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store password", slog.Any("account_id", accountID), slog.Any("error", err))

		return errors.Wrap(err, "failed to store password")
	}

	return nil
}

// RemovePassword drops the account's password method.
func (srv *passwordService) RemovePassword(ctx context.Context, actor usecase.Actor, accountID uuid.UUID) error {
	if !actor.CanAccess(accountID) {
		return domainerrors.ErrForbidden.WrapMessage("cannot remove the password of another account")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "password owner not found")
			}

			return errors.Wrap(err, "failed to find account")
		}
		if !account.RemoveAuthMethod(entity.AuthMethodPassword) {
			return errors.Wrap(domainerrors.ErrNotFound, "account has no password")
		}

		return errors.Wrap(accountRepo.Store(ctx, account), "failed to store account")
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove password")
	}

	srv.log(ctx).Info("Password removed", slog.Any("account_id", accountID))

	return nil
}
