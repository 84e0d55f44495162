package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "cashless/internal/delivery/context"
	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	accountRepo repository.AccountRepository
	txManager   repository.TransactionManager
	logger      *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	TxManager   repository.TransactionManager
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		accountRepo: params.AccountRepo,
		txManager:   params.TxManager,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateAccount opens an empty account. Balance and stamps start at zero.
func (srv *accountService) CreateAccount(ctx context.Context, actor usecase.Actor, input *usecase.CreateAccountInput) (*entity.Account, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins may create accounts")
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}
	role := input.Role
	if role == "" {
		role = entity.RoleBasic
	}
	if !role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}

	account := &entity.Account{
		Name:                 name,
		Email:                strings.TrimSpace(input.Email),
		Role:                 role,
		Stamps:               entity.Stamps{},
		MinimumCredit:        input.MinimumCredit,
		UseDigitalStamps:     input.UseDigitalStamps,
		AllowNfcRegistration: input.AllowNfcRegistration,
	}
	if err := srv.accountRepo.Create(ctx, account); err != nil {
		srv.log(ctx).Error("Failed to create account", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Account created", slog.Any("account_id", account.ID), slog.String("role", role.String()))

	return account, nil
}

// GetAccount returns an account to an admin or to its owner.
func (srv *accountService) GetAccount(ctx context.Context, actor usecase.Actor, accountID uuid.UUID) (*entity.Account, error) {
	if !actor.CanAccess(accountID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read another account")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	return account, nil
}

// UpdateAccount changes account metadata. Balance and stamps are left to the transaction engine.
func (srv *accountService) UpdateAccount(ctx context.Context, actor usecase.Actor, accountID uuid.UUID, input *usecase.UpdateAccountInput) (*entity.Account, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins may update accounts")
	}
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown role")
	}
	if input.Name != nil && strings.TrimSpace(*input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name must not be empty")
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found")
			}

			return errors.Wrap(err, "failed to find account")
		}

		if input.Name != nil {
			account.Name = strings.TrimSpace(*input.Name)
		}
		if input.Email != nil {
			account.Email = strings.TrimSpace(*input.Email)
		}
		if input.Role != nil {
			account.Role = *input.Role
		}
		if input.MinimumCredit != nil {
			account.MinimumCredit = *input.MinimumCredit
		}
		if input.UseDigitalStamps != nil {
			account.UseDigitalStamps = *input.UseDigitalStamps
		}
		if input.AllowNfcRegistration != nil {
			account.AllowNfcRegistration = *input.AllowNfcRegistration
		}

		if err := accountRepo.Store(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store account")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update account")
	}

	srv.log(ctx).Info("Account updated", slog.Any("account_id", accountID))

	return updated, nil
}
