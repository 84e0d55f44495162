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

// identificationService implements the IdentificationUsecase interface.
type identificationService struct {
	accountRepo repository.AccountRepository
	txManager   repository.TransactionManager
	sessions    usecase.SessionUsecase
	qrcode      service.QRCodeService
	logger      *slog.Logger
}

// IdentificationServiceParams holds dependencies for IdentificationService, injected by Fx.
type IdentificationServiceParams struct {
	fx.In

	AccountRepo   repository.AccountRepository
	TxManager     repository.TransactionManager
	Sessions      usecase.SessionUsecase
	QRCodeService service.QRCodeService
	Logger        *slog.Logger
}

// NewIdentificationService is the constructor for identificationService.
func NewIdentificationService(params IdentificationServiceParams) usecase.IdentificationUsecase {
	return &identificationService{
		accountRepo: params.AccountRepo,
		txManager:   params.TxManager,
		sessions:    params.Sessions,
		qrcode:      params.QRCodeService,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *identificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IdentifyByBarcode resolves a public tab code. Admins cannot be identified by a barcode alone.
func (srv *identificationService) IdentifyByBarcode(ctx context.Context, code string) (*usecase.IdentifyOutput, error) {
	tabCode, err := srv.qrcode.ParseTabQR(code)
	if err != nil {
		return nil, domainerrors.ErrBadRequest.WrapMessage(err.Error())
	}

	account, err := srv.accountRepo.FindByAuthMethod(ctx, entity.AuthMethodBarcode, tabCode)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Debug("Barcode identification failed", slog.String("reason", "unknown code"))

			return nil, domainerrors.ErrUnauthorized.WrapMessage("unknown barcode")
		}

		return nil, errors.Wrap(err, "failed to find account by barcode")
	}
	if account.Role.AtLeast(entity.RoleAdmin) && !account.HasMethodOtherThan(entity.AuthMethodBarcode) {
		srv.log(ctx).Warn("Barcode identification refused for admin account", slog.Any("account_id", account.ID))

		return nil, domainerrors.ErrUnauthorized.WrapMessage("barcode cannot identify an admin")
	}

	token, err := srv.sessions.Create(ctx, entity.TokenOnetime, account.ID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	return &usecase.IdentifyOutput{Account: account, Token: token}, nil
}

// RegisterBarcode sets the account's public tab code.
func (srv *identificationService) RegisterBarcode(ctx context.Context, actor usecase.Actor, accountID uuid.UUID, code string) (*entity.Account, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins may assign barcodes")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, domainerrors.ErrBadRequest.WrapMessage("barcode is required")
	}

	var updated *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "barcode owner not found")
			}

			return errors.Wrap(err, "failed to find account")
		}
		if account.Role.AtLeast(entity.RoleAdmin) && !account.HasMethodOtherThan(entity.AuthMethodBarcode) {
			return domainerrors.ErrAuthMethodInvalid.WrapMessage("a barcode cannot be the only method of an admin")
		}

		account.SetAuthMethod(&entity.BarcodeAuth{Code: code})
		if err := accountRepo.Store(ctx, account); err != nil {
			if errors.Is(err, repository.ErrAuthMethodTaken) {
				return errors.Wrap(domainerrors.ErrAuthMethodConflict, "barcode already in use")
			}

			return errors.Wrap(err, "failed to store barcode")
		}
		updated = account

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to register barcode")
	}

	srv.log(ctx).Info("Barcode registered", slog.Any("account_id", accountID))

	return updated, nil
}

// TabQRCode renders the account's tab code.
func (srv *identificationService) TabQRCode(ctx context.Context, actor usecase.Actor, accountID uuid.UUID) ([]byte, error) {
	if !actor.CanAccess(accountID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read the tab of another account")
	}

	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "tab owner not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	barcode, ok := account.BarcodeAuth()
	if !ok {
		return nil, errors.Wrap(domainerrors.ErrNotFound, "account has no tab code")
	}

	png, err := srv.qrcode.GenerateTabQR(barcode.Code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render tab code")
	}

	return png, nil
}
