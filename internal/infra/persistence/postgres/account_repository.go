package postgres

import (
	"context"

	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	"cashless/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, with its authentication methods in order.
func (repo *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	return repo.find(ctx, repo.db.WithContext(ctx), id)
}

// FindByIDForUpdate locks the account row until the enclosing transaction ends.
// SQLite has no row locks; its write transactions are exclusive already.
func (repo *accountRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error) {
	q := repo.db.WithContext(ctx)
	if isPostgres(repo.db) {
		q = q.Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate})
	}

	return repo.find(ctx, q, id)
}

func (repo *accountRepository) find(ctx context.Context, q *gorm.DB, id uuid.UUID) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := q.Where("id = ?", id).First(&accountM).Error; err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", id).
		Order("position").
		Find(&accountM.AuthMethods).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load authentication methods")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByAuthMethod resolves the account owning the given identifier through the unique lookup key.
func (repo *accountRepository) FindByAuthMethod(ctx context.Context, kind entity.AuthMethodKind, identifier string) (*entity.Account, error) {
	var methodM model.AuthMethodModel
	err := repo.db.WithContext(ctx).
		Where("lookup_key = ?", entity.LookupKey(kind, identifier)).
		First(&methodM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find authentication method")
	}

	return repo.FindByID(ctx, methodM.AccountID)
}

// Create persists a new account and its authentication methods.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	if err := account.ValidateAuthMethods(); err != nil {
		return domainerrors.ErrAuthMethodInvalid.WrapMessage(err.Error())
	}
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}

	accountM := fromAccountDomain(account)
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(accountM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}
	if err := repo.insertAuthMethods(ctx, account); err != nil {
		return err
	}

	// Update the entity with generated values
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// StoreBalance writes the balance and stamp counters of an account loaded
// with FindByIDForUpdate in the same transaction.
func (repo *accountRepository) StoreBalance(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"balance": accountM.Balance,
			"stamps":  accountM.Stamps,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// Store writes the account metadata and replaces its authentication methods.
// Balance and stamps are left untouched; only StoreBalance writes them.
// Callers run it inside a transaction so the replacement is atomic.
func (repo *accountRepository) Store(ctx context.Context, account *entity.Account) error {
	if err := account.ValidateAuthMethods(); err != nil {
		return domainerrors.ErrAuthMethodInvalid.WrapMessage(err.Error())
	}

	accountM := fromAccountDomain(account)
	result := repo.db.WithContext(ctx).
		Model(&model.AccountModel{}).
		Where("id = ?", account.ID).
		Updates(map[string]any{
			"name":                   accountM.Name,
			"email":                  accountM.Email,
			"role":                   accountM.Role,
			"minimum_credit":         accountM.MinimumCredit,
			"use_digital_stamps":     accountM.UseDigitalStamps,
			"allow_nfc_registration": accountM.AllowNfcRegistration,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	if err := repo.db.WithContext(ctx).
		Where("account_id = ?", account.ID).
		Delete(&model.AuthMethodModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear authentication methods")
	}

	return repo.insertAuthMethods(ctx, account)
}

func (repo *accountRepository) insertAuthMethods(ctx context.Context, account *entity.Account) error {
	if len(account.AuthMethods) == 0 {
		return nil
	}

	methods := fromAuthMethodsDomain(account.ID, account.AuthMethods)
	if err := repo.db.WithContext(ctx).Create(&methods).Error; err != nil {
		// Convert database errors to domain errors
		if isUniqueConstraintViolation(err) {
			return repository.ErrAuthMethodTaken
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to store authentication methods")
	}

	return nil
}

// ListIDs returns the ids of every account.
func (repo *accountRepository) ListIDs(ctx context.Context) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := repo.db.WithContext(ctx).Model(&model.AccountModel{}).Order("id").Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return ids, nil
}

// --- Mapper Functions ---

// toAccountDomain converts a GORM AccountModel to a domain Account entity.
func toAccountDomain(data *model.AccountModel) *entity.Account {
	if data == nil {
		return nil
	}

	methods := make([]entity.AuthMethod, 0, len(data.AuthMethods))
	for i := range data.AuthMethods {
		if m := toAuthMethodDomain(&data.AuthMethods[i]); m != nil {
			methods = append(methods, m)
		}
	}

	return &entity.Account{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		Role:                 entity.Role(data.Role),
		Balance:              data.Balance,
		Stamps:               toStampsDomain(data.Stamps),
		MinimumCredit:        data.MinimumCredit,
		UseDigitalStamps:     data.UseDigitalStamps,
		AllowNfcRegistration: data.AllowNfcRegistration,
		AuthMethods:          methods,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromAccountDomain converts a domain Account entity to a GORM AccountModel.
// Authentication methods are mapped separately.
func fromAccountDomain(data *entity.Account) *model.AccountModel {
	if data == nil {
		return nil
	}

	return &model.AccountModel{
		ID:                   data.ID,
		Name:                 data.Name,
		Email:                data.Email,
		Role:                 data.Role.String(),
		Balance:              data.Balance,
		Stamps:               fromStampsDomain(data.Stamps),
		MinimumCredit:        data.MinimumCredit,
		UseDigitalStamps:     data.UseDigitalStamps,
		AllowNfcRegistration: data.AllowNfcRegistration,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

func toAuthMethodDomain(data *model.AuthMethodModel) entity.AuthMethod {
	switch entity.AuthMethodKind(data.Kind) {
	case entity.AuthMethodPassword:
		return &entity.PasswordAuth{Username: data.Identifier, PasswordHash: data.PasswordHash}
	case entity.AuthMethodNfc:
		return &entity.NfcAuth{
			Name:     data.CardName,
			CardID:   data.Identifier,
			CardType: entity.CardType(data.CardType),
			Secret:   data.CardSecret,
		}
	case entity.AuthMethodBarcode:
		return &entity.BarcodeAuth{Code: data.Identifier}
	default:
		return nil
	}
}

func fromAuthMethodsDomain(accountID uuid.UUID, methods []entity.AuthMethod) []model.AuthMethodModel {
	out := make([]model.AuthMethodModel, 0, len(methods))
	for i, m := range methods {
		row := model.AuthMethodModel{
			ID:         uuid.New(),
			AccountID:  accountID,
			Position:   i,
			Kind:       string(m.Kind()),
			LookupKey:  entity.LookupKey(m.Kind(), m.Identifier()),
			Identifier: m.Identifier(),
		}
		switch v := m.(type) {
		case *entity.PasswordAuth:
			row.PasswordHash = v.PasswordHash
		case *entity.NfcAuth:
			row.CardName = v.Name
			row.CardType = string(v.CardType)
			row.CardSecret = v.Secret
		}
		out = append(out, row)
	}

	return out
}

func toStampsDomain(data model.StampCounters) entity.Stamps {
	raw := data.Data()
	out := make(entity.Stamps, len(raw))
	for k, v := range raw {
		out[entity.StampType(k)] = v
	}

	return out
}

func fromStampsDomain(stamps entity.Stamps) model.StampCounters {
	raw := make(map[string]int64, len(entity.StampTypes))
	for _, t := range entity.StampTypes {
		raw[string(t)] = stamps.Get(t)
	}

	return datatypes.NewJSONType(raw)
}
