package postgres

import (
	"context"
	"time"

	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	"cashless/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// tokenRepository implements the domain.TokenRepository interface.
type tokenRepository struct {
	db *gorm.DB
}

// NewTokenRepository is the constructor for tokenRepository.
func NewTokenRepository(db *gorm.DB) repository.TokenRepository {
	return &tokenRepository{db: db}
}

// Create persists a new durable token.
func (repo *tokenRepository) Create(ctx context.Context, token *entity.StoredToken) error {
	tokenM := fromTokenDomain(token)

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("token already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

// Find retrieves an unexpired token without consuming it.
func (repo *tokenRepository) Find(ctx context.Context, idHash string, now time.Time) (*entity.StoredToken, error) {
	var tokenM model.TokenModel
	err := repo.db.WithContext(ctx).
		Where("id_hash = ? AND expires_at > ?", idHash, now.UTC()).
		First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTokenNotFound
		}

		return nil, errors.WithStack(err)
	}

	return toTokenDomain(&tokenM), nil
}

// Consume deletes an unexpired token and returns it. Of two concurrent
// consumers only the one whose delete affects the row succeeds.
func (repo *tokenRepository) Consume(ctx context.Context, idHash string, now time.Time) (*entity.StoredToken, error) {
	token, err := repo.Find(ctx, idHash, now)
	if err != nil {
		return nil, err
	}

	result := repo.db.WithContext(ctx).
		Where("id_hash = ? AND expires_at > ?", idHash, now.UTC()).
		Delete(&model.TokenModel{})
	if result.Error != nil {
		return nil, errors.WithStack(result.Error)
	}

	// If no rows were affected, another reader consumed the token first.
	if result.RowsAffected == 0 {
		return nil, repository.ErrTokenNotFound
	}

	return token, nil
}

// Touch moves the expiry of an unexpired token.
func (repo *tokenRepository) Touch(ctx context.Context, idHash string, now, expiresAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.TokenModel{}).
		Where("id_hash = ? AND expires_at > ?", idHash, now.UTC()).
		Update("expires_at", expiresAt.UTC())
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrTokenNotFound
	}

	return nil
}

// Delete removes a token regardless of its state, effectively ending a session.
func (repo *tokenRepository) Delete(ctx context.Context, idHash string) error {
	if err := repo.db.WithContext(ctx).
		Where("id_hash = ?", idHash).
		Delete(&model.TokenModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DeleteByAccountAndKind removes every token of a kind for the account.
func (repo *tokenRepository) DeleteByAccountAndKind(ctx context.Context, accountID uuid.UUID, kind entity.TokenKind) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("account_id = ? AND kind = ?", accountID, string(kind)).
		Delete(&model.TokenModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// DeleteExpired removes all expired tokens from the database.
func (repo *tokenRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", now.UTC()).
		Delete(&model.TokenModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}

// --- Mapper Functions ---

// toTokenDomain converts a GORM TokenModel to a domain StoredToken entity.
func toTokenDomain(data *model.TokenModel) *entity.StoredToken {
	if data == nil {
		return nil
	}

	return &entity.StoredToken{
		IDHash:    data.IDHash,
		AccountID: data.AccountID,
		Kind:      entity.TokenKind(data.Kind),
		TTL:       time.Duration(data.TTLSeconds) * time.Second,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromTokenDomain converts a domain StoredToken entity to a GORM TokenModel.
func fromTokenDomain(data *entity.StoredToken) *model.TokenModel {
	if data == nil {
		return nil
	}

	return &model.TokenModel{
		IDHash:     data.IDHash,
		AccountID:  data.AccountID,
		Kind:       string(data.Kind),
		TTLSeconds: int64(data.TTL / time.Second),
		ExpiresAt:  data.ExpiresAt.UTC(),
		CreatedAt:  data.CreatedAt,
	}
}
