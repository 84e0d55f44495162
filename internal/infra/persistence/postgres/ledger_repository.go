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

// ledgerRepository implements the domain.LedgerRepository interface using GORM.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository is the constructor for ledgerRepository.
func NewLedgerRepository(db *gorm.DB) repository.LedgerRepository {
	return &ledgerRepository{db: db}
}

// Append inserts the transaction together with its items.
func (repo *ledgerRepository) Append(ctx context.Context, tx *entity.Transaction) error {
	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	if tx.CreatedAt.IsZero() {
		tx.CreatedAt = time.Now()
	}

	txM := fromTransactionDomain(tx)
	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to append transaction")
	}

	return nil
}

// ListByAccount returns the account's transactions in [from, to), newest first.
func (repo *ledgerRepository) ListByAccount(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	q := repo.db.WithContext(ctx).Where("account_id = ?", accountID)
	if !from.IsZero() {
		q = q.Where("created_at >= ?", from.UTC())
	}
	if !to.IsZero() {
		q = q.Where("created_at < ?", to.UTC())
	}

	var txModels []*model.TransactionModel
	if err := q.Preload("Items", orderByPosition).
		Order("created_at DESC").
		Order("id").
		Find(&txModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	txs := make([]*entity.Transaction, 0, len(txModels))
	for _, txM := range txModels {
		txs = append(txs, toTransactionDomain(txM))
	}

	return txs, nil
}

// FindByAccountAndID returns a single transaction of the account.
func (repo *ledgerRepository) FindByAccountAndID(ctx context.Context, accountID, id uuid.UUID) (*entity.Transaction, error) {
	var txM model.TransactionModel
	err := repo.db.WithContext(ctx).
		Preload("Items", orderByPosition).
		Where("id = ? AND account_id = ?", id, accountID).
		First(&txM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTransactionNotFound
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return toTransactionDomain(&txM), nil
}

type ledgerMismatchRow struct {
	AccountID     uuid.UUID
	Balance       int64
	LedgerBalance int64
}

// FindMismatches compares every account balance with the sum of its ledger totals.
func (repo *ledgerRepository) FindMismatches(ctx context.Context) ([]entity.LedgerMismatch, error) {
	var rows []ledgerMismatchRow
	err := repo.db.WithContext(ctx).Raw(`
		SELECT a.id AS account_id, a.balance AS balance, CAST(COALESCE(SUM(t.total), 0) AS BIGINT) AS ledger_balance
		FROM accounts a
		LEFT JOIN transactions t ON t.account_id = a.id
		GROUP BY a.id, a.balance
		HAVING a.balance <> COALESCE(SUM(t.total), 0)
		ORDER BY a.id`).Scan(&rows).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate ledger")
	}

	out := make([]entity.LedgerMismatch, 0, len(rows))
	for _, row := range rows {
		out = append(out, entity.LedgerMismatch(row))
	}

	return out, nil
}

func orderByPosition(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// --- Mapper Functions ---

func toTransactionDomain(data *model.TransactionModel) *entity.Transaction {
	if data == nil {
		return nil
	}

	items := make([]entity.TransactionItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.TransactionItem{
			Index:                 item.Position,
			Price:                 item.Price,
			PayWithStamps:         entity.StampType(item.PayWithStamps),
			GiveStamps:            entity.StampType(item.GiveStamps),
			CouldBePaidWithStamps: entity.StampType(item.CouldBePaidWithStamps),
			ProductID:             item.ProductID,
		})
	}

	return &entity.Transaction{
		ID:           data.ID,
		AccountID:    data.AccountID,
		Total:        data.Total,
		BeforeCredit: data.BeforeCredit,
		AfterCredit:  data.AfterCredit,
		StampsBefore: toStampsDomain(data.StampsBefore),
		StampsAfter:  toStampsDomain(data.StampsAfter),
		Items:        items,
		CreatedAt:    data.CreatedAt,
	}
}

func fromTransactionDomain(data *entity.Transaction) *model.TransactionModel {
	if data == nil {
		return nil
	}

	items := make([]model.TransactionItemModel, 0, len(data.Items))
	for i, item := range data.Items {
		items = append(items, model.TransactionItemModel{
			TransactionID:         data.ID,
			Position:              i,
			Price:                 item.Price,
			PayWithStamps:         string(item.PayWithStamps),
			GiveStamps:            string(item.GiveStamps),
			CouldBePaidWithStamps: string(item.CouldBePaidWithStamps),
			ProductID:             item.ProductID,
		})
	}

	return &model.TransactionModel{
		ID:           data.ID,
		AccountID:    data.AccountID,
		Total:        data.Total,
		BeforeCredit: data.BeforeCredit,
		AfterCredit:  data.AfterCredit,
		StampsBefore: fromStampsDomain(data.StampsBefore),
		StampsAfter:  fromStampsDomain(data.StampsAfter),
		CreatedAt:    data.CreatedAt.UTC(),
		Items:        items,
	}
}
