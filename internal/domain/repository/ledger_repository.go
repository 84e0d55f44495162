package repository

import (
	"context"
	"errors"
	"time"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrTransactionNotFound is returned when a ledger entry does not exist for the account.
var ErrTransactionNotFound = errors.New("transaction not found")

// LedgerRepository is the append-only store of transactions.
type LedgerRepository interface {
	// Append persists the transaction and its items. The ID is generated when empty.
	Append(ctx context.Context, tx *entity.Transaction) error

	// ListByAccount returns the account's transactions in [from, to), newest first.
	// A zero bound is open.
	ListByAccount(ctx context.Context, accountID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error)

	// FindByAccountAndID returns a single transaction with its items.
	FindByAccountAndID(ctx context.Context, accountID, id uuid.UUID) (*entity.Transaction, error)

	// FindMismatches returns the accounts whose balance differs from the sum of their ledger totals.
	FindMismatches(ctx context.Context) ([]entity.LedgerMismatch, error)
}
