package usecase

import (
	"context"
	"time"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
)

// ExecuteOutput is the result of a booking. When the booking was cancelled because
// stamps could pay for it, Transaction is nil and AccountToken lets the terminal
// retry without identifying the customer again.
type ExecuteOutput struct {
	Account      *entity.Account
	Transaction  *entity.Transaction
	AccountToken string
}

// TransactionUsecase books purchases and top-ups against accounts.
type TransactionUsecase interface {
	// Execute applies items to the account atomically. Serialization conflicts are retried.
	Execute(ctx context.Context, accountID uuid.UUID, items []entity.TransactionItem, rejectIfStampable bool) (*ExecuteOutput, error)

	// ExecuteWithToken redeems a one-time session and executes against its account.
	ExecuteWithToken(ctx context.Context, token string, items []entity.TransactionItem, rejectIfStampable bool) (*ExecuteOutput, error)

	ListByAccount(ctx context.Context, actor Actor, accountID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error)
	GetByAccountAndID(ctx context.Context, actor Actor, accountID, transactionID uuid.UUID) (*entity.Transaction, error)

	// ValidateAll lists the accounts whose balance disagrees with their ledger.
	ValidateAll(ctx context.Context, actor Actor) ([]entity.LedgerMismatch, error)
}
