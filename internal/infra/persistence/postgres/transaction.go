// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"cashless/internal/domain/repository"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object (*gorm.Tx) and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object *gorm.Tx is also a *gorm.DB
}

// NewAccountRepository creates a new account repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return NewAccountRepository(f.tx)
}

// NewLedgerRepository creates a new ledger repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewLedgerRepository() repository.LedgerRepository {
	return NewLedgerRepository(f.tx)
}

// NewTokenRepository creates a new token repository instance bound to the transaction.
func (f *gormRepositoryFactory) NewTokenRepository() repository.TokenRepository {
	return NewTokenRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.execute(ctx, nil, fn)
}

// ExecuteSerializable runs fn at SERIALIZABLE isolation on PostgreSQL. SQLite
// transactions are serializable already.
func (tm *gormTransactionManager) ExecuteSerializable(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var opts *sql.TxOptions
	if isPostgres(tm.db) {
		opts = &sql.TxOptions{Isolation: sql.LevelSerializable}
	}

	return tm.execute(ctx, opts, fn)
}

func (tm *gormTransactionManager) execute(ctx context.Context, opts *sql.TxOptions, fn func(repoFactory repository.RepositoryFactory) error) error {
	// Begin a new transaction
	var tx *gorm.DB
	if opts != nil {
		tx = tm.db.WithContext(ctx).Begin(opts)
	} else {
		tx = tm.db.WithContext(ctx).Begin()
	}
	if tx.Error != nil {
		return classifyTxError(fmt.Errorf("failed to begin transaction: %w", tx.Error))
	}

	// Roll back if the callback panics, then re-panic for Fx or middleware.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	// Create a repository factory that is bound to this specific transaction.
	factory := &gormRepositoryFactory{tx: tx}

	// Execute the application logic (the use case's core work)
	err := fn(factory)
	if err != nil {
		// If the business logic returns an error, roll back the transaction.
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// Return the original, more meaningful business error.
			return classifyTxError(fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err))
		}

		return classifyTxError(err)
	}

	// If the business logic completes without error, commit the transaction.
	if err := tx.Commit().Error; err != nil {
		return classifyTxError(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}

// classifyTxError tags retryable conflicts with repository.ErrSerializationFailure
// while keeping the original error in the chain.
func classifyTxError(err error) error {
	if isSerializationFailure(err) {
		return fmt.Errorf("%w: %w", repository.ErrSerializationFailure, err)
	}

	return err
}
