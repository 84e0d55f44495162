package repository

import (
	"context"
	"errors"
)

// ErrSerializationFailure is returned when the database aborts a transaction
// because it conflicted with a concurrent one. The whole unit may be retried.
var ErrSerializationFailure = errors.New("transaction serialization failure")

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error

	// ExecuteSerializable is Execute at the strictest isolation level the database offers.
	// Conflicts surface as ErrSerializationFailure.
	ExecuteSerializable(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// NewAccountRepository returns an AccountRepository instance bound to the current transaction.
	NewAccountRepository() AccountRepository

	// NewLedgerRepository returns a LedgerRepository instance bound to the current transaction.
	NewLedgerRepository() LedgerRepository

	// NewTokenRepository returns a TokenRepository instance bound to the current transaction.
	NewTokenRepository() TokenRepository
}
