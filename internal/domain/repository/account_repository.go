// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrAuthMethodTaken is returned when a card id, username or barcode already belongs to an account.
var ErrAuthMethodTaken = errors.New("authentication method already in use")

// AccountRepository defines the standard operations for account persistence.
type AccountRepository interface {
	// FindByID retrieves a single account, including its authentication methods.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByIDForUpdate is FindByID that also locks the row for the rest of the
	// enclosing transaction where the database supports it.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByAuthMethod resolves the account owning the given card id, username or barcode.
	FindByAuthMethod(ctx context.Context, kind entity.AuthMethodKind, identifier string) (*entity.Account, error)

	// Create persists a new account. The ID is generated when empty.
	Create(ctx context.Context, account *entity.Account) error

	// Store writes the account metadata and replaces its authentication methods.
	// It never writes balance or stamps.
	// It validates the methods first and returns ErrAuthMethodTaken on a uniqueness clash.
	Store(ctx context.Context, account *entity.Account) error

	// StoreBalance writes balance and stamps only. The transaction engine is its sole caller.
	StoreBalance(ctx context.Context, account *entity.Account) error

	// ListIDs returns the ids of every account.
	ListIDs(ctx context.Context) ([]uuid.UUID, error)
}
