// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
)

// Actor is the authenticated account on whose behalf an operation runs.
type Actor struct {
	AccountID uuid.UUID
	Role      entity.Role
}

// ActorOf builds the actor for an authenticated account.
func ActorOf(account *entity.Account) Actor {
	return Actor{AccountID: account.ID, Role: account.Role}
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role.AtLeast(entity.RoleAdmin)
}

// CanAccess reports whether the actor may act on accountID: admins on any account, others on their own.
func (a Actor) CanAccess(accountID uuid.UUID) bool {
	return a.IsAdmin() || a.AccountID == accountID
}

// --- Input DTOs ---

// CreateAccountInput defines the data required to open a new account.
type CreateAccountInput struct {
	Name                 string
	Email                string
	Role                 entity.Role
	MinimumCredit        int64
	UseDigitalStamps     bool
	AllowNfcRegistration bool
}

// UpdateAccountInput carries the metadata an admin may change. Nil fields are left untouched.
type UpdateAccountInput struct {
	Name                 *string
	Email                *string
	Role                 *entity.Role
	MinimumCredit        *int64
	UseDigitalStamps     *bool
	AllowNfcRegistration *bool
}

// AccountUsecase defines account administration.
type AccountUsecase interface {
	CreateAccount(ctx context.Context, actor Actor, input *CreateAccountInput) (*entity.Account, error)
	GetAccount(ctx context.Context, actor Actor, accountID uuid.UUID) (*entity.Account, error)
	UpdateAccount(ctx context.Context, actor Actor, accountID uuid.UUID, input *UpdateAccountInput) (*entity.Account, error)
}
