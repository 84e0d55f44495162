package usecase

import (
	"context"

	"github.com/google/uuid"
)

// PasswordUsecase handles username/password login and the invitation and reset links.
type PasswordUsecase interface {
	Login(ctx context.Context, username, password string) (*LoginOutput, error)

	// CreateInvitation issues a single-use link to set username and password.
	// Earlier invitations of the account are revoked.
	CreateInvitation(ctx context.Context, actor Actor, accountID uuid.UUID) (string, error)
	RedeemInvitation(ctx context.Context, token, username, password string) error

	// CreatePasswordReset issues a single-use link to replace the password.
	CreatePasswordReset(ctx context.Context, actor Actor, accountID uuid.UUID) (string, error)
	ResetPassword(ctx context.Context, token, password string) error

	RemovePassword(ctx context.Context, actor Actor, accountID uuid.UUID) error
}
