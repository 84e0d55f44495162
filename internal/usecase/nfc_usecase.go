package usecase

import (
	"context"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
)

// NfcResponseOutput is the result of a completed card handshake.
type NfcResponseOutput struct {
	CardID     string
	SessionKey []byte
	Token      string
	Account    *entity.Account
}

// RegisterCardInput binds a card to an account.
type RegisterCardInput struct {
	AccountID uuid.UUID
	Name      string
	CardID    string
	CardType  entity.CardType
	Secret    []byte
}

// RegisterCardOutput returns the account and, when the server generated the
// card key, the key to write onto the card. The key is never shown again.
type RegisterCardOutput struct {
	Account  *entity.Account
	WriteKey []byte
}

// NfcUsecase runs the mutual challenge-response handshake with NFC cards.
type NfcUsecase interface {
	// CardType reports which handshake the terminal has to run for a card.
	CardType(ctx context.Context, cardID string) (entity.CardType, error)

	// Challenge answers the card's encrypted rndB with the encrypted rndA ‖ rotl(rndB).
	Challenge(ctx context.Context, cardID string, ekRndB []byte) ([]byte, error)

	// Response verifies the card's proof and mints a one-time session for the account.
	Response(ctx context.Context, cardID string, dkRndARndBShifted, ekRndAShiftedCard []byte) (*NfcResponseOutput, error)

	RegisterCard(ctx context.Context, actor Actor, input *RegisterCardInput) (*RegisterCardOutput, error)
	RemoveCard(ctx context.Context, actor Actor, accountID uuid.UUID) error
}
