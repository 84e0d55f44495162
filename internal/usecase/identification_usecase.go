package usecase

import (
	"context"

	"cashless/internal/domain/entity"

	"github.com/google/uuid"
)

// IdentifyOutput carries the identified account and the one-time token for the purchase.
type IdentifyOutput struct {
	Account *entity.Account
	Token   string
}

// IdentificationUsecase identifies accounts by their public tab barcode.
type IdentificationUsecase interface {
	// IdentifyByBarcode accepts a raw tab code or a scanned tab QR payload.
	IdentifyByBarcode(ctx context.Context, code string) (*IdentifyOutput, error)

	RegisterBarcode(ctx context.Context, actor Actor, accountID uuid.UUID, code string) (*entity.Account, error)

	// TabQRCode renders the account's tab code as a PNG.
	TabQRCode(ctx context.Context, actor Actor, accountID uuid.UUID) ([]byte, error)
}
