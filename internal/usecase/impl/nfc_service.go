package impl

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"strings"
	"time"

	"cashless/config"
	deliverycontext "cashless/internal/delivery/context"
	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	"cashless/internal/domain/service"
	cardcrypto "cashless/internal/infra/crypto"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	challengeKeyPrefix = "nfc:challenge:"
	// generatedCardKeySize is a two-key Triple-DES key, the DESFire default.
	generatedCardKeySize = 16
)

// nfcService implements the NfcUsecase interface.
type nfcService struct {
	accountRepo  repository.AccountRepository
	txManager    repository.TransactionManager
	kv           repository.KeyValueStore
	ciphers      service.CardCiphers
	sessions     usecase.SessionUsecase
	fallbackKeys map[entity.CardType][]byte
	challengeTTL time.Duration
	random       io.Reader
	now          func() time.Time
	logger       *slog.Logger
}

// NfcServiceParams holds dependencies for NfcService, injected by Fx.
type NfcServiceParams struct {
	fx.In

	AccountRepo repository.AccountRepository
	TxManager   repository.TransactionManager
	KV          repository.KeyValueStore
	Ciphers     service.CardCiphers
	Sessions    usecase.SessionUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// NewNfcService is the constructor for nfcService. It fails when a configured reader key is malformed.
func NewNfcService(params NfcServiceParams) (usecase.NfcUsecase, error) {
	return newNfcService(params)
}

func newNfcService(params NfcServiceParams) (*nfcService, error) {
	fallbackKeys := make(map[entity.CardType][]byte, 2)
	for cardType, raw := range map[entity.CardType]string{
		entity.CardTypeGeneric:     params.Config.NFC.GenericKey,
		entity.CardTypeAsciiMifare: params.Config.NFC.MifareKey,
	} {
		if raw == "" {
			continue
		}
		key, err := hex.DecodeString(strings.TrimSpace(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s reader key", cardType)
		}
		if err := validateCardKey(cardType, key); err != nil {
			return nil, errors.Wrapf(err, "invalid %s reader key", cardType)
		}
		fallbackKeys[cardType] = key
	}

	return &nfcService{
		accountRepo:  params.AccountRepo,
		txManager:    params.TxManager,
		kv:           params.KV,
		ciphers:      params.Ciphers,
		sessions:     params.Sessions,
		fallbackKeys: fallbackKeys,
		challengeTTL: params.Config.NFC.ChallengeTTL,
		random:       rand.Reader,
		now:          time.Now,
		logger:       params.Logger,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *nfcService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// validateCardKey checks the key length the card type's cipher accepts.
func validateCardKey(cardType entity.CardType, key []byte) error {
	switch cardType {
	case entity.CardTypeGeneric:
		if len(key) != 32 {
			return errors.New("generic cards use 32-byte AES-256 keys")
		}
	case entity.CardTypeAsciiMifare:
		if len(key) != 8 && len(key) != 16 && len(key) != 24 {
			return errors.New("mifare cards use 8, 16 or 24-byte DES keys")
		}
	default:
		return errors.Errorf("unknown card type %q", cardType)
	}

	return nil
}

func challengeKey(accountID uuid.UUID) string {
	return challengeKeyPrefix + accountID.String()
}

// denied logs the internal reason at debug level and returns the uniform authentication error.
func (srv *nfcService) denied(ctx context.Context, cardID, reason string) error {
	srv.log(ctx).Debug("NFC authentication denied", slog.String("card_id", cardID), slog.String("reason", reason))

	return domainerrors.ErrUnauthorized.WrapMessage("nfc authentication failed")
}

// card bundles what the handshake needs to know about a registered card.
type card struct {
	account *entity.Account
	nfc     *entity.NfcAuth
	cipher  service.CardCipher
	key     []byte
}

func (srv *nfcService) resolveCard(ctx context.Context, cardID string) (*card, error) {
	account, err := srv.accountRepo.FindByAuthMethod(ctx, entity.AuthMethodNfc, cardID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, srv.denied(ctx, cardID, "unknown card")
		}

		return nil, errors.Wrap(err, "failed to resolve card")
	}

	nfc, ok := account.NfcAuth()
	if !ok {
		return nil, srv.denied(ctx, cardID, "account has no card")
	}
	cipher, ok := srv.ciphers[nfc.CardType]
	if !ok {
		return nil, srv.denied(ctx, cardID, "unsupported card type")
	}

	key := nfc.Secret
	if len(key) == 0 {
		key = srv.fallbackKeys[nfc.CardType]
	}
	if len(key) == 0 {
		return nil, srv.denied(ctx, cardID, "no key for card")
	}

	return &card{account: account, nfc: nfc, cipher: cipher, key: key}, nil
}

// CardType reports the handshake variant of a registered card.
func (srv *nfcService) CardType(ctx context.Context, cardID string) (entity.CardType, error) {
	c, err := srv.resolveCard(ctx, cardID)
	if err != nil {
		return "", err
	}

	return c.nfc.CardType, nil
}

// Challenge runs phase one of the handshake.
func (srv *nfcService) Challenge(ctx context.Context, cardID string, ekRndB []byte) ([]byte, error) {
	c, err := srv.resolveCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	n := c.cipher.NonceSize()

	rndB, err := c.cipher.Decrypt(c.key, ekRndB)
	if err != nil || len(rndB) != n {
		return nil, srv.denied(ctx, cardID, "malformed card nonce")
	}

	rndA := make([]byte, n)
	if _, err := io.ReadFull(srv.random, rndA); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}

	dkRndARndBShifted, err := c.cipher.Encrypt(c.key, cardcrypto.Concat(rndA, cardcrypto.RotateLeft(rndB)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt challenge")
	}

	state, err := json.Marshal(entity.ChallengeState{
		RndA:       rndA,
		RndB:       rndB,
		ValidUntil: srv.now().Add(srv.challengeTTL),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if err := srv.kv.Put(ctx, challengeKey(c.account.ID), state, srv.challengeTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store challenge")
	}

	srv.log(ctx).Debug("NFC challenge issued", slog.String("card_id", cardID), slog.Any("account_id", c.account.ID))

	return dkRndARndBShifted, nil
}

// Response runs phase two of the handshake. The pending challenge is consumed whatever the outcome.
func (srv *nfcService) Response(ctx context.Context, cardID string, dkRndARndBShifted, ekRndAShiftedCard []byte) (*usecase.NfcResponseOutput, error) {
	c, err := srv.resolveCard(ctx, cardID)
	if err != nil {
		return nil, err
	}
	n := c.cipher.NonceSize()

	raw, err := srv.kv.GetAndDelete(ctx, challengeKey(c.account.ID))
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil, srv.denied(ctx, cardID, "no pending challenge")
		}

		return nil, errors.Wrap(err, "failed to load challenge")
	}

	var state entity.ChallengeState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, errors.Wrap(err, "failed to decode challenge")
	}
	if !srv.now().Before(state.ValidUntil) {
		return nil, srv.denied(ctx, cardID, "challenge timeout")
	}
	if len(state.RndA) != n || len(state.RndB) != n {
		return nil, srv.denied(ctx, cardID, "challenge does not fit card type")
	}

	expected, err := c.cipher.Encrypt(c.key, cardcrypto.Concat(state.RndA, cardcrypto.RotateLeft(state.RndB)))
	if err != nil {
		return nil, errors.Wrap(err, "failed to recompute challenge")
	}
	if subtle.ConstantTimeCompare(expected, dkRndARndBShifted) != 1 {
		return nil, srv.denied(ctx, cardID, "response does not match challenge")
	}

	rndAShiftedCard, err := c.cipher.Decrypt(c.key, ekRndAShiftedCard)
	if err != nil || len(rndAShiftedCard) != n {
		return nil, srv.denied(ctx, cardID, "malformed card proof")
	}
	if subtle.ConstantTimeCompare(rndAShiftedCard, cardcrypto.RotateLeft(state.RndA)) != 1 {
		return nil, srv.denied(ctx, cardID, "card proof failed")
	}

	token, err := srv.sessions.Create(ctx, entity.TokenOnetime, c.account.ID, 0)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}

	srv.log(ctx).Info("NFC authentication succeeded", slog.String("card_id", cardID), slog.Any("account_id", c.account.ID))

	return &usecase.NfcResponseOutput{
		CardID:     cardID,
		SessionKey: c.cipher.SessionKey(c.key, state.RndA, state.RndB),
		Token:      token,
		Account:    c.account,
	}, nil
}

// RegisterCard binds a card to an account, replacing its previous card.
func (srv *nfcService) RegisterCard(ctx context.Context, actor usecase.Actor, input *usecase.RegisterCardInput) (*usecase.RegisterCardOutput, error) {
	if !actor.CanAccess(input.AccountID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot register a card for another account")
	}
	if input.CardID == "" || !input.CardType.IsValid() {
		return nil, domainerrors.ErrBadRequest.WrapMessage("card id and a known card type are required")
	}

	secret := input.Secret
	var writeKey []byte
	if len(secret) == 0 && input.CardType == entity.CardTypeAsciiMifare {
		secret = make([]byte, generatedCardKeySize)
		if _, err := io.ReadFull(srv.random, secret); err != nil {
			return nil, errors.Wrap(err, "failed to generate card key")
		}
		writeKey = secret
	}
	if len(secret) > 0 {
		if err := validateCardKey(input.CardType, secret); err != nil {
			return nil, domainerrors.ErrBadRequest.WrapMessage(err.Error())
		}
	}

	var registered *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByIDForUpdate(ctx, input.AccountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "card owner not found")
			}

			return errors.Wrap(err, "failed to find account")
		}
		if !actor.IsAdmin() && !account.AllowNfcRegistration {
			return domainerrors.ErrForbidden.WrapMessage("card registration is disabled for this account")
		}

		account.SetAuthMethod(&entity.NfcAuth{
			Name:     input.Name,
			CardID:   input.CardID,
			CardType: input.CardType,
			Secret:   secret,
		})
		if err := accountRepo.Store(ctx, account); err != nil {
			if errors.Is(err, repository.ErrAuthMethodTaken) {
				return errors.Wrap(domainerrors.ErrAuthMethodConflict, "card already registered")
			}

			return errors.Wrap(err, "failed to store card")
		}
		registered = account

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to register card", slog.Any("account_id", input.AccountID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to register card")
	}

	srv.log(ctx).Info("Card registered", slog.Any("account_id", input.AccountID), slog.String("card_type", string(input.CardType)))

	return &usecase.RegisterCardOutput{Account: registered, WriteKey: writeKey}, nil
}

// RemoveCard unbinds the account's card.
func (srv *nfcService) RemoveCard(ctx context.Context, actor usecase.Actor, accountID uuid.UUID) error {
	if !actor.CanAccess(accountID) {
		return domainerrors.ErrForbidden.WrapMessage("cannot remove the card of another account")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		account, err := accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "card owner not found")
			}

			return errors.Wrap(err, "failed to find account")
		}
		if !account.RemoveAuthMethod(entity.AuthMethodNfc) {
			return errors.Wrap(domainerrors.ErrNotFound, "account has no card")
		}

		return errors.Wrap(accountRepo.Store(ctx, account), "failed to store account")
	})
	if err != nil {
		return errors.Wrap(err, "failed to remove card")
	}

	srv.log(ctx).Info("Card removed", slog.Any("account_id", accountID))

	return nil
}
