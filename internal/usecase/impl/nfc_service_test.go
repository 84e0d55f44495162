package impl

import (
	"context"
	"crypto/cipher"
	"crypto/des"
	"encoding/hex"
	"testing"
	"time"

	"cashless/config"
	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	cardcrypto "cashless/internal/infra/crypto"
	"cashless/internal/infra/kvstore"
	mockRepo "cashless/internal/mocks/repository"
	mockUsecase "cashless/internal/mocks/usecase"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testCard plays the card side of the handshake.
type testCard struct {
	t        *testing.T
	cardType entity.CardType
	key      []byte
}

// send produces what the card transmits, so that the reader's Decrypt yields plain.
func (c *testCard) send(plain []byte) []byte {
	c.t.Helper()

	if c.cardType == entity.CardTypeGeneric {
		out, err := cardcrypto.AESEncrypt(c.key, plain)
		require.NoError(c.t, err)

		return out
	}

	require.Len(c.t, plain, des.BlockSize)
	out := make([]byte, des.BlockSize)
	c.block().Encrypt(out, plain)

	return out
}

// receive recovers what the reader enciphered with Encrypt.
func (c *testCard) receive(data []byte) []byte {
	c.t.Helper()

	if c.cardType == entity.CardTypeGeneric {
		out, err := cardcrypto.AESDecrypt(c.key, data)
		require.NoError(c.t, err)

		return out
	}

	// Reader send mode: c_i = D(p_i ^ c_{i-1}), so p_i = E(c_i) ^ c_{i-1}.
	block := c.block()
	out := make([]byte, len(data))
	prev := make([]byte, des.BlockSize)
	for i := 0; i < len(data); i += des.BlockSize {
		block.Encrypt(out[i:i+des.BlockSize], data[i:i+des.BlockSize])
		for j := range des.BlockSize {
			out[i+j] ^= prev[j]
		}
		prev = data[i : i+des.BlockSize]
	}

	return out
}

func (c *testCard) block() cipher.Block {
	expanded, err := cardcrypto.ExpandTDESKey(c.key)
	require.NoError(c.t, err)
	block, err := des.NewTripleDESCipher(expanded)
	require.NoError(c.t, err)

	return block
}

type nfcFixture struct {
	srv         *nfcService
	accountRepo *mockRepo.MockAccountRepository
	txManager   *mockRepo.MockTransactionManager
	sessions    *mockUsecase.MockSessionUsecase
	now         time.Time
}

func newNfcFixture(t *testing.T, opts ...func(*config.NFCConfig)) *nfcFixture {
	cfg := newTestConfig()
	for _, opt := range opts {
		opt(cfg.NFC)
	}

	kv := kvstore.NewMemory(time.Minute)
	t.Cleanup(func() { _ = kv.Close() })

	f := &nfcFixture{
		accountRepo: mockRepo.NewMockAccountRepository(t),
		txManager:   mockRepo.NewMockTransactionManager(t),
		sessions:    mockUsecase.NewMockSessionUsecase(t),
		now:         time.Now(),
	}
	srv, err := newNfcService(NfcServiceParams{
		AccountRepo: f.accountRepo,
		TxManager:   f.txManager,
		KV:          kv,
		Ciphers:     cardcrypto.NewCardCiphers(),
		Sessions:    f.sessions,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)
	srv.now = func() time.Time { return f.now }
	f.srv = srv

	return f
}

// handshake runs both phases and returns the Response result.
func (f *nfcFixture) handshake(t *testing.T, cardID string, card *testCard, rndB []byte) (*usecase.NfcResponseOutput, []byte, []byte, error) {
	ctx := context.Background()

	dk, err := f.srv.Challenge(ctx, cardID, card.send(rndB))
	require.NoError(t, err)

	plain := card.receive(dk)
	n := len(rndB)
	require.Len(t, plain, 2*n)
	assert.Equal(t, cardcrypto.RotateLeft(rndB), plain[n:], "reader must echo the rotated card nonce")
	rndA := plain[:n]

	out, err := f.srv.Response(ctx, cardID, dk, card.send(cardcrypto.RotateLeft(rndA)))

	return out, dk, rndA, err
}

func seq(n int, start byte) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}

	return b
}

func TestNfcService_Handshake(t *testing.T) {
	tests := []struct {
		name           string
		cardType       entity.CardType
		key            []byte
		rndB           []byte
		sessionKeySize int
	}{
		{"generic AES-256", entity.CardTypeGeneric, seq(32, 1), seq(32, 100), 16},
		{"mifare 2TDEA", entity.CardTypeAsciiMifare, seq(16, 1), seq(8, 100), 16},
		{"mifare 3TDEA", entity.CardTypeAsciiMifare, seq(24, 1), seq(8, 100), 16},
		{"mifare single DES", entity.CardTypeAsciiMifare, seq(8, 1), seq(8, 100), 8},
		{"mifare 2TDEA with equal halves", entity.CardTypeAsciiMifare, append(seq(8, 1), seq(8, 1)...), seq(8, 100), 8},
		{"nonce with trailing zero byte", entity.CardTypeAsciiMifare, seq(16, 1), []byte{9, 8, 7, 6, 5, 4, 3, 0}, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNfcFixture(t)
			cardID := "04A1B2C3D4E5F6"
			account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: cardID, CardType: tt.cardType, Secret: tt.key})

			f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, cardID).Return(account, nil)
			f.sessions.EXPECT().Create(mock.Anything, entity.TokenOnetime, account.ID, time.Duration(0)).Return("onetime-token", nil).Once()

			card := &testCard{t: t, cardType: tt.cardType, key: tt.key}
			out, dk, rndA, err := f.handshake(t, cardID, card, tt.rndB)
			require.NoError(t, err)

			assert.Equal(t, cardID, out.CardID)
			assert.Equal(t, "onetime-token", out.Token)
			assert.Equal(t, account.ID, out.Account.ID)
			require.Len(t, out.SessionKey, tt.sessionKeySize)
			assert.Equal(t, rndA[0:4], out.SessionKey[0:4])
			assert.Equal(t, tt.rndB[0:4], out.SessionKey[4:8])

			// The challenge was consumed; replaying the same response fails.
			_, err = f.srv.Response(context.Background(), cardID, dk, card.send(cardcrypto.RotateLeft(rndA)))
			assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
		})
	}
}

func TestNfcService_TamperedResponseIsRejected(t *testing.T) {
	f := newNfcFixture(t)
	ctx := context.Background()
	cardID := "04AA"
	key := seq(16, 7)
	account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: cardID, CardType: entity.CardTypeAsciiMifare, Secret: key})
	f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, cardID).Return(account, nil)

	card := &testCard{t: t, cardType: entity.CardTypeAsciiMifare, key: key}
	dk, err := f.srv.Challenge(ctx, cardID, card.send(seq(8, 50)))
	require.NoError(t, err)
	rndA := card.receive(dk)[:8]

	tampered := append([]byte(nil), dk...)
	tampered[3] ^= 0x01

	_, err = f.srv.Response(ctx, cardID, tampered, card.send(cardcrypto.RotateLeft(rndA)))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	// The failed attempt consumed the challenge as well.
	_, err = f.srv.Response(ctx, cardID, dk, card.send(cardcrypto.RotateLeft(rndA)))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNfcService_WrongCardProofIsRejected(t *testing.T) {
	f := newNfcFixture(t)
	ctx := context.Background()
	cardID := "04BB"
	key := seq(32, 3)
	account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: cardID, CardType: entity.CardTypeGeneric, Secret: key})
	f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, cardID).Return(account, nil)

	card := &testCard{t: t, cardType: entity.CardTypeGeneric, key: key}
	dk, err := f.srv.Challenge(ctx, cardID, card.send(seq(32, 40)))
	require.NoError(t, err)

	// Proof over the unrotated nonce.
	rndA := card.receive(dk)[:32]
	_, err = f.srv.Response(ctx, cardID, dk, card.send(rndA))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNfcService_ExpiredChallengeIsRejected(t *testing.T) {
	f := newNfcFixture(t)
	ctx := context.Background()
	cardID := "04CC"
	key := seq(16, 9)
	account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: cardID, CardType: entity.CardTypeAsciiMifare, Secret: key})
	f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, cardID).Return(account, nil)

	card := &testCard{t: t, cardType: entity.CardTypeAsciiMifare, key: key}
	dk, err := f.srv.Challenge(ctx, cardID, card.send(seq(8, 20)))
	require.NoError(t, err)
	rndA := card.receive(dk)[:8]

	f.now = f.now.Add(f.srv.challengeTTL)

	_, err = f.srv.Response(ctx, cardID, dk, card.send(cardcrypto.RotateLeft(rndA)))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNfcService_ResponseWithoutChallenge(t *testing.T) {
	f := newNfcFixture(t)
	cardID := "04DD"
	account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: cardID, CardType: entity.CardTypeGeneric, Secret: seq(32, 0)})
	f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, cardID).Return(account, nil)

	_, err := f.srv.Response(context.Background(), cardID, seq(64, 0), seq(32, 0))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNfcService_UnknownCard(t *testing.T) {
	f := newNfcFixture(t)
	f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, "FFFF").Return(nil, repository.ErrAccountNotFound)

	_, err := f.srv.Challenge(context.Background(), "FFFF", seq(8, 0))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = f.srv.CardType(context.Background(), "FFFF")
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNfcService_MalformedNonceIsRejected(t *testing.T) {
	f := newNfcFixture(t)
	cardID := "04EE"
	account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: cardID, CardType: entity.CardTypeAsciiMifare, Secret: seq(16, 0)})
	f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, cardID).Return(account, nil)

	_, err := f.srv.Challenge(context.Background(), cardID, seq(5, 0))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)

	_, err = f.srv.Challenge(context.Background(), cardID, seq(16, 0))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNfcService_FallbackReaderKey(t *testing.T) {
	readerKey := seq(16, 30)
	f := newNfcFixture(t, func(nfc *config.NFCConfig) {
		nfc.MifareKey = hex.EncodeToString(readerKey)
	})
	cardID := "04FF"
	account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: cardID, CardType: entity.CardTypeAsciiMifare})

	f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, cardID).Return(account, nil)
	f.sessions.EXPECT().Create(mock.Anything, entity.TokenOnetime, account.ID, time.Duration(0)).Return("tok", nil).Once()

	cardType, err := f.srv.CardType(context.Background(), cardID)
	require.NoError(t, err)
	assert.Equal(t, entity.CardTypeAsciiMifare, cardType)

	out, _, _, err := f.handshake(t, cardID, &testCard{t: t, cardType: entity.CardTypeAsciiMifare, key: readerKey}, seq(8, 60))
	require.NoError(t, err)
	assert.Equal(t, "tok", out.Token)
}

func TestNfcService_CardWithoutAnyKeyIsRejected(t *testing.T) {
	f := newNfcFixture(t)
	cardID := "0400"
	account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: cardID, CardType: entity.CardTypeGeneric})
	f.accountRepo.EXPECT().FindByAuthMethod(mock.Anything, entity.AuthMethodNfc, cardID).Return(account, nil)

	_, err := f.srv.Challenge(context.Background(), cardID, seq(32, 0))
	assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}

func TestNewNfcService_RejectsMalformedReaderKey(t *testing.T) {
	cfg := newTestConfig()
	cfg.NFC.GenericKey = "abcd"

	_, err := newNfcService(NfcServiceParams{Ciphers: cardcrypto.NewCardCiphers(), Config: cfg, Logger: newDiscardLogger()})
	assert.Error(t, err)
}

// expectTx runs the transaction body against a factory returning accountRepo.
func expectTx(t *testing.T, txManager *mockRepo.MockTransactionManager, accountRepo repository.AccountRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewAccountRepository().Return(accountRepo).Maybe()

	txManager.EXPECT().Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func TestNfcService_RegisterCard(t *testing.T) {
	t.Run("admin registers a mifare card and receives the generated key", func(t *testing.T) {
		f := newNfcFixture(t)
		account := newTestAccount(entity.RoleBasic)
		admin := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}

		expectTx(t, f.txManager, f.accountRepo)
		f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, account.ID).Return(account, nil)
		f.accountRepo.EXPECT().Store(mock.Anything, mock.AnythingOfType("*entity.Account")).Return(nil)

		out, err := f.srv.RegisterCard(context.Background(), admin, &usecase.RegisterCardInput{
			AccountID: account.ID,
			Name:      "Blue card",
			CardID:    "04A1",
			CardType:  entity.CardTypeAsciiMifare,
		})
		require.NoError(t, err)
		require.Len(t, out.WriteKey, generatedCardKeySize)

		nfc, ok := out.Account.NfcAuth()
		require.True(t, ok)
		assert.Equal(t, out.WriteKey, nfc.Secret)
		assert.Equal(t, "Blue card", nfc.Name)
	})

	t.Run("a generic card keeps the supplied key and returns none", func(t *testing.T) {
		f := newNfcFixture(t)
		account := newTestAccount(entity.RoleBasic)
		account.AllowNfcRegistration = true

		expectTx(t, f.txManager, f.accountRepo)
		f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, account.ID).Return(account, nil)
		f.accountRepo.EXPECT().Store(mock.Anything, account).Return(nil)

		out, err := f.srv.RegisterCard(context.Background(), usecase.ActorOf(account), &usecase.RegisterCardInput{
			AccountID: account.ID,
			CardID:    "04A2",
			CardType:  entity.CardTypeGeneric,
			Secret:    seq(32, 0),
		})
		require.NoError(t, err)
		assert.Nil(t, out.WriteKey)
	})

	t.Run("self registration needs the account flag", func(t *testing.T) {
		f := newNfcFixture(t)
		account := newTestAccount(entity.RoleBasic)

		expectTx(t, f.txManager, f.accountRepo)
		f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, account.ID).Return(account, nil)

		_, err := f.srv.RegisterCard(context.Background(), usecase.ActorOf(account), &usecase.RegisterCardInput{
			AccountID: account.ID,
			CardID:    "04A3",
			CardType:  entity.CardTypeGeneric,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("another account is forbidden", func(t *testing.T) {
		f := newNfcFixture(t)
		actor := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleMember}

		_, err := f.srv.RegisterCard(context.Background(), actor, &usecase.RegisterCardInput{
			AccountID: uuid.New(),
			CardID:    "04A4",
			CardType:  entity.CardTypeGeneric,
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("wrong key length", func(t *testing.T) {
		f := newNfcFixture(t)
		admin := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}

		_, err := f.srv.RegisterCard(context.Background(), admin, &usecase.RegisterCardInput{
			AccountID: uuid.New(),
			CardID:    "04A5",
			CardType:  entity.CardTypeGeneric,
			Secret:    seq(16, 0),
		})
		assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
	})

	t.Run("card already in use", func(t *testing.T) {
		f := newNfcFixture(t)
		account := newTestAccount(entity.RoleBasic)
		admin := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}

		expectTx(t, f.txManager, f.accountRepo)
		f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, account.ID).Return(account, nil)
		f.accountRepo.EXPECT().Store(mock.Anything, account).Return(repository.ErrAuthMethodTaken)

		_, err := f.srv.RegisterCard(context.Background(), admin, &usecase.RegisterCardInput{
			AccountID: account.ID,
			CardID:    "04A6",
			CardType:  entity.CardTypeGeneric,
		})
		assert.ErrorIs(t, err, domainerrors.ErrAuthMethodConflict)
	})
}

func TestNfcService_RemoveCard(t *testing.T) {
	f := newNfcFixture(t)
	account := newTestAccount(entity.RoleBasic, &entity.NfcAuth{CardID: "04A7", CardType: entity.CardTypeGeneric})

	expectTx(t, f.txManager, f.accountRepo)
	f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, account.ID).Return(account, nil)
	f.accountRepo.EXPECT().Store(mock.Anything, account).Return(nil).Once()

	require.NoError(t, f.srv.RemoveCard(context.Background(), usecase.ActorOf(account), account.ID))
	_, ok := account.NfcAuth()
	assert.False(t, ok)

	err := f.srv.RemoveCard(context.Background(), usecase.ActorOf(account), account.ID)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
