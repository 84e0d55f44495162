package postgres

import (
	"context"
	"testing"

	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount(name string, methods ...entity.AuthMethod) *entity.Account {
	return &entity.Account{
		Name:             name,
		Role:             entity.RoleBasic,
		Stamps:           entity.Stamps{},
		UseDigitalStamps: true,
		AuthMethods:      methods,
	}
}

func TestAccountRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newTestAccount("alice",
		&entity.PasswordAuth{Username: "alice", PasswordHash: "hash"},
		&entity.NfcAuth{Name: "blue card", CardID: "04A1B2C3", CardType: entity.CardTypeAsciiMifare, Secret: []byte{1, 2, 3}},
	)
	account.Balance = 1000
	account.Stamps[entity.StampCoffee] = 3
	require.NoError(t, repo.Create(ctx, account))
	assert.NotEqual(t, uuid.Nil, account.ID)

	got, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Name)
	assert.Equal(t, int64(1000), got.Balance)
	assert.Equal(t, int64(3), got.Stamps.Get(entity.StampCoffee))
	assert.Equal(t, int64(0), got.Stamps.Get(entity.StampBottle))
	assert.True(t, got.UseDigitalStamps)
	require.Len(t, got.AuthMethods, 2)
	assert.Equal(t, entity.AuthMethodPassword, got.AuthMethods[0].Kind())

	nfc, ok := got.NfcAuth()
	require.True(t, ok)
	assert.Equal(t, "blue card", nfc.Name)
	assert.Equal(t, []byte{1, 2, 3}, nfc.Secret)

	byCard, err := repo.FindByAuthMethod(ctx, entity.AuthMethodNfc, "04A1B2C3")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byCard.ID)

	byUser, err := repo.FindByAuthMethod(ctx, entity.AuthMethodPassword, "alice")
	require.NoError(t, err)
	assert.Equal(t, account.ID, byUser.ID)

	locked, err := repo.FindByIDForUpdate(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, account.ID, locked.ID)
}

func TestAccountRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	_, err = repo.FindByAuthMethod(ctx, entity.AuthMethodBarcode, "nope")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)

	err = repo.Store(ctx, &entity.Account{ID: uuid.New(), Role: entity.RoleBasic})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_IdentifiersAreGloballyUnique(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	txManager := NewTransactionManager(db)

	first := newTestAccount("first", &entity.BarcodeAuth{Code: "TAB-1"})
	require.NoError(t, NewAccountRepository(db).Create(ctx, first))

	second := newTestAccount("second", &entity.BarcodeAuth{Code: "TAB-1"})
	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.NewAccountRepository().Create(ctx, second)
	})
	assert.ErrorIs(t, err, repository.ErrAuthMethodTaken)

	// The failed transaction left nothing behind.
	ids, err := NewAccountRepository(db).ListIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID}, ids)
}

func TestAccountRepository_StoreReplacesState(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newTestAccount("bob", &entity.BarcodeAuth{Code: "OLD"})
	account.Balance = 40
	require.NoError(t, repo.Create(ctx, account))

	account.Balance = -250
	account.MinimumCredit = -500
	account.Stamps[entity.StampBottle] = 7
	account.UseDigitalStamps = false
	account.SetAuthMethod(&entity.BarcodeAuth{Code: "NEW"})
	account.SetAuthMethod(&entity.PasswordAuth{Username: "bob", PasswordHash: "h"})
	require.NoError(t, repo.Store(ctx, account))

	got, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(-500), got.MinimumCredit)
	assert.False(t, got.UseDigitalStamps)
	assert.Equal(t, int64(40), got.Balance, "Store never writes the balance")
	assert.Equal(t, int64(0), got.Stamps.Get(entity.StampBottle), "Store never writes stamps")
	require.Len(t, got.AuthMethods, 2)

	barcode, ok := got.BarcodeAuth()
	require.True(t, ok)
	assert.Equal(t, "NEW", barcode.Code)

	_, err = repo.FindByAuthMethod(ctx, entity.AuthMethodBarcode, "OLD")
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_StoreBalance(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newTestAccount("dora", &entity.BarcodeAuth{Code: "TAB-D"})
	require.NoError(t, repo.Create(ctx, account))

	stale, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)

	account.Balance = 900
	account.Stamps[entity.StampCoffee] = 3
	account.Name = "ignored"
	require.NoError(t, repo.StoreBalance(ctx, account))

	// A writer holding an older copy only touches metadata and methods.
	stale.SetAuthMethod(&entity.BarcodeAuth{Code: "TAB-E"})
	require.NoError(t, repo.Store(ctx, stale))

	got, err := repo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(900), got.Balance)
	assert.Equal(t, int64(3), got.Stamps.Get(entity.StampCoffee))
	assert.Equal(t, "dora", got.Name)
	barcode, ok := got.BarcodeAuth()
	require.True(t, ok)
	assert.Equal(t, "TAB-E", barcode.Code)

	err = repo.StoreBalance(ctx, &entity.Account{ID: uuid.New()})
	assert.ErrorIs(t, err, repository.ErrAccountNotFound)
}

func TestAccountRepository_StoreRejectsDuplicateKinds(t *testing.T) {
	ctx := context.Background()
	repo := NewAccountRepository(newTestDB(t))

	account := newTestAccount("carol")
	require.NoError(t, repo.Create(ctx, account))

	account.AuthMethods = []entity.AuthMethod{
		&entity.BarcodeAuth{Code: "A"},
		&entity.BarcodeAuth{Code: "B"},
	}
	err := repo.Store(ctx, account)
	assert.True(t, errors.Is(err, domainerrors.ErrAuthMethodInvalid))
}
