package impl

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	deliverycontext "cashless/internal/delivery/context"
	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	"cashless/internal/domain/service"
	cardcrypto "cashless/internal/infra/crypto"
	"cashless/internal/infra/kvstore"
	"cashless/internal/infra/persistence/postgres"
	"cashless/internal/infra/pubsub"
	mockRepo "cashless/internal/mocks/repository"
	mockService "cashless/internal/mocks/service"
	mockUsecase "cashless/internal/mocks/usecase"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

const testThreshold = 10

func TestBook(t *testing.T) {
	tests := []struct {
		name              string
		balance           int64
		minimumCredit     int64
		stamps            entity.Stamps
		digitalStamps     bool
		items             []entity.TransactionItem
		rejectIfStampable bool
		wantErr           error
		wantAfter         int64
		wantStamps        entity.Stamps
	}{
		{
			name:          "purchase within credit",
			balance:       1000,
			digitalStamps: true,
			items:         []entity.TransactionItem{{Price: 500}},
			wantAfter:     500,
			wantStamps:    entity.Stamps{},
		},
		{
			name:          "purchase beyond credit",
			balance:       1000,
			digitalStamps: true,
			items:         []entity.TransactionItem{{Price: 1500}},
			wantErr:       domainerrors.ErrTransactionError,
		},
		{
			name:          "overdraft allowed down to the minimum credit",
			balance:       0,
			minimumCredit: -500,
			items:         []entity.TransactionItem{{Price: 400}},
			wantAfter:     -400,
			wantStamps:    entity.Stamps{},
		},
		{
			name:          "top-up below the minimum still improves the balance",
			balance:       -800,
			minimumCredit: 0,
			items:         []entity.TransactionItem{{Price: -300}},
			wantAfter:     -500,
			wantStamps:    entity.Stamps{},
		},
		{
			name:          "paying with stamps waives the price",
			balance:       200,
			stamps:        entity.Stamps{entity.StampCoffee: 10},
			digitalStamps: true,
			items:         []entity.TransactionItem{{Price: 250, PayWithStamps: entity.StampCoffee}},
			wantAfter:     200,
			wantStamps:    entity.Stamps{entity.StampCoffee: 0},
		},
		{
			name:          "not enough stamps to pay",
			balance:       200,
			stamps:        entity.Stamps{entity.StampCoffee: 5},
			digitalStamps: true,
			items:         []entity.TransactionItem{{Price: 250, PayWithStamps: entity.StampCoffee}},
			wantErr:       domainerrors.ErrTransactionError,
		},
		{
			name:          "a paid item gives a stamp",
			balance:       1000,
			stamps:        entity.Stamps{entity.StampCoffee: 3},
			digitalStamps: true,
			items:         []entity.TransactionItem{{Price: 250, GiveStamps: entity.StampCoffee}},
			wantAfter:     750,
			wantStamps:    entity.Stamps{entity.StampCoffee: 4},
		},
		{
			name:              "stampable purchase is cancelled",
			balance:           1000,
			stamps:            entity.Stamps{entity.StampCoffee: 12},
			digitalStamps:     true,
			items:             []entity.TransactionItem{{Price: 250, GiveStamps: entity.StampCoffee}},
			rejectIfStampable: true,
			wantErr:           domainerrors.ErrTransactionCancelled,
		},
		{
			name:          "stampable purchase goes through without the flag",
			balance:       1000,
			stamps:        entity.Stamps{entity.StampCoffee: 12},
			digitalStamps: true,
			items:         []entity.TransactionItem{{Price: 250, GiveStamps: entity.StampCoffee}},
			wantAfter:     750,
			wantStamps:    entity.Stamps{entity.StampCoffee: 13},
		},
		{
			name:          "stamps earned by the rest of the basket count",
			balance:       1000,
			stamps:        entity.Stamps{entity.StampCoffee: 9},
			digitalStamps: true,
			items: []entity.TransactionItem{
				{Price: 250, GiveStamps: entity.StampCoffee},
				{Price: 250, GiveStamps: entity.StampCoffee},
			},
			rejectIfStampable: true,
			wantErr:           domainerrors.ErrTransactionCancelled,
		},
		{
			name:          "explicit candidate currency",
			balance:       1000,
			stamps:        entity.Stamps{entity.StampBottle: 10},
			digitalStamps: true,
			items: []entity.TransactionItem{
				{Price: 100, CouldBePaidWithStamps: entity.StampBottle},
			},
			rejectIfStampable: true,
			wantErr:           domainerrors.ErrTransactionCancelled,
		},
		{
			name:              "stampable check is skipped without digital stamps",
			balance:           1000,
			stamps:            entity.Stamps{entity.StampCoffee: 12},
			items:             []entity.TransactionItem{{Price: 250, GiveStamps: entity.StampCoffee}},
			rejectIfStampable: true,
			wantAfter:         750,
			wantStamps:        entity.Stamps{entity.StampCoffee: 12},
		},
		{
			name:       "pay with stamps is charged when digital stamps are off",
			balance:    1000,
			stamps:     entity.Stamps{entity.StampCoffee: 10},
			items:      []entity.TransactionItem{{Price: 250, PayWithStamps: entity.StampCoffee}},
			wantAfter:  750,
			wantStamps: entity.Stamps{entity.StampCoffee: 10},
		},
		{
			name:          "paying with and giving stamps at once",
			balance:       1000,
			stamps:        entity.Stamps{entity.StampCoffee: 10},
			digitalStamps: true,
			items:         []entity.TransactionItem{{PayWithStamps: entity.StampCoffee, GiveStamps: entity.StampBottle}},
			wantErr:       domainerrors.ErrTransactionError,
		},
		{
			name:          "unknown stamp type",
			balance:       1000,
			digitalStamps: true,
			items:         []entity.TransactionItem{{Price: 10, GiveStamps: "tea"}},
			wantErr:       domainerrors.ErrBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := newTestAccount(entity.RoleBasic)
			account.Balance = tt.balance
			account.MinimumCredit = tt.minimumCredit
			account.Stamps = tt.stamps
			account.UseDigitalStamps = tt.digitalStamps

			tx, err := book(account, tt.items, testThreshold, tt.rejectIfStampable)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, tt.balance, account.Balance, "a rejected booking leaves the account alone")

				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.balance, tx.BeforeCredit)
			assert.Equal(t, tt.wantAfter, tx.AfterCredit)
			assert.Equal(t, tt.wantAfter-tt.balance, tx.Total)
			for _, stampType := range entity.StampTypes {
				assert.Equal(t, tt.wantStamps.Get(stampType), tx.StampsAfter.Get(stampType), string(stampType))
			}
			for i, item := range tx.Items {
				assert.Equal(t, i, item.Index)
			}
		})
	}
}

type transactionFixture struct {
	srv         *transactionService
	txManager   *mockRepo.MockTransactionManager
	accountRepo *mockRepo.MockAccountRepository
	ledgerRepo  *mockRepo.MockLedgerRepository
	factory     *mockRepo.MockRepositoryFactory
	sessions    *mockUsecase.MockSessionUsecase
	publisher   *mockService.MockEventPublisher
}

func newTransactionFixture(t *testing.T) *transactionFixture {
	cfg := newTestConfig()
	cfg.Ledger.RetryBackoff = time.Millisecond
	cfg.Ledger.MaxRetries = 3

	f := &transactionFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		accountRepo: mockRepo.NewMockAccountRepository(t),
		ledgerRepo:  mockRepo.NewMockLedgerRepository(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		sessions:    mockUsecase.NewMockSessionUsecase(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}
	f.factory.EXPECT().NewAccountRepository().Return(f.accountRepo).Maybe()
	f.factory.EXPECT().NewLedgerRepository().Return(f.ledgerRepo).Maybe()

	f.srv = newTransactionService(TransactionServiceParams{
		TxManager:   f.txManager,
		AccountRepo: f.accountRepo,
		LedgerRepo:  f.ledgerRepo,
		Sessions:    f.sessions,
		Publisher:   f.publisher,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	// Runs before the mocks assert their expectations.
	t.Cleanup(func() { require.NoError(t, f.srv.Close(context.Background())) })

	return f
}

func (f *transactionFixture) runSerializable() {
	f.txManager.EXPECT().ExecuteSerializable(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestTransactionService_Execute(t *testing.T) {
	f := newTransactionFixture(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	account := newTestAccount(entity.RoleBasic)
	account.Balance = 1000
	txID := uuid.New()

	f.runSerializable()
	f.accountRepo.EXPECT().FindByIDForUpdate(ctx, account.ID).Return(account, nil)
	f.accountRepo.EXPECT().StoreBalance(ctx, account).Return(nil)
	f.ledgerRepo.EXPECT().Append(ctx, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, tx *entity.Transaction) { tx.ID = txID }).
		Return(nil)
	f.publisher.EXPECT().PublishBalanceChanged(mock.Anything, mock.AnythingOfType("*service.BalanceChangedEvent")).
		Run(func(_ context.Context, event *service.BalanceChangedEvent) {
			assert.Equal(t, "req-123", event.RequestID)
			assert.Equal(t, txID.String(), event.TransactionID)
			assert.Equal(t, int64(-500), event.Total)
		}).
		Return(errors.New("broker down"))

	out, err := f.srv.Execute(ctx, account.ID, []entity.TransactionItem{{Price: 500}}, false)
	require.NoError(t, err, "a failed publish never fails the booking")
	assert.Equal(t, int64(500), out.Account.Balance)
	assert.Equal(t, txID, out.Transaction.ID)
}

func TestTransactionService_ExecuteRejectsEmptyBasket(t *testing.T) {
	f := newTransactionFixture(t)

	_, err := f.srv.Execute(context.Background(), uuid.New(), nil, false)
	assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
}

func TestTransactionService_ExecuteUnknownAccount(t *testing.T) {
	f := newTransactionFixture(t)
	id := uuid.New()

	f.runSerializable()
	f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, id).Return(nil, repository.ErrAccountNotFound)

	_, err := f.srv.Execute(context.Background(), id, []entity.TransactionItem{{Price: 1}}, false)
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)
}

func TestTransactionService_RetriesSerializationFailures(t *testing.T) {
	f := newTransactionFixture(t)
	account := newTestAccount(entity.RoleBasic)
	account.Balance = 100

	conflict := errors.Wrap(repository.ErrSerializationFailure, "could not serialize access")
	f.txManager.EXPECT().ExecuteSerializable(mock.Anything, mock.Anything).Return(conflict).Twice()
	f.runSerializable()
	f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, account.ID).Return(account, nil).Once()
	f.accountRepo.EXPECT().StoreBalance(mock.Anything, account).Return(nil).Once()
	f.ledgerRepo.EXPECT().Append(mock.Anything, mock.Anything).Return(nil).Once()
	f.publisher.EXPECT().PublishBalanceChanged(mock.Anything, mock.Anything).Return(nil).Once()

	out, err := f.srv.Execute(context.Background(), account.ID, []entity.TransactionItem{{Price: -50}}, false)
	require.NoError(t, err)
	assert.Equal(t, int64(150), out.Account.Balance)
	f.txManager.AssertNumberOfCalls(t, "ExecuteSerializable", 3)
}

func TestTransactionService_RetriesExhausted(t *testing.T) {
	f := newTransactionFixture(t)

	conflict := errors.Wrap(repository.ErrSerializationFailure, "could not serialize access")
	f.txManager.EXPECT().ExecuteSerializable(mock.Anything, mock.Anything).Return(conflict).Times(3)

	_, err := f.srv.Execute(context.Background(), uuid.New(), []entity.TransactionItem{{Price: 5}}, false)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
}

func TestTransactionService_RetryStopsWhenContextEnds(t *testing.T) {
	f := newTransactionFixture(t)
	f.srv.cfg.RetryBackoff = time.Hour
	ctx, cancel := context.WithCancel(context.Background())

	f.txManager.EXPECT().ExecuteSerializable(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, func(repository.RepositoryFactory) error) error {
			cancel()

			return repository.ErrSerializationFailure
		}).Once()

	_, err := f.srv.Execute(ctx, uuid.New(), []entity.TransactionItem{{Price: 5}}, false)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTransactionService_ExecuteWithToken(t *testing.T) {
	t.Run("cancelled booking hands out a fresh token", func(t *testing.T) {
		f := newTransactionFixture(t)
		account := newTestAccount(entity.RoleBasic)
		account.Balance = 1000
		account.Stamps = entity.Stamps{entity.StampCoffee: 12}

		f.sessions.EXPECT().Read(mock.Anything, entity.TokenOnetime, "account-token").Return(account.ID, nil)
		f.runSerializable()
		f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, account.ID).Return(account, nil)
		f.sessions.EXPECT().Create(mock.Anything, entity.TokenOnetime, account.ID, cancelledTokenTTL).Return("retry-token", nil)

		items := []entity.TransactionItem{{Price: 250, GiveStamps: entity.StampCoffee}}
		out, err := f.srv.ExecuteWithToken(context.Background(), "account-token", items, true)
		assert.ErrorIs(t, err, domainerrors.ErrTransactionCancelled)
		require.NotNil(t, out)
		assert.Equal(t, "retry-token", out.AccountToken)
		assert.Nil(t, out.Transaction)
		assert.Equal(t, int64(1000), out.Account.Balance)
	})

	t.Run("spent token", func(t *testing.T) {
		f := newTransactionFixture(t)
		f.sessions.EXPECT().Read(mock.Anything, entity.TokenOnetime, "spent").
			Return(uuid.Nil, domainerrors.ErrUnauthorized.WrapMessage("token not found"))

		_, err := f.srv.ExecuteWithToken(context.Background(), "spent", []entity.TransactionItem{{Price: 1}}, false)
		assert.ErrorIs(t, err, domainerrors.ErrUnauthorized)
	})
}

func TestTransactionService_Reads(t *testing.T) {
	ctx := context.Background()
	owner := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleBasic}

	t.Run("other accounts are forbidden", func(t *testing.T) {
		f := newTransactionFixture(t)

		_, err := f.srv.ListByAccount(ctx, owner, uuid.New(), time.Time{}, time.Time{})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)

		_, err = f.srv.GetByAccountAndID(ctx, owner, uuid.New(), uuid.New())
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)

		_, err = f.srv.ValidateAll(ctx, owner)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("inverted window", func(t *testing.T) {
		f := newTransactionFixture(t)
		now := time.Now()

		_, err := f.srv.ListByAccount(ctx, owner, owner.AccountID, now, now.Add(-time.Hour))
		assert.ErrorIs(t, err, domainerrors.ErrBadRequest)
	})

	t.Run("missing transaction", func(t *testing.T) {
		f := newTransactionFixture(t)
		txID := uuid.New()
		f.ledgerRepo.EXPECT().FindByAccountAndID(ctx, owner.AccountID, txID).Return(nil, repository.ErrTransactionNotFound)

		_, err := f.srv.GetByAccountAndID(ctx, owner, owner.AccountID, txID)
		assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	})
}

// TestTransactionService_ConcurrentBookings runs against SQLite with the real repositories.
func TestTransactionService_ConcurrentBookings(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	accountRepo := postgres.NewAccountRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)

	bus := pubsub.NewBusPublisher(newDiscardLogger())
	var (
		mu     sync.Mutex
		events []*service.BalanceChangedEvent
	)
	bus.Subscribe(func(event *service.BalanceChangedEvent) {
		mu.Lock()
		defer mu.Unlock()
		events = append(events, event)
	})

	cfg := newTestConfig()
	srv := newTransactionService(TransactionServiceParams{
		TxManager:   postgres.NewTransactionManager(db),
		AccountRepo: accountRepo,
		LedgerRepo:  ledgerRepo,
		Publisher:   bus,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})

	account := newTestAccount(entity.RoleBasic)
	require.NoError(t, accountRepo.Create(ctx, account))

	_, err := srv.Execute(ctx, account.ID, []entity.TransactionItem{{Price: -1000}}, false)
	require.NoError(t, err)

	var g errgroup.Group
	for _, price := range []int64{300, 200} {
		g.Go(func() error {
			_, err := srv.Execute(ctx, account.ID, []entity.TransactionItem{{Price: price}}, false)

			return err
		})
	}
	require.NoError(t, g.Wait())
	require.NoError(t, srv.Close(ctx))
	require.NoError(t, bus.Close())

	stored, err := accountRepo.FindByID(ctx, account.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(500), stored.Balance)

	txs, err := ledgerRepo.ListByAccount(ctx, account.ID, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Len(t, txs, 3)

	mismatches, err := ledgerRepo.FindMismatches(ctx)
	require.NoError(t, err)
	assert.Empty(t, mismatches)

	mu.Lock()
	defer mu.Unlock()
	assert.Len(t, events, 3)
}

func TestTransactionService_PublishDoesNotBlockBooking(t *testing.T) {
	f := newTransactionFixture(t)
	account := newTestAccount(entity.RoleBasic)
	account.Balance = 1000

	release := make(chan struct{})
	published := make(chan string, 2)
	f.runSerializable()
	f.accountRepo.EXPECT().FindByIDForUpdate(mock.Anything, account.ID).Return(account, nil)
	f.accountRepo.EXPECT().StoreBalance(mock.Anything, account).Return(nil)
	f.ledgerRepo.EXPECT().Append(mock.Anything, mock.AnythingOfType("*entity.Transaction")).
		Run(func(_ context.Context, tx *entity.Transaction) { tx.ID = uuid.New() }).
		Return(nil)
	f.publisher.EXPECT().PublishBalanceChanged(mock.Anything, mock.AnythingOfType("*service.BalanceChangedEvent")).
		RunAndReturn(func(_ context.Context, event *service.BalanceChangedEvent) error {
			<-release
			published <- event.TransactionID

			return nil
		}).Twice()

	first, err := f.srv.Execute(context.Background(), account.ID, []entity.TransactionItem{{Price: 100}}, false)
	require.NoError(t, err)
	second, err := f.srv.Execute(context.Background(), account.ID, []entity.TransactionItem{{Price: 100}}, false)
	require.NoError(t, err, "bookings return while the publisher is stuck")
	assert.Equal(t, int64(800), second.Account.Balance)

	close(release)
	require.NoError(t, f.srv.Close(context.Background()))
	assert.Equal(t, first.Transaction.ID.String(), <-published)
	assert.Equal(t, second.Transaction.ID.String(), <-published)
}

func TestTransactionService_CloseWaitsForQueuedEvents(t *testing.T) {
	f := newTransactionFixture(t)
	tx := &entity.Transaction{ID: uuid.New(), AccountID: uuid.New()}

	f.publisher.EXPECT().PublishBalanceChanged(mock.Anything, mock.Anything).Return(nil).Once()

	f.srv.publish(context.Background(), tx)
	require.NoError(t, f.srv.Close(context.Background()))

	// Later events are dropped instead of reaching a closed queue.
	f.srv.publish(context.Background(), tx)
}

// TestTransactionService_AuthMethodWritesKeepBalance interleaves bookings with card and
// barcode registration on the same account against SQLite with the real repositories.
func TestTransactionService_AuthMethodWritesKeepBalance(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	cfg := newTestConfig()
	accountRepo := postgres.NewAccountRepository(db)
	ledgerRepo := postgres.NewLedgerRepository(db)
	txManager := postgres.NewTransactionManager(db)

	bus := pubsub.NewBusPublisher(newDiscardLogger())
	t.Cleanup(func() { _ = bus.Close() })

	bookings := newTransactionService(TransactionServiceParams{
		TxManager:   txManager,
		AccountRepo: accountRepo,
		LedgerRepo:  ledgerRepo,
		Publisher:   bus,
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	t.Cleanup(func() { _ = bookings.Close(ctx) })

	kv := kvstore.NewMemory(time.Minute)
	t.Cleanup(func() { _ = kv.Close() })
	cards, err := newNfcService(NfcServiceParams{
		AccountRepo: accountRepo,
		TxManager:   txManager,
		KV:          kv,
		Ciphers:     cardcrypto.NewCardCiphers(),
		Config:      cfg,
		Logger:      newDiscardLogger(),
	})
	require.NoError(t, err)
	barcodes := NewIdentificationService(IdentificationServiceParams{
		AccountRepo: accountRepo,
		TxManager:   txManager,
		Logger:      newDiscardLogger(),
	})
	admin := usecase.Actor{AccountID: uuid.New(), Role: entity.RoleAdmin}

	account := newTestAccount(entity.RoleBasic)
	require.NoError(t, accountRepo.Create(ctx, account))
	_, err = bookings.Execute(ctx, account.ID, []entity.TransactionItem{{Price: -1000}}, false)
	require.NoError(t, err)

	t.Run("a stale copy does not restore the balance", func(t *testing.T) {
		stale, err := accountRepo.FindByID(ctx, account.ID)
		require.NoError(t, err)

		_, err = bookings.Execute(ctx, account.ID, []entity.TransactionItem{{Price: 500, GiveStamps: entity.StampCoffee}}, false)
		require.NoError(t, err)

		stale.SetAuthMethod(&entity.BarcodeAuth{Code: "TAB-STALE"})
		require.NoError(t, accountRepo.Store(ctx, stale))

		stored, err := accountRepo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(500), stored.Balance)
		assert.Equal(t, int64(1), stored.Stamps.Get(entity.StampCoffee))
		_, ok := stored.BarcodeAuth()
		assert.True(t, ok)
	})

	t.Run("concurrent registrations", func(t *testing.T) {
		var g errgroup.Group
		for i, price := range []int64{100, 50} {
			g.Go(func() error {
				_, err := bookings.Execute(ctx, account.ID, []entity.TransactionItem{{Price: price}}, false)

				return err
			})
			g.Go(func() error {
				_, err := cards.RegisterCard(ctx, admin, &usecase.RegisterCardInput{
					AccountID: account.ID,
					CardID:    fmt.Sprintf("04B%d", i),
					CardType:  entity.CardTypeGeneric,
					Secret:    make([]byte, 32),
				})

				return err
			})
			g.Go(func() error {
				_, err := barcodes.RegisterBarcode(ctx, admin, account.ID, fmt.Sprintf("TAB-%d", i))

				return err
			})
		}
		require.NoError(t, g.Wait())

		stored, err := accountRepo.FindByID(ctx, account.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(350), stored.Balance)

		mismatches, err := ledgerRepo.FindMismatches(ctx)
		require.NoError(t, err)
		assert.Empty(t, mismatches)
	})
}
