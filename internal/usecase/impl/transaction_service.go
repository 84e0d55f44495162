package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cashless/config"
	deliverycontext "cashless/internal/delivery/context"
	"cashless/internal/domain/entity"
	domainerrors "cashless/internal/domain/errors"
	"cashless/internal/domain/repository"
	"cashless/internal/domain/service"
	"cashless/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// cancelledTokenTTL keeps the customer identified while the terminal retries a cancelled booking.
const cancelledTokenTTL = 30 * time.Second

const (
	// publishQueueSize bounds the events waiting for the publisher; further events are dropped.
	publishQueueSize = 256
	publishTimeout   = 5 * time.Second
)

type publishJob struct {
	ctx   context.Context
	event *service.BalanceChangedEvent
}

// transactionService implements the TransactionUsecase interface.
type transactionService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	ledgerRepo  repository.LedgerRepository
	sessions    usecase.SessionUsecase
	publisher   service.EventPublisher
	cfg         *config.LedgerConfig
	now         func() time.Time
	logger      *slog.Logger

	// Committed events leave through one goroutine so their order is kept.
	events   chan publishJob
	eventsMu sync.RWMutex
	closed   bool
	drained  chan struct{}
}

// TransactionServiceParams holds dependencies for TransactionService, injected by Fx.
type TransactionServiceParams struct {
	fx.In
	Lifecycle fx.Lifecycle `optional:"true"`

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	LedgerRepo  repository.LedgerRepository
	Sessions    usecase.SessionUsecase
	Publisher   service.EventPublisher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewTransactionService is the constructor for transactionService.
func NewTransactionService(params TransactionServiceParams) usecase.TransactionUsecase {
	return newTransactionService(params)
}

func newTransactionService(params TransactionServiceParams) *transactionService {
	srv := &transactionService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		ledgerRepo:  params.LedgerRepo,
		sessions:    params.Sessions,
		publisher:   params.Publisher,
		cfg:         params.Config.Ledger,
		now:         time.Now,
		logger:      params.Logger,
		events:      make(chan publishJob, publishQueueSize),
		drained:     make(chan struct{}),
	}
	go srv.publishLoop()

	if params.Lifecycle != nil {
		params.Lifecycle.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				return srv.Close(ctx)
			},
		})
	}

	return srv
}

// Close stops accepting events and waits until the queued ones were handed to the publisher.
func (srv *transactionService) Close(ctx context.Context) error {
	srv.eventsMu.Lock()
	if !srv.closed {
		srv.closed = true
		close(srv.events)
	}
	srv.eventsMu.Unlock()

	select {
	case <-srv.drained:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "balance change events still queued")
	}
}

func (srv *transactionService) publishLoop() {
	defer close(srv.drained)

	for job := range srv.events {
		ctx, cancel := context.WithTimeout(job.ctx, publishTimeout)
		err := srv.publisher.PublishBalanceChanged(ctx, job.event)
		cancel()
		if err != nil {
			srv.log(job.ctx).Warn("Failed to publish balance change",
				slog.String("transaction_id", job.event.TransactionID),
				slog.Any("error", err))
		}
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *transactionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// book folds items over the account's current state and returns the ledger entry
// to append. The account itself is not modified.
func book(account *entity.Account, items []entity.TransactionItem, threshold int64, rejectIfStampable bool) (*entity.Transaction, error) {
	useStamps := account.UseDigitalStamps
	stampsBefore := account.StampsOrEmpty().Clone()

	var charged int64
	delta := entity.Stamps{}
	itemDeltas := make([]entity.Stamps, len(items))
	booked := make([]entity.TransactionItem, len(items))

	for i, item := range items {
		if !item.PayWithStamps.IsValid() || !item.GiveStamps.IsValid() || !item.CouldBePaidWithStamps.IsValid() {
			return nil, domainerrors.ErrBadRequest.WrapMessage("unknown stamp type")
		}
		if item.PayWithStamps.IsSet() && item.GiveStamps.IsSet() {
			return nil, domainerrors.ErrTransactionError.WrapMessage("an item cannot both pay with and give stamps")
		}

		itemDelta := entity.Stamps{}
		if useStamps && item.PayWithStamps.IsSet() {
			itemDelta[item.PayWithStamps] -= threshold
		} else {
			charged += item.Price
			if useStamps && item.GiveStamps.IsSet() {
				itemDelta[item.GiveStamps]++
			}
		}

		itemDeltas[i] = itemDelta
		delta = delta.Plus(itemDelta)
		booked[i] = item
		booked[i].Index = i
	}

	if rejectIfStampable && useStamps {
		for i, item := range items {
			if item.PayWithStamps.IsSet() {
				continue
			}
			candidate := item.StampCandidate()
			if !candidate.IsSet() {
				continue
			}
			others := delta.Get(candidate) - itemDeltas[i].Get(candidate)
			if stampsBefore.Get(candidate)+others >= threshold {
				return nil, domainerrors.ErrTransactionCancelled.WrapMessage("item " + string(candidate) + " can be paid with stamps")
			}
		}
	}

	before := account.Balance
	after := before - charged
	if after < account.MinimumCredit && after < before {
		return nil, domainerrors.ErrTransactionError.WrapMessage("insufficient credit")
	}

	stampsAfter := stampsBefore.Plus(delta)
	for stampType, value := range stampsAfter {
		if value < 0 && value < stampsBefore.Get(stampType) {
			return nil, domainerrors.ErrTransactionError.WrapMessage("insufficient " + string(stampType) + " stamps")
		}
	}

	return &entity.Transaction{
		AccountID:    account.ID,
		Total:        after - before,
		BeforeCredit: before,
		AfterCredit:  after,
		StampsBefore: stampsBefore,
		StampsAfter:  stampsAfter,
		Items:        booked,
	}, nil
}

// Execute books items against the account. Serialization conflicts restart the whole unit.
// A cancelled booking returns the current account together with ErrTransactionCancelled.
func (srv *transactionService) Execute(ctx context.Context, accountID uuid.UUID, items []entity.TransactionItem, rejectIfStampable bool) (*usecase.ExecuteOutput, error) {
	if len(items) == 0 {
		return nil, domainerrors.ErrBadRequest.WrapMessage("a transaction needs at least one item")
	}

	maxAttempts := max(srv.cfg.MaxRetries, 1)
	for attempt := 0; ; attempt++ {
		out, err := srv.executeOnce(ctx, accountID, items, rejectIfStampable)
		if err == nil {
			srv.publish(ctx, out.Transaction)

			return out, nil
		}
		if !errors.Is(err, repository.ErrSerializationFailure) {
			return out, err
		}
		if attempt+1 >= maxAttempts {
			srv.log(ctx).Error("Transaction retries exhausted", slog.Any("account_id", accountID), slog.Int("attempts", attempt+1), slog.Any("error", err))

			return nil, domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
		}

		backoff := srv.cfg.RetryBackoff * time.Duration(attempt+1)
		srv.log(ctx).Debug("Retrying transaction after serialization failure", slog.Any("account_id", accountID), slog.Int("attempt", attempt+1), slog.Duration("backoff", backoff))

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()

			return nil, errors.Wrap(ctx.Err(), "transaction aborted while waiting to retry")
		case <-timer.C:
		}
	}
}

func (srv *transactionService) executeOnce(ctx context.Context, accountID uuid.UUID, items []entity.TransactionItem, rejectIfStampable bool) (*usecase.ExecuteOutput, error) {
	var (
		account *entity.Account
		tx      *entity.Transaction
	)

	err := srv.txManager.ExecuteSerializable(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		ledgerRepo := repoFactory.NewLedgerRepository()

		var err error
		account, err = accountRepo.FindByIDForUpdate(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "transaction account not found")
			}

			return errors.Wrap(err, "failed to load account")
		}

		tx, err = book(account, items, srv.cfg.StampThreshold, rejectIfStampable)
		if err != nil {
			return err
		}
		tx.CreatedAt = srv.now()

		account.Balance = tx.AfterCredit
		account.Stamps = tx.StampsAfter.Clone()
		if err := accountRepo.StoreBalance(ctx, account); err != nil {
			return errors.Wrap(err, "failed to store balance")
		}
		if err := ledgerRepo.Append(ctx, tx); err != nil {
			return errors.Wrap(err, "failed to append transaction")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrTransactionCancelled) && account != nil {
			return &usecase.ExecuteOutput{Account: account}, err
		}

		return nil, err
	}

	srv.log(ctx).Info("Transaction committed",
		slog.Any("account_id", accountID),
		slog.Any("transaction_id", tx.ID),
		slog.Int64("total", tx.Total),
		slog.Int64("after_credit", tx.AfterCredit))

	return &usecase.ExecuteOutput{Account: account, Transaction: tx}, nil
}

// publish queues a committed transaction for the publisher and returns at once.
// Failures are logged and never reach the caller.
func (srv *transactionService) publish(ctx context.Context, tx *entity.Transaction) {
	event := service.NewBalanceChangedEvent(tx)
	event.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	srv.eventsMu.RLock()
	defer srv.eventsMu.RUnlock()
	if srv.closed {
		srv.log(ctx).Warn("Dropped balance change after shutdown", slog.String("transaction_id", event.TransactionID))

		return
	}

	select {
	case srv.events <- publishJob{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		srv.log(ctx).Warn("Dropped balance change, publish queue full", slog.String("transaction_id", event.TransactionID))
	}
}

// ExecuteWithToken redeems a one-time session and books against its account. When the
// booking is cancelled a fresh one-time token is returned so the terminal can retry.
func (srv *transactionService) ExecuteWithToken(ctx context.Context, token string, items []entity.TransactionItem, rejectIfStampable bool) (*usecase.ExecuteOutput, error) {
	accountID, err := srv.sessions.Read(ctx, entity.TokenOnetime, token)
	if err != nil {
		return nil, err
	}

	out, err := srv.Execute(ctx, accountID, items, rejectIfStampable)
	if err != nil && errors.Is(err, domainerrors.ErrTransactionCancelled) && out != nil {
		next, tokenErr := srv.sessions.Create(ctx, entity.TokenOnetime, accountID, cancelledTokenTTL)
		if tokenErr != nil {
			return nil, errors.Wrap(tokenErr, "failed to reissue account token")
		}
		out.AccountToken = next

		return out, err
	}

	return out, err
}

// ListByAccount returns the account's transactions in [from, to), newest first.
func (srv *transactionService) ListByAccount(ctx context.Context, actor usecase.Actor, accountID uuid.UUID, from, to time.Time) ([]*entity.Transaction, error) {
	if !actor.CanAccess(accountID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read the transactions of another account")
	}
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, domainerrors.ErrBadRequest.WrapMessage("from must be before to")
	}

	if _, err := srv.accountRepo.FindByID(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, errors.Wrap(domainerrors.ErrAccountNotFound, "transaction account not found")
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	txs, err := srv.ledgerRepo.ListByAccount(ctx, accountID, from, to)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transactions")
	}

	return txs, nil
}

// GetByAccountAndID returns a single transaction of the account.
func (srv *transactionService) GetByAccountAndID(ctx context.Context, actor usecase.Actor, accountID, transactionID uuid.UUID) (*entity.Transaction, error) {
	if !actor.CanAccess(accountID) {
		return nil, domainerrors.ErrForbidden.WrapMessage("cannot read the transactions of another account")
	}

	tx, err := srv.ledgerRepo.FindByAccountAndID(ctx, accountID, transactionID)
	if err != nil {
		if errors.Is(err, repository.ErrTransactionNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "transaction not found")
		}

		return nil, errors.Wrap(err, "failed to find transaction")
	}

	return tx, nil
}

// ValidateAll lists the accounts whose balance disagrees with their ledger.
func (srv *transactionService) ValidateAll(ctx context.Context, actor usecase.Actor) ([]entity.LedgerMismatch, error) {
	if !actor.IsAdmin() {
		return nil, domainerrors.ErrForbidden.WrapMessage("only admins may validate the ledger")
	}

	mismatches, err := srv.ledgerRepo.FindMismatches(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to validate ledger")
	}
	if len(mismatches) > 0 {
		srv.log(ctx).Warn("Ledger mismatches found", slog.Int("count", len(mismatches)))
	}

	return mismatches, nil
}
