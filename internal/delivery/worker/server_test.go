package worker

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"cashless/config"
	"cashless/internal/delivery/worker/handler"
	"cashless/internal/domain/entity"
	"cashless/internal/domain/repository"
	"cashless/internal/domain/service"
	"cashless/internal/infra/pubsub"
	mockRepo "cashless/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncBuffer collects log output written by the server goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.buf.String()
}

type workerFixture struct {
	ledger    *mockRepo.MockLedgerRepository
	publisher service.EventPublisher
	server    *httptest.Server
	logs      *syncBuffer
}

func newWorkerFixture(t *testing.T) *workerFixture {
	t.Helper()

	cfg := &config.Config{}
	config.ApplyDefaults(cfg)
	cfg.PubSub.Provider = pubsub.ProviderLocal

	logs := &syncBuffer{}
	logger := slog.New(slog.NewTextHandler(logs, nil))
	ledger := mockRepo.NewMockLedgerRepository(t)

	push := handler.NewPushHandler(handler.PushHandlerParams{Config: cfg, Logger: logger, LedgerRepo: ledger})
	server := httptest.NewServer(newEcho(cfg, logger, push))
	t.Cleanup(server.Close)

	return &workerFixture{
		ledger:    ledger,
		publisher: pubsub.NewLocalHTTPPublisher(server.URL+"/push/balance-changed", slog.New(slog.NewTextHandler(io.Discard, nil))),
		server:    server,
		logs:      logs,
	}
}

func committedTransaction() *entity.Transaction {
	return &entity.Transaction{
		ID:           uuid.New(),
		AccountID:    uuid.New(),
		Total:        -300,
		BeforeCredit: 1000,
		AfterCredit:  700,
		StampsBefore: entity.Stamps{entity.StampCoffee: 2},
		StampsAfter:  entity.Stamps{entity.StampCoffee: 3},
		CreatedAt:    time.Now().UTC(),
	}
}

func TestBalanceEventAudit(t *testing.T) {
	t.Run("matching event is acknowledged", func(t *testing.T) {
		f := newWorkerFixture(t)
		tx := committedTransaction()
		f.ledger.EXPECT().FindByAccountAndID(mock.Anything, tx.AccountID, tx.ID).Return(tx, nil)

		event := service.NewBalanceChangedEvent(tx)
		event.RequestID = "req-1"

		require.NoError(t, f.publisher.PublishBalanceChanged(context.Background(), event))
		assert.Contains(t, f.logs.String(), "matches the ledger")
		assert.Contains(t, f.logs.String(), "request_id=req-1")
	})

	t.Run("diverging event is reported but acknowledged", func(t *testing.T) {
		f := newWorkerFixture(t)
		tx := committedTransaction()
		f.ledger.EXPECT().FindByAccountAndID(mock.Anything, tx.AccountID, tx.ID).Return(tx, nil)

		event := service.NewBalanceChangedEvent(tx)
		event.AfterCredit = 900
		event.StampsAfter["coffee"] = 0

		require.NoError(t, f.publisher.PublishBalanceChanged(context.Background(), event))
		logged := f.logs.String()
		assert.Contains(t, logged, "Failed to audit balance event")
		assert.Contains(t, logged, "after_credit 900 != 700")
		assert.Contains(t, logged, "stamps_after[coffee] 0 != 3")
	})

	t.Run("unknown transaction is not retried", func(t *testing.T) {
		f := newWorkerFixture(t)
		tx := committedTransaction()
		f.ledger.EXPECT().FindByAccountAndID(mock.Anything, tx.AccountID, tx.ID).Return(nil, repository.ErrTransactionNotFound)

		require.NoError(t, f.publisher.PublishBalanceChanged(context.Background(), service.NewBalanceChangedEvent(tx)))
		assert.Contains(t, f.logs.String(), "retryable=false")
	})

	t.Run("storage errors ask for redelivery", func(t *testing.T) {
		f := newWorkerFixture(t)
		tx := committedTransaction()
		f.ledger.EXPECT().FindByAccountAndID(mock.Anything, tx.AccountID, tx.ID).Return(nil, context.DeadlineExceeded)

		err := f.publisher.PublishBalanceChanged(context.Background(), service.NewBalanceChangedEvent(tx))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}

func TestPushRejectsMalformedMessages(t *testing.T) {
	f := newWorkerFixture(t)

	for name, body := range map[string]string{
		"not json":        `{`,
		"data not base64": `{"message":{"data":"%%%"}}`,
		"event not json":  `{"message":{"data":"bm90IGpzb24="}}`,
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Post(f.server.URL+"/push/balance-changed", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestWorkerHealth(t *testing.T) {
	f := newWorkerFixture(t)

	resp, err := http.Get(f.server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
