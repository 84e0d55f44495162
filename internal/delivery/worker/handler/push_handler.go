// Package handler contains the worker's Pub/Sub push endpoints.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cashless/config"
	deliverycontext "cashless/internal/delivery/context"
	"cashless/internal/domain/entity"
	"cashless/internal/domain/repository"
	"cashless/internal/domain/service"
	"cashless/internal/infra/pubsub"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// retryableError asks Pub/Sub to redeliver the message.
type retryableError struct {
	err error
}

func (e *retryableError) Error() string {
	return fmt.Sprintf("retryable: %v", e.err)
}

func (e *retryableError) Unwrap() error {
	return e.err
}

func newRetryableError(err error) error {
	return &retryableError{err: err}
}

func isRetryableError(err error) bool {
	var re *retryableError

	return errors.As(err, &re)
}

// errEventMismatch marks an event that disagrees with the stored ledger entry.
var errEventMismatch = errors.New("balance event disagrees with the ledger")

// PushHandler audits balance-changed events against the ledger. Every event
// must describe a committed transaction exactly; anything else is reported.
type PushHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	ledgerRepo     repository.LedgerRepository
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	LedgerRepo repository.LedgerRepository
}

func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Only Google pushes carry an OIDC token; local development posts unsigned.
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == pubsub.ProviderGoogle &&
		params.Config.Env.Env != config.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		ledgerRepo:     params.LedgerRepo,
	}
}

// HandlePush acknowledges with 200 unless a retry could help, in which case it answers 503.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	var event service.BalanceChangedEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse balance event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg, &event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	if err := h.auditEvent(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to audit balance event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.String("account_id", event.AccountID),
			slog.String("transaction_id", event.TransactionID),
			slog.Any("error", err),
			slog.Bool("retryable", isRetryableError(err)),
		)
		if isRetryableError(err) {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	reqLogger.Info("[Worker] Balance event matches the ledger",
		slog.String("account_id", event.AccountID),
		slog.String("transaction_id", event.TransactionID),
	)

	return c.NoContent(http.StatusOK)
}

// extractRequestID prefers message attributes, then the event payload, then the push request itself.
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.BalanceChangedEvent) string {
	if requestID := pushMsg.Message.Attributes["request_id"]; requestID != "" {
		return requestID
	}
	if event.RequestID != "" {
		return event.RequestID
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// auditEvent compares the event with the stored transaction.
func (h *PushHandler) auditEvent(ctx context.Context, event *service.BalanceChangedEvent) error {
	accountID, err := uuid.Parse(event.AccountID)
	if err != nil {
		return errors.Wrap(err, "account_id")
	}
	transactionID, err := uuid.Parse(event.TransactionID)
	if err != nil {
		return errors.Wrap(err, "transaction_id")
	}

	tx, err := h.ledgerRepo.FindByAccountAndID(ctx, accountID, transactionID)
	if errors.Is(err, repository.ErrTransactionNotFound) {
		// Events are published after commit, so a missing row is never transient.
		return errors.Wrap(errEventMismatch, "transaction does not exist")
	}
	if err != nil {
		return newRetryableError(errors.WithStack(err))
	}

	if diff := compareEvent(event, tx); diff != "" {
		return errors.Wrap(errEventMismatch, diff)
	}

	return nil
}

// compareEvent lists the fields in which event and tx disagree, or returns "".
func compareEvent(event *service.BalanceChangedEvent, tx *entity.Transaction) string {
	var diffs []string
	if event.Total != tx.Total {
		diffs = append(diffs, fmt.Sprintf("total %d != %d", event.Total, tx.Total))
	}
	if event.BeforeCredit != tx.BeforeCredit {
		diffs = append(diffs, fmt.Sprintf("before_credit %d != %d", event.BeforeCredit, tx.BeforeCredit))
	}
	if event.AfterCredit != tx.AfterCredit {
		diffs = append(diffs, fmt.Sprintf("after_credit %d != %d", event.AfterCredit, tx.AfterCredit))
	}
	for _, t := range entity.StampTypes {
		if got, want := event.StampsAfter[string(t)], tx.StampsAfter.Get(t); got != want {
			diffs = append(diffs, fmt.Sprintf("stamps_after[%s] %d != %d", t, got, want))
		}
	}

	return strings.Join(diffs, ", ")
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	// The audience should be the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
