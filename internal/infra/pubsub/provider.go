package pubsub

import (
	"context"
	"log/slog"

	"cashless/config"
	"cashless/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Publisher providers accepted in pubsub.provider.
const (
	ProviderBus     = "bus"
	ProviderLocal   = "local"
	ProviderGoogle  = "google"
	ProviderGoCloud = "gocloud"
)

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	publisher, err := Open(params.Ctx, params.Config.PubSub, params.Logger)
	if err != nil {
		return nil, err
	}

	// Register lifecycle hook to close publisher on shutdown
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Open builds the publisher selected by cfg. An unset provider falls back to the in-process bus.
func Open(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	provider := ProviderBus
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case ProviderBus:
		logger.Info("Using in-process event bus for balance events")
		bus := NewBusPublisher(logger)
		bus.Subscribe(logBalanceChanged(logger))

		return bus, nil

	case ProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Using local HTTP publisher for Pub/Sub",
			slog.String("endpoint", cfg.LocalEndpoint),
		)

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil

	case ProviderGoogle:
		if cfg.ProjectID == "" {
			return nil, errors.New("project ID is required for google provider")
		}
		if cfg.TopicID == "" {
			return nil, errors.New("topic ID is required for google provider")
		}
		logger.Info("Using Google Pub/Sub publisher",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)

	case ProviderGoCloud:
		if cfg.URL == "" {
			return nil, errors.New("topic URL is required for gocloud provider")
		}
		logger.Info("Using Go CDK topic publisher",
			slog.String("url", cfg.URL),
		)

		return NewGoCloudPublisher(ctx, cfg.URL, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", provider)
	}
}

func logBalanceChanged(logger *slog.Logger) func(*service.BalanceChangedEvent) {
	return func(event *service.BalanceChangedEvent) {
		logger.Info("[EventBus] Balance changed",
			slog.String("request_id", event.RequestID),
			slog.String("account_id", event.AccountID),
			slog.String("transaction_id", event.TransactionID),
			slog.Int64("total", event.Total),
			slog.Int64("after_credit", event.AfterCredit),
		)
	}
}

// eventAttributes are attached to every outgoing message for filtering and tracing.
func eventAttributes(event *service.BalanceChangedEvent) map[string]string {
	attributes := map[string]string{
		"account_id":     event.AccountID,
		"transaction_id": event.TransactionID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
