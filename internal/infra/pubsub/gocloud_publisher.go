package pubsub

import (
	"context"
	"encoding/json"
	"log/slog"

	"cashless/internal/domain/service"

	"github.com/pkg/errors"
	gcpubsub "gocloud.dev/pubsub"
	_ "gocloud.dev/pubsub/mempubsub" // registers mem:// topics
)

// goCloudPublisher sends balance events to any Go CDK topic URL.
type goCloudPublisher struct {
	topic  *gcpubsub.Topic
	logger *slog.Logger
}

// NewGoCloudPublisher opens the topic at url, e.g. mem://balance.
func NewGoCloudPublisher(ctx context.Context, url string, logger *slog.Logger) (service.EventPublisher, error) {
	topic, err := gcpubsub.OpenTopic(ctx, url)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open topic %s", url)
	}

	return &goCloudPublisher{topic: topic, logger: logger}, nil
}

// PublishBalanceChanged sends the event as a JSON body with tracing metadata.
func (p *goCloudPublisher) PublishBalanceChanged(ctx context.Context, event *service.BalanceChangedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := p.topic.Send(ctx, &gcpubsub.Message{
		Body:     data,
		Metadata: eventAttributes(event),
	}); err != nil {
		return errors.WithStack(err)
	}

	p.logger.Debug("[GoCloudPubSub] Event published",
		slog.String("transaction_id", event.TransactionID),
	)

	return nil
}

// Close flushes pending sends and releases the topic.
func (p *goCloudPublisher) Close() error {
	return errors.WithStack(p.topic.Shutdown(context.Background()))
}
