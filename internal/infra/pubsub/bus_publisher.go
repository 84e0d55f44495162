package pubsub

import (
	"context"
	"log/slog"

	"cashless/internal/domain/service"

	evbus "github.com/asaskevich/EventBus"
)

// TopicBalanceChanged is the in-process bus topic carrying *service.BalanceChangedEvent.
const TopicBalanceChanged = "balance:changed"

// BusPublisher fans balance events out to in-process subscribers.
// Subscribers run asynchronously, so Publish never waits for them.
type BusPublisher struct {
	bus    evbus.Bus
	logger *slog.Logger
}

// NewBusPublisher creates a publisher backed by a fresh event bus.
func NewBusPublisher(logger *slog.Logger) *BusPublisher {
	return &BusPublisher{
		bus:    evbus.New(),
		logger: logger,
	}
}

// Subscribe registers fn for every published event. Events are delivered to fn one at a time.
func (p *BusPublisher) Subscribe(fn func(*service.BalanceChangedEvent)) {
	handler := func(event *service.BalanceChangedEvent) {
		defer func() {
			if r := recover(); r != nil {
				p.logger.Error("[EventBus] Subscriber panicked", slog.Any("panic", r))
			}
		}()
		fn(event)
	}

	if err := p.bus.SubscribeAsync(TopicBalanceChanged, handler, true); err != nil {
		p.logger.Error("[EventBus] Failed to subscribe", slog.Any("error", err))
	}
}

// PublishBalanceChanged hands the event to the bus and returns immediately.
func (p *BusPublisher) PublishBalanceChanged(_ context.Context, event *service.BalanceChangedEvent) error {
	p.bus.Publish(TopicBalanceChanged, event)

	return nil
}

// Close waits for in-flight subscriber calls to finish.
func (p *BusPublisher) Close() error {
	p.bus.WaitAsync()

	return nil
}
