package eventbus

import (
	"context"
	"sync"
	"time"

	"github.com/felixgeelhaar/todo/internal/shared/domain"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
)

// InProcessEventBus delivers events synchronously to registered consumers.
// Deliveries are serialized; consumer failures are logged, never returned.
type InProcessEventBus struct {
	registry *ConsumerRegistry
	logger   zerolog.Logger
	metrics  observability.Metrics
	mu       sync.Mutex
}

// NewInProcessEventBus creates a new in-process event bus.
func NewInProcessEventBus(logger zerolog.Logger) *InProcessEventBus {
	return &InProcessEventBus{
		registry: NewConsumerRegistry(logger),
		logger:   logger,
		metrics:  observability.NoopMetrics{},
	}
}

// WithMetrics records a publish counter and dispatch timing per routing key.
func (b *InProcessEventBus) WithMetrics(metrics observability.Metrics) *InProcessEventBus {
	if metrics != nil {
		b.metrics = metrics
	}
	return b
}

// RegisterConsumer registers an event consumer.
func (b *InProcessEventBus) RegisterConsumer(consumer EventConsumer) {
	b.registry.Register(consumer)
}

// PublishDomainEvent wraps a domain event and dispatches it. Only an event
// that cannot be encoded is reported as an error.
func (b *InProcessEventBus) PublishDomainEvent(ctx context.Context, event domain.DomainEvent) error {
	consumed, err := NewConsumedEvent(event)
	if err != nil {
		return err
	}
	b.dispatch(ctx, consumed)
	return nil
}

func (b *InProcessEventBus) dispatch(ctx context.Context, event *ConsumedEvent) {
	b.mu.Lock()
	defer b.mu.Unlock()

	key := observability.T("routing_key", event.RoutingKey)
	b.metrics.Counter(observability.MetricEventsPublished, 1, key)

	start := time.Now()
	err := b.registry.Dispatch(ctx, event)
	duration := time.Since(start)
	b.metrics.Timing(observability.MetricEventsDispatch, duration, key)

	entry, msg := b.logger.Debug(), "event dispatched"
	if err != nil {
		entry, msg = b.logger.Error().Err(err), "event dispatch failed"
	}
	entry.
		Str(observability.RoutingKeyKey, event.RoutingKey).
		Str("event_id", event.EventID.String()).
		Int64(observability.DurationKey, duration.Milliseconds()).
		Msg(msg)
}

// Close is a no-op for the in-process bus.
func (b *InProcessEventBus) Close() error {
	return nil
}

// GetRegistry returns the underlying consumer registry.
func (b *InProcessEventBus) GetRegistry() *ConsumerRegistry {
	return b.registry
}

var _ DomainEventPublisher = (*InProcessEventBus)(nil)
