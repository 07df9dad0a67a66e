package eventbus

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"
)

// ConsumerRegistry manages event consumers and dispatches events to them.
type ConsumerRegistry struct {
	consumers map[string][]EventConsumer
	mu        sync.RWMutex
	logger    zerolog.Logger
}

// NewConsumerRegistry creates a new consumer registry.
func NewConsumerRegistry(logger zerolog.Logger) *ConsumerRegistry {
	return &ConsumerRegistry{
		consumers: make(map[string][]EventConsumer),
		logger:    logger,
	}
}

// Register adds a consumer for its declared event types.
func (r *ConsumerRegistry) Register(consumer EventConsumer) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, eventType := range consumer.EventTypes() {
		r.consumers[eventType] = append(r.consumers[eventType], consumer)
		r.logger.Debug().Str("event_type", eventType).Msg("registered consumer for event type")
	}
}

// GetConsumers returns all consumers registered for the given event type.
func (r *ConsumerRegistry) GetConsumers(eventType string) []EventConsumer {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.consumers[eventType]
}

// GetAllEventTypes returns all event types that have consumers registered, sorted.
func (r *ConsumerRegistry) GetAllEventTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]string, 0, len(r.consumers))
	for t := range r.consumers {
		types = append(types, t)
	}
	sort.Strings(types)
	return types
}

// Dispatch sends an event to all registered consumers for its event type.
// Every consumer runs even when an earlier one fails; the last error is returned.
func (r *ConsumerRegistry) Dispatch(ctx context.Context, event *ConsumedEvent) error {
	consumers := r.GetConsumers(event.RoutingKey)

	if len(consumers) == 0 {
		r.logger.Debug().Str("routing_key", event.RoutingKey).Msg("no consumers for event type")
		return nil
	}

	var lastErr error
	for _, consumer := range consumers {
		if err := consumer.Handle(ctx, event); err != nil {
			r.logger.Error().
				Str("routing_key", event.RoutingKey).
				Str("event_id", event.EventID.String()).
				Err(err).
				Msg("consumer failed to handle event")
			lastErr = err
		}
	}

	return lastErr
}

// ConsumerCount returns the total number of registered consumer instances.
func (r *ConsumerRegistry) ConsumerCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, consumers := range r.consumers {
		count += len(consumers)
	}
	return count
}
