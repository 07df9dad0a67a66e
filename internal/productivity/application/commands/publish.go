package commands

import (
	"context"

	sharedApplication "github.com/felixgeelhaar/todo/internal/shared/application"
	"github.com/felixgeelhaar/todo/internal/shared/domain"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
)

// eventPublisher stamps command metadata on domain events and hands them to
// the bus. The store is authoritative, so publish failures are only logged.
type eventPublisher struct {
	bus    eventbus.DomainEventPublisher
	logger zerolog.Logger
}

func newEventPublisher(bus eventbus.DomainEventPublisher, logger zerolog.Logger) eventPublisher {
	if bus == nil {
		bus = eventbus.NoopPublisher{}
	}
	return eventPublisher{bus: bus, logger: logger}
}

func (p eventPublisher) publish(ctx context.Context, events ...domain.DomainEvent) {
	sharedApplication.ApplyEventMetadata(events, sharedApplication.EventMetadataFromContext(ctx))

	logger := observability.WithContext(ctx, p.logger)
	for _, event := range events {
		if err := p.bus.PublishDomainEvent(ctx, event); err != nil {
			logger.Error().
				Str(observability.RoutingKeyKey, event.RoutingKey()).
				Str(observability.TaskIDKey, event.AggregateID()).
				Err(err).
				Msg("failed to publish domain event")
		}
	}
}
