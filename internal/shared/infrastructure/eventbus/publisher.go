package eventbus

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/shared/domain"
)

// DomainEventPublisher publishes domain events.
type DomainEventPublisher interface {
	PublishDomainEvent(ctx context.Context, event domain.DomainEvent) error
}

// NoopPublisher discards every event. Handlers built without a bus use it.
type NoopPublisher struct{}

func (NoopPublisher) PublishDomainEvent(context.Context, domain.DomainEvent) error { return nil }
