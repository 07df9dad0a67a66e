package application

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/shared/domain"
	"github.com/felixgeelhaar/todo/pkg/observability"
)

type metadataSetter interface {
	SetMetadata(metadata domain.EventMetadata)
}

// EventMetadataFromContext creates command-scoped metadata for domain events,
// reusing the correlation ID carried by ctx when there is one.
func EventMetadataFromContext(ctx context.Context) domain.EventMetadata {
	return domain.NewEventMetadata(observability.CorrelationUUIDFromContext(ctx))
}

// ApplyEventMetadata sets metadata on all events that support it.
func ApplyEventMetadata(events []domain.DomainEvent, metadata domain.EventMetadata) {
	for _, event := range events {
		if setter, ok := event.(metadataSetter); ok {
			setter.SetMetadata(metadata)
		}
	}
}
