package subscribers

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
)

// TaskCreatedPayload is the payload for task.created events.
type TaskCreatedPayload struct {
	Title          string `json:"title"`
	HasDescription bool   `json:"has_description"`
}

// TaskUpdatedPayload is the payload for task.updated events.
type TaskUpdatedPayload struct {
	Fields []string `json:"fields"`
}

// ActivityLogSubscriber writes one debug line per task event.
type ActivityLogSubscriber struct {
	logger  zerolog.Logger
	enabled bool
}

// NewActivityLogSubscriber creates a new activity log subscriber.
func NewActivityLogSubscriber(logger zerolog.Logger) *ActivityLogSubscriber {
	return &ActivityLogSubscriber{
		logger:  logger,
		enabled: true,
	}
}

// SetEnabled enables or disables the subscriber.
func (s *ActivityLogSubscriber) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// EventTypes returns the event types this subscriber handles.
func (s *ActivityLogSubscriber) EventTypes() []string {
	return task.RoutingKeys()
}

// Handle logs the event.
func (s *ActivityLogSubscriber) Handle(_ context.Context, event *eventbus.ConsumedEvent) error {
	if !s.enabled {
		return nil
	}

	entry := s.logger.Debug().
		Str(observability.RoutingKeyKey, event.RoutingKey).
		Str(observability.TaskIDKey, event.AggregateID)
	if event.Metadata.CorrelationID != "" {
		entry = entry.Str(observability.CorrelationIDKey, event.Metadata.CorrelationID)
	}

	switch event.RoutingKey {
	case task.RoutingKeyCreated:
		var payload TaskCreatedPayload
		if err := event.DecodePayload(&payload); err != nil {
			return err
		}
		entry = entry.Str("title", payload.Title).Bool("has_description", payload.HasDescription)
	case task.RoutingKeyUpdated:
		var payload TaskUpdatedPayload
		if err := event.DecodePayload(&payload); err != nil {
			return err
		}
		entry = entry.Strs("fields", payload.Fields)
	}

	entry.Msg("task activity")
	return nil
}
