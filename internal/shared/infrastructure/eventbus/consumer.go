package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/felixgeelhaar/todo/internal/shared/domain"
	"github.com/google/uuid"
)

// EventConsumer handles specific event types.
type EventConsumer interface {
	// EventTypes returns the routing keys this consumer handles.
	// e.g., ["todo.task.created", "todo.task.deleted"]
	EventTypes() []string

	// Handle processes the event.
	Handle(ctx context.Context, event *ConsumedEvent) error
}

// ConsumedEvent is the envelope delivered to consumers.
type ConsumedEvent struct {
	EventID       uuid.UUID       `json:"event_id"`
	AggregateID   string          `json:"aggregate_id"`
	AggregateType string          `json:"aggregate_type"`
	RoutingKey    string          `json:"routing_key"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload"`
	Metadata      EventMetadata   `json:"metadata,omitempty"`
}

// EventMetadata contains optional metadata about the event.
type EventMetadata struct {
	CorrelationID string `json:"correlation_id,omitempty"`
	CausationID   string `json:"causation_id,omitempty"`
}

// NewConsumedEvent wraps a domain event in an envelope.
// The payload holds the event's own exported fields.
func NewConsumedEvent(event domain.DomainEvent) (*ConsumedEvent, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s payload: %w", event.RoutingKey(), err)
	}

	consumed := &ConsumedEvent{
		EventID:       event.EventID(),
		AggregateID:   event.AggregateID(),
		AggregateType: event.AggregateType(),
		RoutingKey:    event.RoutingKey(),
		OccurredAt:    event.OccurredAt(),
		Payload:       payload,
	}

	md := event.Metadata()
	if md.CorrelationID != uuid.Nil {
		consumed.Metadata.CorrelationID = md.CorrelationID.String()
	}
	if md.CausationID != uuid.Nil {
		consumed.Metadata.CausationID = md.CausationID.String()
	}
	return consumed, nil
}

// DecodePayload unmarshals the event payload into v.
func (e *ConsumedEvent) DecodePayload(v any) error {
	if len(e.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(e.Payload, v)
}
