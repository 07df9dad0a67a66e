package subscribers

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todo/pkg/observability"
)

var metricByRoutingKey = map[string]string{
	task.RoutingKeyCreated:   observability.MetricTasksCreated,
	task.RoutingKeyUpdated:   observability.MetricTasksUpdated,
	task.RoutingKeyCompleted: observability.MetricTasksCompleted,
	task.RoutingKeyReopened:  observability.MetricTasksReopened,
	task.RoutingKeyDeleted:   observability.MetricTasksDeleted,
}

// MetricsSubscriber counts task lifecycle events.
type MetricsSubscriber struct {
	metrics observability.Metrics
}

// NewMetricsSubscriber creates a new metrics subscriber.
func NewMetricsSubscriber(metrics observability.Metrics) *MetricsSubscriber {
	if metrics == nil {
		metrics = observability.NoopMetrics{}
	}
	return &MetricsSubscriber{metrics: metrics}
}

// EventTypes returns the event types this subscriber handles.
func (s *MetricsSubscriber) EventTypes() []string {
	return task.RoutingKeys()
}

// Handle increments the counter for the event.
func (s *MetricsSubscriber) Handle(_ context.Context, event *eventbus.ConsumedEvent) error {
	s.metrics.Counter(observability.MetricEventsConsumed, 1, observability.T("routing_key", event.RoutingKey))
	if name, ok := metricByRoutingKey[event.RoutingKey]; ok {
		s.metrics.Counter(name, 1)
	}
	return nil
}
