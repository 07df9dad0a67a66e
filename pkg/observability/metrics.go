package observability

import (
	"maps"
	"strings"
	"sync"
	"time"
)

// Metric names recorded by the tracker.
const (
	MetricOperationTotal    = "todo.operation.total"
	MetricOperationDuration = "todo.operation.duration"
	MetricOperationErrors   = "todo.operation.errors"

	MetricTasksCreated   = "todo.tasks.created"
	MetricTasksUpdated   = "todo.tasks.updated"
	MetricTasksCompleted = "todo.tasks.completed"
	MetricTasksReopened  = "todo.tasks.reopened"
	MetricTasksDeleted   = "todo.tasks.deleted"

	MetricEventsPublished = "todo.events.published"
	MetricEventsConsumed  = "todo.events.consumed"
	MetricEventsDispatch  = "todo.events.dispatch"
)

// Metrics records counters and durations.
type Metrics interface {
	Counter(name string, value int64, tags ...Tag)
	Timing(name string, duration time.Duration, tags ...Tag)
}

// Tag labels one series of a metric.
type Tag struct {
	Key   string
	Value string
}

// T creates a new Tag.
func T(key, value string) Tag {
	return Tag{Key: key, Value: value}
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) Counter(string, int64, ...Tag)        {}
func (NoopMetrics) Timing(string, time.Duration, ...Tag) {}

// InMemoryMetrics keeps every series for the life of the process. The stats
// command reads the session counters from it.
type InMemoryMetrics struct {
	mu       sync.RWMutex
	counters map[string]int64
	timings  map[string][]time.Duration
}

// NewInMemoryMetrics creates an empty collector.
func NewInMemoryMetrics() *InMemoryMetrics {
	return &InMemoryMetrics{
		counters: make(map[string]int64),
		timings:  make(map[string][]time.Duration),
	}
}

func (m *InMemoryMetrics) Counter(name string, value int64, tags ...Tag) {
	key := seriesKey(name, tags)
	m.mu.Lock()
	m.counters[key] += value
	m.mu.Unlock()
}

func (m *InMemoryMetrics) Timing(name string, duration time.Duration, tags ...Tag) {
	key := seriesKey(name, tags)
	m.mu.Lock()
	m.timings[key] = append(m.timings[key], duration)
	m.mu.Unlock()
}

// GetCounter returns the value of one counter series, zero if never recorded.
func (m *InMemoryMetrics) GetCounter(name string, tags ...Tag) int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.counters[seriesKey(name, tags)]
}

// GetTimings returns a copy of the durations recorded for one series.
func (m *InMemoryMetrics) GetTimings(name string, tags ...Tag) []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]time.Duration(nil), m.timings[seriesKey(name, tags)]...)
}

// Counters returns a copy of every counter keyed by its series key.
func (m *InMemoryMetrics) Counters() map[string]int64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return maps.Clone(m.counters)
}

// seriesKey renders name and tags as "name:k1=v1:k2=v2".
func seriesKey(name string, tags []Tag) string {
	if len(tags) == 0 {
		return name
	}
	var b strings.Builder
	b.WriteString(name)
	for _, t := range tags {
		b.WriteString(":")
		b.WriteString(t.Key)
		b.WriteString("=")
		b.WriteString(t.Value)
	}
	return b.String()
}
