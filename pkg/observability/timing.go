package observability

import (
	"time"

	"github.com/rs/zerolog"
)

// Timer tracks the duration of operations and records metrics.
type Timer struct {
	operation string
	start     time.Time
	logger    *zerolog.Logger
	metrics   Metrics
}

// StartTimer creates a new timer for the given operation.
func StartTimer(operation string) *Timer {
	return &Timer{
		operation: operation,
		start:     time.Now(),
	}
}

// WithLogger adds a logger to the timer for automatic logging on stop.
func (t *Timer) WithLogger(logger zerolog.Logger) *Timer {
	t.logger = &logger
	return t
}

// WithMetrics adds a metrics collector to the timer.
func (t *Timer) WithMetrics(metrics Metrics) *Timer {
	t.metrics = metrics
	return t
}

// Stop records the operation duration.
func (t *Timer) Stop() time.Duration {
	return t.StopWithError(nil)
}

// StopWithError records the operation duration with error status.
func (t *Timer) StopWithError(err error) time.Duration {
	duration := time.Since(t.start)

	if t.logger != nil {
		if err != nil {
			t.logger.Debug().
				Str(OperationKey, t.operation).
				Int64(DurationKey, duration.Milliseconds()).
				Err(err).
				Msg("operation failed")
		} else {
			t.logger.Debug().
				Str(OperationKey, t.operation).
				Int64(DurationKey, duration.Milliseconds()).
				Msg("operation completed")
		}
	}

	if t.metrics != nil {
		op := T("operation", t.operation)
		t.metrics.Timing(MetricOperationDuration, duration, op)
		t.metrics.Counter(MetricOperationTotal, 1, op)

		if err != nil {
			t.metrics.Counter(MetricOperationErrors, 1, op)
		}
	}

	return duration
}

// TimeOperation is a helper that times a function and records metrics.
func TimeOperation(logger zerolog.Logger, metrics Metrics, operation string, fn func() error) error {
	timer := StartTimer(operation).
		WithLogger(logger).
		WithMetrics(metrics)

	err := fn()
	timer.StopWithError(err)
	return err
}
