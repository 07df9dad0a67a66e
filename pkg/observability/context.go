package observability

import (
	"context"

	"github.com/google/uuid"
)

// Context keys for observability data.
type contextKey string

const (
	correlationIDCtxKey contextKey = "correlation_id"
	operationCtxKey     contextKey = "operation"
)

// Standard attribute keys used in logs and metrics.
const (
	CorrelationIDKey = "correlation_id"
	OperationKey     = "operation"
	DurationKey      = "duration_ms"
	TaskIDKey        = "task_id"
	RoutingKeyKey    = "routing_key"
)

// WithCorrelationID adds a correlation ID to the context.
// If id is empty, a new UUID is generated.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	if id == "" {
		id = uuid.New().String()
	}
	return context.WithValue(ctx, correlationIDCtxKey, id)
}

// CorrelationIDFromContext extracts the correlation ID from context.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDCtxKey).(string); ok {
		return id
	}
	return ""
}

// CorrelationUUIDFromContext parses the correlation ID as a UUID.
// It returns uuid.Nil when the context has none or it is not a UUID.
func CorrelationUUIDFromContext(ctx context.Context) uuid.UUID {
	id, err := uuid.Parse(CorrelationIDFromContext(ctx))
	if err != nil {
		return uuid.Nil
	}
	return id
}

// WithOperation adds an operation name to the context.
func WithOperation(ctx context.Context, operation string) context.Context {
	return context.WithValue(ctx, operationCtxKey, operation)
}

// OperationFromContext extracts the operation name from context.
func OperationFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if op, ok := ctx.Value(operationCtxKey).(string); ok {
		return op
	}
	return ""
}
