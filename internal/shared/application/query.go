package application

import "context"

// Query represents a query that reads system state.
type Query interface {
	QueryName() string
}

// QueryHandler handles a specific query type. Reads against the task store
// cannot fail, so handlers return the result directly.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) R
}
