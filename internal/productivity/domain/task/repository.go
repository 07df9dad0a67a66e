package task

import (
	"context"
)

// Repository is the authoritative keyed collection of tasks. It enforces key
// existence only; business rules live in the application layer.
type Repository interface {
	Add(ctx context.Context, task Task) error
	Get(ctx context.Context, id string) (Task, bool)
	GetAll(ctx context.Context) []Task
	Update(ctx context.Context, task Task) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) int
}
