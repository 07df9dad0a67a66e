package persistence

import (
	"context"
	"sync"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
)

// InMemoryTaskRepository implements task.Repository on a map keyed by task id.
// Iteration follows insertion order; replacing a task keeps its position.
type InMemoryTaskRepository struct {
	mu    sync.RWMutex
	tasks map[string]task.Task
	order []string
}

// NewInMemoryTaskRepository creates an empty repository.
func NewInMemoryTaskRepository() *InMemoryTaskRepository {
	return &InMemoryTaskRepository{
		tasks: make(map[string]task.Task),
	}
}

// Add inserts a task under its id.
func (r *InMemoryTaskRepository) Add(_ context.Context, t task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.ID()]; exists {
		return task.DuplicateKeyError(t.ID())
	}
	r.tasks[t.ID()] = t
	r.order = append(r.order, t.ID())
	return nil
}

// Get returns the task with the given id, if any.
func (r *InMemoryTaskRepository) Get(_ context.Context, id string) (task.Task, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	t, ok := r.tasks[id]
	return t, ok
}

// GetAll returns every stored task in insertion order.
func (r *InMemoryTaskRepository) GetAll(_ context.Context) []task.Task {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]task.Task, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.tasks[id])
	}
	return out
}

// Update replaces the task stored under t's id.
func (r *InMemoryTaskRepository) Update(_ context.Context, t task.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[t.ID()]; !exists {
		return task.NotFoundError(t.ID())
	}
	r.tasks[t.ID()] = t
	return nil
}

// Delete removes the task with the given id.
func (r *InMemoryTaskRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tasks[id]; !exists {
		return task.NotFoundError(id)
	}
	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of stored tasks.
func (r *InMemoryTaskRepository) Count(_ context.Context) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.tasks)
}

var _ task.Repository = (*InMemoryTaskRepository)(nil)
