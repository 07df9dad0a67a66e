package queries

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	sharedApplication "github.com/felixgeelhaar/todo/internal/shared/application"
)

// ListTasksQuery asks for every stored task.
type ListTasksQuery struct{}

func (ListTasksQuery) QueryName() string { return "list_tasks" }

// ListTasksHandler handles the ListTasksQuery.
type ListTasksHandler struct {
	taskRepo task.Repository
}

// NewListTasksHandler creates a new ListTasksHandler.
func NewListTasksHandler(taskRepo task.Repository) *ListTasksHandler {
	return &ListTasksHandler{taskRepo: taskRepo}
}

// Handle returns all tasks in store order, unfiltered.
func (h *ListTasksHandler) Handle(ctx context.Context, _ ListTasksQuery) []task.Task {
	return h.taskRepo.GetAll(ctx)
}

var _ sharedApplication.QueryHandler[ListTasksQuery, []task.Task] = (*ListTasksHandler)(nil)
