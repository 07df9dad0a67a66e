package queries

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
)

// GetTaskQuery contains the parameters for getting a single task.
type GetTaskQuery struct {
	TaskID string
}

func (GetTaskQuery) QueryName() string { return "get_task" }

// GetTaskResult reports the task and whether it exists.
type GetTaskResult struct {
	Task  task.Task
	Found bool
}

// GetTaskHandler handles the GetTaskQuery.
type GetTaskHandler struct {
	taskRepo task.Repository
}

// NewGetTaskHandler creates a new GetTaskHandler.
func NewGetTaskHandler(taskRepo task.Repository) *GetTaskHandler {
	return &GetTaskHandler{taskRepo: taskRepo}
}

// Handle looks a task up by id. A missing task is a normal result, not an error.
func (h *GetTaskHandler) Handle(ctx context.Context, query GetTaskQuery) GetTaskResult {
	t, ok := h.taskRepo.Get(ctx, task.NormalizeID(query.TaskID))
	return GetTaskResult{Task: t, Found: ok}
}
