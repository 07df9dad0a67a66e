package commands

import (
	"context"
	"strings"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	sharedApplication "github.com/felixgeelhaar/todo/internal/shared/application"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
)

// CreateTaskCommand contains the data needed to create a task.
type CreateTaskCommand struct {
	Title       string
	Description *string // nil means the task has no description
}

func (CreateTaskCommand) CommandName() string { return "create_task" }

// CreateTaskHandler handles the CreateTaskCommand.
type CreateTaskHandler struct {
	taskRepo task.Repository
	ids      task.IDGenerator
	events   eventPublisher
	logger   zerolog.Logger
}

// NewCreateTaskHandler creates a new CreateTaskHandler.
func NewCreateTaskHandler(taskRepo task.Repository, ids task.IDGenerator, bus eventbus.DomainEventPublisher, logger zerolog.Logger) *CreateTaskHandler {
	return &CreateTaskHandler{
		taskRepo: taskRepo,
		ids:      ids,
		events:   newEventPublisher(bus, logger),
		logger:   logger,
	}
}

// Handle executes the CreateTaskCommand.
func (h *CreateTaskHandler) Handle(ctx context.Context, cmd CreateTaskCommand) (task.Task, error) {
	// Validate before an id is issued.
	if strings.TrimSpace(cmd.Title) == "" {
		return task.Task{}, task.ErrEmptyTitle
	}

	t, err := task.NewTask(h.ids.NextID(), cmd.Title, cmd.Description)
	if err != nil {
		return task.Task{}, err
	}

	if err := h.taskRepo.Add(ctx, t); err != nil {
		return task.Task{}, err
	}

	created := task.NewTaskCreated(t)
	h.events.publish(ctx, &created)

	logger := observability.WithContext(ctx, h.logger)
	logger.Debug().
		Str(observability.TaskIDKey, t.ID()).
		Msg("task created")

	return t, nil
}

var _ sharedApplication.CommandHandler[CreateTaskCommand, task.Task] = (*CreateTaskHandler)(nil)
