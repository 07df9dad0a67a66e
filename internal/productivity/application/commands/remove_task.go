package commands

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
)

// RemoveTaskCommand contains the data needed to delete a task.
type RemoveTaskCommand struct {
	TaskID string
}

func (RemoveTaskCommand) CommandName() string { return "remove_task" }

// RemoveTaskHandler handles the RemoveTaskCommand.
type RemoveTaskHandler struct {
	taskRepo task.Repository
	events   eventPublisher
	logger   zerolog.Logger
}

// NewRemoveTaskHandler creates a new RemoveTaskHandler.
func NewRemoveTaskHandler(taskRepo task.Repository, bus eventbus.DomainEventPublisher, logger zerolog.Logger) *RemoveTaskHandler {
	return &RemoveTaskHandler{
		taskRepo: taskRepo,
		events:   newEventPublisher(bus, logger),
		logger:   logger,
	}
}

// Handle executes the RemoveTaskCommand.
func (h *RemoveTaskHandler) Handle(ctx context.Context, cmd RemoveTaskCommand) error {
	id := task.NormalizeID(cmd.TaskID)
	if err := h.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	event := task.NewTaskDeleted(id)
	h.events.publish(ctx, &event)

	logger := observability.WithContext(ctx, h.logger)
	logger.Debug().
		Str(observability.TaskIDKey, id).
		Msg("task deleted")

	return nil
}
