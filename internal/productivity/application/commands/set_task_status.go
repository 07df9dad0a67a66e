package commands

import (
	"context"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	sharedApplication "github.com/felixgeelhaar/todo/internal/shared/application"
	"github.com/felixgeelhaar/todo/internal/shared/domain"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
)

// SetTaskStatusCommand contains the data needed to change completion state.
type SetTaskStatusCommand struct {
	TaskID   string
	Complete bool
}

func (SetTaskStatusCommand) CommandName() string { return "set_task_status" }

// SetTaskStatusHandler handles the SetTaskStatusCommand.
type SetTaskStatusHandler struct {
	taskRepo task.Repository
	events   eventPublisher
	logger   zerolog.Logger
}

// NewSetTaskStatusHandler creates a new SetTaskStatusHandler.
func NewSetTaskStatusHandler(taskRepo task.Repository, bus eventbus.DomainEventPublisher, logger zerolog.Logger) *SetTaskStatusHandler {
	return &SetTaskStatusHandler{
		taskRepo: taskRepo,
		events:   newEventPublisher(bus, logger),
		logger:   logger,
	}
}

// Handle executes the SetTaskStatusCommand. Asking for the status a task
// already has is rejected with a NoChange error.
func (h *SetTaskStatusHandler) Handle(ctx context.Context, cmd SetTaskStatusCommand) (task.Task, error) {
	id := task.NormalizeID(cmd.TaskID)
	current, ok := h.taskRepo.Get(ctx, id)
	if !ok {
		return task.Task{}, task.NotFoundError(id)
	}

	if current.IsComplete() == cmd.Complete {
		if cmd.Complete {
			return task.Task{}, task.ErrAlreadyComplete
		}
		return task.Task{}, task.ErrAlreadyIncomplete
	}

	updated := current.WithCompletion(cmd.Complete)
	if err := h.taskRepo.Update(ctx, updated); err != nil {
		return task.Task{}, err
	}

	var event domain.DomainEvent
	if cmd.Complete {
		completed := task.NewTaskCompleted(updated.ID())
		event = &completed
	} else {
		reopened := task.NewTaskReopened(updated.ID())
		event = &reopened
	}
	h.events.publish(ctx, event)

	logger := observability.WithContext(ctx, h.logger)
	logger.Debug().
		Str(observability.TaskIDKey, updated.ID()).
		Stringer("status", updated.Status()).
		Msg("task status changed")

	return updated, nil
}

var _ sharedApplication.CommandHandler[SetTaskStatusCommand, task.Task] = (*SetTaskStatusHandler)(nil)
