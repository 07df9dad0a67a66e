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

type descriptionMode uint8

const (
	descriptionKeep descriptionMode = iota
	descriptionClear
	descriptionSet
)

// DescriptionChange says what a modification does to the description:
// keep it, clear it, or set it to a value. The zero value keeps it.
type DescriptionChange struct {
	mode  descriptionMode
	value string
}

// KeepDescription leaves the current description untouched.
func KeepDescription() DescriptionChange { return DescriptionChange{} }

// ClearDescription removes the description.
func ClearDescription() DescriptionChange { return DescriptionChange{mode: descriptionClear} }

// SetDescription replaces the description with v. An empty v is kept as an
// empty description, not as absence.
func SetDescription(v string) DescriptionChange {
	return DescriptionChange{mode: descriptionSet, value: v}
}

// DescriptionFromOptional maps nil to keep and a value to set.
func DescriptionFromOptional(v *string) DescriptionChange {
	if v == nil {
		return KeepDescription()
	}
	return SetDescription(*v)
}

func (c DescriptionChange) IsKeep() bool  { return c.mode == descriptionKeep }
func (c DescriptionChange) IsClear() bool { return c.mode == descriptionClear }

func (c DescriptionChange) resolve(current *string) *string {
	switch c.mode {
	case descriptionClear:
		return nil
	case descriptionSet:
		v := c.value
		return &v
	default:
		return current
	}
}

// ModifyTaskCommand contains the data needed to change a task's details.
type ModifyTaskCommand struct {
	TaskID      string
	Title       *string // nil means no change
	Description DescriptionChange
}

func (ModifyTaskCommand) CommandName() string { return "modify_task" }

// ModifyTaskHandler handles the ModifyTaskCommand.
type ModifyTaskHandler struct {
	taskRepo task.Repository
	events   eventPublisher
	logger   zerolog.Logger
}

// NewModifyTaskHandler creates a new ModifyTaskHandler.
func NewModifyTaskHandler(taskRepo task.Repository, bus eventbus.DomainEventPublisher, logger zerolog.Logger) *ModifyTaskHandler {
	return &ModifyTaskHandler{
		taskRepo: taskRepo,
		events:   newEventPublisher(bus, logger),
		logger:   logger,
	}
}

// Handle executes the ModifyTaskCommand.
func (h *ModifyTaskHandler) Handle(ctx context.Context, cmd ModifyTaskCommand) (task.Task, error) {
	id := task.NormalizeID(cmd.TaskID)
	current, ok := h.taskRepo.Get(ctx, id)
	if !ok {
		return task.Task{}, task.NotFoundError(id)
	}

	title := current.Title()
	if cmd.Title != nil {
		title = *cmd.Title
		if strings.TrimSpace(title) == "" {
			return task.Task{}, task.ErrEmptyTitle
		}
	}
	description := cmd.Description.resolve(current.DescriptionPtr())

	if current.HasSameDetails(title, description) {
		return task.Task{}, task.ErrSameDetails
	}

	updated, err := current.WithDetails(title, description)
	if err != nil {
		return task.Task{}, err
	}

	if err := h.taskRepo.Update(ctx, updated); err != nil {
		return task.Task{}, err
	}

	fields := changedFields(current, updated)
	event := task.NewTaskUpdated(updated.ID(), fields)
	h.events.publish(ctx, &event)

	logger := observability.WithContext(ctx, h.logger)
	logger.Debug().
		Str(observability.TaskIDKey, updated.ID()).
		Strs("fields", fields).
		Msg("task updated")

	return updated, nil
}

func changedFields(before, after task.Task) []string {
	var fields []string
	if before.Title() != after.Title() {
		fields = append(fields, "title")
	}
	beforeDesc, beforeHas := before.Description()
	afterDesc, afterHas := after.Description()
	if beforeHas != afterHas || beforeDesc != afterDesc {
		fields = append(fields, "description")
	}
	return fields
}

var _ sharedApplication.CommandHandler[ModifyTaskCommand, task.Task] = (*ModifyTaskHandler)(nil)
