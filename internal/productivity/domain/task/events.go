package task

import (
	"github.com/felixgeelhaar/todo/internal/shared/domain"
)

const (
	AggregateType = "Task"

	RoutingKeyCreated   = "todo.task.created"
	RoutingKeyUpdated   = "todo.task.updated"
	RoutingKeyCompleted = "todo.task.completed"
	RoutingKeyReopened  = "todo.task.reopened"
	RoutingKeyDeleted   = "todo.task.deleted"
)

// RoutingKeys lists every task event routing key.
func RoutingKeys() []string {
	return []string{
		RoutingKeyCreated,
		RoutingKeyUpdated,
		RoutingKeyCompleted,
		RoutingKeyReopened,
		RoutingKeyDeleted,
	}
}

// TaskCreated is emitted when a new task is created.
type TaskCreated struct {
	domain.BaseEvent
	Title          string `json:"title"`
	HasDescription bool   `json:"has_description"`
}

// NewTaskCreated creates a TaskCreated event.
func NewTaskCreated(t Task) TaskCreated {
	_, hasDescription := t.Description()
	return TaskCreated{
		BaseEvent:      domain.NewBaseEvent(t.ID(), AggregateType, RoutingKeyCreated),
		Title:          t.Title(),
		HasDescription: hasDescription,
	}
}

// TaskUpdated is emitted when a task's title or description changes.
type TaskUpdated struct {
	domain.BaseEvent
	Fields []string `json:"fields"` // Names of fields that were updated
}

// NewTaskUpdated creates a TaskUpdated event.
func NewTaskUpdated(taskID string, fields []string) TaskUpdated {
	return TaskUpdated{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyUpdated),
		Fields:    fields,
	}
}

// TaskCompleted is emitted when a task is marked complete.
type TaskCompleted struct {
	domain.BaseEvent
}

// NewTaskCompleted creates a TaskCompleted event.
func NewTaskCompleted(taskID string) TaskCompleted {
	return TaskCompleted{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyCompleted),
	}
}

// TaskReopened is emitted when a completed task is marked incomplete.
type TaskReopened struct {
	domain.BaseEvent
}

// NewTaskReopened creates a TaskReopened event.
func NewTaskReopened(taskID string) TaskReopened {
	return TaskReopened{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyReopened),
	}
}

// TaskDeleted is emitted when a task is removed.
type TaskDeleted struct {
	domain.BaseEvent
}

// NewTaskDeleted creates a TaskDeleted event.
func NewTaskDeleted(taskID string) TaskDeleted {
	return TaskDeleted{
		BaseEvent: domain.NewBaseEvent(taskID, AggregateType, RoutingKeyDeleted),
	}
}
