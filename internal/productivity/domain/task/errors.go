package task

import (
	"errors"
	"fmt"
)

// Error categories surfaced by the task store and the lifecycle handlers.
// Callers classify failures with errors.Is against these values.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("task not found")
	ErrDuplicateKey = errors.New("task id already exists")
	ErrNoChange     = errors.New("no changes detected")
)

var (
	ErrEmptyTitle        = fmt.Errorf("%w: task title cannot be empty", ErrInvalidInput)
	ErrEmptyID           = fmt.Errorf("%w: task id cannot be empty", ErrInvalidInput)
	ErrSameDetails       = fmt.Errorf("%w: title and description are the same as current values", ErrNoChange)
	ErrAlreadyComplete   = fmt.Errorf("%w: task is already completed", ErrNoChange)
	ErrAlreadyIncomplete = fmt.Errorf("%w: task is already incomplete", ErrNoChange)
)

// NotFoundError reports that no task with the given id exists.
func NotFoundError(id string) error {
	return fmt.Errorf("%w: id %q", ErrNotFound, id)
}

// DuplicateKeyError reports an id collision on insert.
func DuplicateKeyError(id string) error {
	return fmt.Errorf("%w: id %q", ErrDuplicateKey, id)
}
