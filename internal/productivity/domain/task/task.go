package task

import (
	"strings"
)

// Status is the completion state of a task.
type Status bool

const (
	StatusIncomplete Status = false
	StatusComplete   Status = true
)

func (s Status) String() string {
	if s == StatusComplete {
		return "complete"
	}
	return "incomplete"
}

// Task is an immutable to-do item. Every change produces a new value that
// keeps the same id; the id is the identity, not the value.
type Task struct {
	id             string
	title          string
	description    string
	hasDescription bool
	complete       bool
}

// NewTask builds an incomplete task. A nil description means the task has
// none, which is distinct from an empty description.
func NewTask(id, title string, description *string) (Task, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Task{}, ErrEmptyID
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Task{}, ErrEmptyTitle
	}

	t := Task{
		id:    id,
		title: title,
	}
	if description != nil {
		t.description = strings.TrimSpace(*description)
		t.hasDescription = true
	}
	return t, nil
}

// Getters

func (t Task) ID() string       { return t.id }
func (t Task) Title() string    { return t.title }
func (t Task) IsComplete() bool { return t.complete }
func (t Task) Status() Status   { return Status(t.complete) }
func (t Task) IsZero() bool     { return t.id == "" }

// Description returns the description and whether the task has one.
func (t Task) Description() (string, bool) {
	return t.description, t.hasDescription
}

// DescriptionPtr returns the description as an optional value.
func (t Task) DescriptionPtr() *string {
	if !t.hasDescription {
		return nil
	}
	d := t.description
	return &d
}

// WithDetails returns a copy with a new title and description. The id and
// completion state are preserved.
func (t Task) WithDetails(title string, description *string) (Task, error) {
	next, err := NewTask(t.id, title, description)
	if err != nil {
		return Task{}, err
	}
	next.complete = t.complete
	return next, nil
}

// WithCompletion returns a copy with the given completion state.
func (t Task) WithCompletion(complete bool) Task {
	next := t
	next.complete = complete
	return next
}

// HasSameDetails reports whether the title and description equal the given
// values after normalization.
func (t Task) HasSameDetails(title string, description *string) bool {
	if strings.TrimSpace(title) != t.title {
		return false
	}
	if description == nil {
		return !t.hasDescription
	}
	return t.hasDescription && strings.TrimSpace(*description) == t.description
}
