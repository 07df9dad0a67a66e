package task

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
)

var separator = strings.Repeat("-", 20)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

// RenderTask writes one task block.
func RenderTask(w io.Writer, t task.Task) {
	fmt.Fprintf(w, "ID: %s\n", t.ID())
	fmt.Fprintf(w, "  Title: %s\n", t.Title())
	if d, ok := t.Description(); ok && d != "" {
		fmt.Fprintf(w, "  Description: %s\n", d)
	}
	fmt.Fprintf(w, "  Status: %s\n", formatStatus(t.Status()))
	fmt.Fprintln(w, separator)
}

// RenderTaskList writes every task in order followed by the total.
func RenderTaskList(w io.Writer, tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found.")
		return
	}
	for _, t := range tasks {
		RenderTask(w, t)
	}
	fmt.Fprintf(w, "Total tasks: %d\n", len(tasks))
}

// RenderSuccess writes a confirmation line.
func RenderSuccess(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, green.Sprintf(format, args...))
}

// RenderError writes err as a user-facing message chosen by its category.
func RenderError(w io.Writer, err error) {
	RenderErrorMessage(w, ErrorMessage(err))
}

// RenderErrorMessage writes msg as an error line.
func RenderErrorMessage(w io.Writer, msg string) {
	fmt.Fprintln(w, red.Sprintf("Error: %s", msg))
}

// ErrorMessage maps an error to the message shown to the user.
func ErrorMessage(err error) string {
	var cmdErr *commandError
	id := ""
	cause := err
	if errors.As(err, &cmdErr) {
		id = cmdErr.id
		cause = cmdErr.err
	}

	switch {
	case errors.Is(err, task.ErrNotFound):
		return fmt.Sprintf("Task with ID '%s' not found.", id)
	case errors.Is(err, task.ErrNoChange):
		return fmt.Sprintf("No change for task '%s': %s.", id, reason(cause, task.ErrNoChange))
	case errors.Is(err, task.ErrInvalidInput):
		return fmt.Sprintf("Invalid input: %s.", reason(cause, task.ErrInvalidInput))
	default:
		return err.Error()
	}
}

// reason strips the category prefix from a wrapped sentinel message.
func reason(err, category error) string {
	return strings.TrimPrefix(err.Error(), category.Error()+": ")
}

func formatStatus(s task.Status) string {
	if s == task.StatusComplete {
		return green.Sprint("Complete")
	}
	return yellow.Sprint("Incomplete")
}
