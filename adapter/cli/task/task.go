// Package task holds the task subcommands of the interactive session.
// Every constructor returns a fresh command so flag state never carries
// over from one invocation to the next.
package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	"github.com/spf13/cobra"
)

// commandError records which operation failed on which task.
type commandError struct {
	op  string
	id  string
	err error
}

func (e *commandError) Error() string {
	if e.id == "" {
		return fmt.Sprintf("failed to %s task: %v", e.op, e.err)
	}
	return fmt.Sprintf("failed to %s task %s: %v", e.op, e.id, e.err)
}

func (e *commandError) Unwrap() error { return e.err }

// WrapError tags err with the failed operation and task id so RenderError
// can name the task.
func WrapError(op, id string, err error) error {
	if err == nil {
		return nil
	}
	return &commandError{op: op, id: id, err: err}
}

// Commands returns one fresh instance of every task subcommand.
func Commands() []*cobra.Command {
	return []*cobra.Command{
		NewAddCmd(),
		NewListCmd(),
		NewShowCmd(),
		NewUpdateCmd(),
		NewDeleteCmd(),
		NewMarkCmd(),
		NewDoneCmd(),
		NewUndoCmd(),
		NewStatsCmd(),
	}
}

func appFor(cmd *cobra.Command) (*cli.App, context.Context, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := cli.AppFromContext(ctx)
	if err != nil {
		return nil, nil, err
	}
	return a, ctx, nil
}

// ParseStatus reads "complete" or "incomplete" in any case.
func ParseStatus(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "complete":
		return true, nil
	case "incomplete":
		return false, nil
	default:
		return false, fmt.Errorf("%w: status must be 'complete' or 'incomplete', got %q", task.ErrInvalidInput, s)
	}
}
