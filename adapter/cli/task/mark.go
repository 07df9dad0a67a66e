package task

import (
	"github.com/felixgeelhaar/todo/internal/productivity/application/commands"
	"github.com/spf13/cobra"
)

// NewMarkCmd sets the completion status of a task.
func NewMarkCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "mark <id> <complete|incomplete>",
		Short:         "Mark a task complete or incomplete",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			complete, err := ParseStatus(args[1])
			if err != nil {
				return WrapError("mark", args[0], err)
			}
			return setStatus(cmd, args[0], complete)
		},
	}
}

// NewDoneCmd marks a task complete.
func NewDoneCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "done <id>",
		Short:         "Mark a task complete",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(cmd, args[0], true)
		},
	}
}

// NewUndoCmd marks a task incomplete.
func NewUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "undo <id>",
		Short:         "Mark a task incomplete",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return setStatus(cmd, args[0], false)
		},
	}
}

func setStatus(cmd *cobra.Command, id string, complete bool) error {
	app, ctx, err := appFor(cmd)
	if err != nil {
		return err
	}

	updated, err := app.SetTaskStatusHandler.Handle(ctx, commands.SetTaskStatusCommand{
		TaskID:   id,
		Complete: complete,
	})
	if err != nil {
		return WrapError("mark", id, err)
	}

	RenderSuccess(cmd.OutOrStdout(), "Task '%s' marked as %s.", updated.ID(), StatusText(updated.IsComplete()))
	return nil
}

// StatusText names a completion state in confirmations.
func StatusText(complete bool) string {
	if complete {
		return "completed"
	}
	return "incomplete"
}
