package task

import (
	"github.com/felixgeelhaar/todo/internal/productivity/application/commands"
	"github.com/spf13/cobra"
)

// NewDeleteCmd removes a task.
func NewDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "delete <id>",
		Short:         "Delete a task",
		Aliases:       []string{"rm"},
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := appFor(cmd)
			if err != nil {
				return err
			}
			if err := app.RemoveTaskHandler.Handle(ctx, commands.RemoveTaskCommand{TaskID: args[0]}); err != nil {
				return WrapError("delete", args[0], err)
			}
			RenderSuccess(cmd.OutOrStdout(), "Task '%s' deleted successfully.", args[0])
			return nil
		},
	}
}
