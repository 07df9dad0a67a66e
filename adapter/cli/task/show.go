package task

import (
	"github.com/felixgeelhaar/todo/internal/productivity/application/queries"
	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	"github.com/spf13/cobra"
)

// NewShowCmd displays a single task.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "show <id>",
		Short:         "Show task details",
		Aliases:       []string{"get"},
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := appFor(cmd)
			if err != nil {
				return err
			}

			result := app.GetTaskHandler.Handle(ctx, queries.GetTaskQuery{TaskID: args[0]})
			if !result.Found {
				return WrapError("show", args[0], task.NotFoundError(args[0]))
			}
			RenderTask(cmd.OutOrStdout(), result.Task)
			return nil
		},
	}
}
