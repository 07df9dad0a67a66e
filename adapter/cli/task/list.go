package task

import (
	"github.com/felixgeelhaar/todo/internal/productivity/application/queries"
	"github.com/spf13/cobra"
)

// NewListCmd lists every task in creation order.
func NewListCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "list",
		Short:         "List all tasks",
		Aliases:       []string{"view", "ls"},
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := appFor(cmd)
			if err != nil {
				return err
			}
			RenderTaskList(cmd.OutOrStdout(), app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{}))
			return nil
		},
	}
}
