package task

import (
	"errors"

	"github.com/felixgeelhaar/todo/internal/productivity/application/commands"
	"github.com/spf13/cobra"
)

// NewAddCmd creates a task.
func NewAddCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "add <title> [description]",
		Short: "Add a new task",
		Long: `Add a new task. The description may be given as a second
argument or with --description; an omitted description is absent.

Examples:
  add "Buy milk"
  add "Buy milk" "2 liters"
  add "Call mom" --description "before 6pm"`,
		Args:          cobra.RangeArgs(1, 2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := appFor(cmd)
			if err != nil {
				return err
			}

			createCmd := commands.CreateTaskCommand{Title: args[0]}
			switch {
			case len(args) == 2 && cmd.Flags().Changed("description"):
				return WrapError("add", "", errors.New("description given both as argument and flag"))
			case len(args) == 2:
				createCmd.Description = &args[1]
			case cmd.Flags().Changed("description"):
				createCmd.Description = &description
			}

			created, err := app.CreateTaskHandler.Handle(ctx, createCmd)
			if err != nil {
				return WrapError("add", "", err)
			}

			out := cmd.OutOrStdout()
			RenderSuccess(out, "Task '%s' added successfully with ID: %s", created.Title(), created.ID())
			RenderTask(out, created)
			return nil
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "task description")
	return cmd
}
