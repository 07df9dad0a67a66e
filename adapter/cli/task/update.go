package task

import (
	"errors"

	"github.com/felixgeelhaar/todo/internal/productivity/application/commands"
	"github.com/spf13/cobra"
)

// ErrNoUpdateFlags is returned by update when nothing would change.
var ErrNoUpdateFlags = errors.New("at least one of --title, --description or --clear-description must be provided")

// NewUpdateCmd modifies the title and/or description of a task.
func NewUpdateCmd() *cobra.Command {
	var (
		title            string
		description      string
		clearDescription bool
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update the title and/or description of a task.

Examples:
  update 1 --title "Buy oat milk"
  update 1 --description "2 liters"
  update 1 --clear-description`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := appFor(cmd)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("title") && !flags.Changed("description") && !clearDescription {
				return ErrNoUpdateFlags
			}

			modifyCmd := commands.ModifyTaskCommand{TaskID: args[0]}
			if flags.Changed("title") {
				modifyCmd.Title = &title
			}
			switch {
			case clearDescription:
				modifyCmd.Description = commands.ClearDescription()
			case flags.Changed("description"):
				modifyCmd.Description = commands.SetDescription(description)
			}

			updated, err := app.ModifyTaskHandler.Handle(ctx, modifyCmd)
			if err != nil {
				return WrapError("update", args[0], err)
			}

			out := cmd.OutOrStdout()
			RenderSuccess(out, "Task '%s' updated successfully.", updated.ID())
			RenderTask(out, updated)
			return nil
		},
	}

	cmd.Flags().StringVarP(&title, "title", "t", "", "new title")
	cmd.Flags().StringVarP(&description, "description", "d", "", "new description")
	cmd.Flags().BoolVar(&clearDescription, "clear-description", false, "remove the description")
	cmd.MarkFlagsMutuallyExclusive("description", "clear-description")
	return cmd
}
