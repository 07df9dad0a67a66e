package task

import (
	"fmt"

	"github.com/felixgeelhaar/todo/internal/productivity/application/queries"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/spf13/cobra"
)

var activityCounters = []struct {
	label  string
	metric string
}{
	{"Created", observability.MetricTasksCreated},
	{"Updated", observability.MetricTasksUpdated},
	{"Completed", observability.MetricTasksCompleted},
	{"Reopened", observability.MetricTasksReopened},
	{"Deleted", observability.MetricTasksDeleted},
}

// NewStatsCmd shows task counts and session activity.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "stats",
		Short:         "Show task statistics",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, ctx, err := appFor(cmd)
			if err != nil {
				return err
			}

			tasks := app.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{})
			complete := 0
			for _, t := range tasks {
				if t.IsComplete() {
					complete++
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Task Statistics")
			fmt.Fprintln(out, separator)
			fmt.Fprintf(out, "  Total:      %d\n", len(tasks))
			fmt.Fprintf(out, "  Complete:   %d\n", complete)
			fmt.Fprintf(out, "  Incomplete: %d\n", len(tasks)-complete)
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Session Activity")
			fmt.Fprintln(out, separator)
			for _, c := range activityCounters {
				fmt.Fprintf(out, "  %-10s  %d\n", c.label+":", app.Metrics.GetCounter(c.metric))
			}
			return nil
		},
	}
}
