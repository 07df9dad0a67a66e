package shell

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/spf13/cobra"
)

// NewShellCmd starts the line command session.
func NewShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start the interactive command shell",
		Long: `Start a session that reads one command per line.

Arguments follow shell quoting rules:
  add "Buy milk" "2 liters"
  update 1 --title 'Buy oat milk'
  mark 1 complete`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := cli.AppFromContext(cmd.Context())
			if err != nil {
				return err
			}
			return RunShell(cmd.Context(), a, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// RunShell reads and dispatches lines until exit, end of input or
// cancellation of ctx.
func RunShell(ctx context.Context, a *cli.App, in io.Reader, out io.Writer) error {
	lines := newLineReader(in)
	defer lines.close()

	d := NewDispatcher(a, out)
	fmt.Fprintln(out, "Todo shell. Type 'help' for available commands.")

	for {
		fmt.Fprint(out, a.Config.Prompt)
		line, err := lines.next(ctx)
		if err != nil {
			fmt.Fprintln(out)
			return endOfSession(out, err)
		}
		if d.Dispatch(ctx, line) {
			return nil
		}
	}
}

// endOfSession treats end of input and interruption as a normal exit.
func endOfSession(out io.Writer, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
		fmt.Fprintln(out, "Goodbye!")
		return nil
	}
	return err
}
