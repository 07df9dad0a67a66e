// Package shell implements the interactive sessions: the numbered menu and
// the line command shell.
package shell

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/felixgeelhaar/todo/adapter/cli/task"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type commandFactory func() *cobra.Command

var commandTable = map[string]commandFactory{
	"add":    task.NewAddCmd,
	"list":   task.NewListCmd,
	"view":   task.NewListCmd,
	"ls":     task.NewListCmd,
	"show":   task.NewShowCmd,
	"get":    task.NewShowCmd,
	"update": task.NewUpdateCmd,
	"delete": task.NewDeleteCmd,
	"rm":     task.NewDeleteCmd,
	"mark":   task.NewMarkCmd,
	"done":   task.NewDoneCmd,
	"undo":   task.NewUndoCmd,
	"stats":  task.NewStatsCmd,
}

// helpOrder lists the primary command names in the order help shows them.
var helpOrder = []string{"add", "list", "show", "update", "delete", "mark", "done", "undo", "stats"}

// Dispatcher routes one input line to a freshly built task command.
type Dispatcher struct {
	app *cli.App
	out io.Writer
}

// NewDispatcher creates a dispatcher writing all output to out.
func NewDispatcher(a *cli.App, out io.Writer) *Dispatcher {
	return &Dispatcher{app: a, out: out}
}

// Dispatch executes line and reports whether the session should end.
// Errors are printed; none of them end the session.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) bool {
	words, err := shellquote.Split(line)
	if err != nil {
		task.RenderErrorMessage(d.out, fmt.Sprintf("Could not parse command: %v.", err))
		return false
	}
	if len(words) == 0 {
		task.RenderErrorMessage(d.out, "Command cannot be empty.")
		return false
	}

	name := strings.ToLower(words[0])
	switch name {
	case "exit", "quit":
		fmt.Fprintln(d.out, "Goodbye!")
		return true
	case "help":
		d.printHelp()
		return false
	}

	newCmd, ok := commandTable[name]
	if !ok {
		task.RenderErrorMessage(d.out, fmt.Sprintf("Unknown command '%s'. Type 'help' for available commands.", name))
		return false
	}

	ctx = observability.WithCorrelationID(cli.WithApp(ctx, d.app), "")
	ctx = observability.WithOperation(ctx, name)
	logger := observability.WithContext(ctx, d.app.Logger)

	cmd := newCmd()
	cmd.SetArgs(separateFlags(cmd, words[1:]))
	cmd.SetOut(d.out)
	cmd.SetErr(d.out)

	err = observability.TimeOperation(logger, d.app.Metrics, "shell."+name, func() error {
		return cmd.ExecuteContext(ctx)
	})
	if err != nil {
		task.RenderError(d.out, err)
	}
	return false
}

// separateFlags moves every word that is not one of cmd's flags behind a
// "--" terminator, so quoted text such as "-5 degrees" stays a positional
// argument. A flag that takes a value keeps the following word as its value.
func separateFlags(cmd *cobra.Command, words []string) []string {
	cmd.InitDefaultHelpFlag()
	flags := cmd.Flags()

	var named, positional []string
	for i := 0; i < len(words); i++ {
		w := words[i]
		if w == "--" {
			positional = append(positional, words[i+1:]...)
			break
		}

		var f *pflag.Flag
		inline := false
		switch {
		case strings.HasPrefix(w, "--") && len(w) > 2:
			name, _, hasValue := strings.Cut(w[2:], "=")
			f, inline = flags.Lookup(name), hasValue
		case strings.HasPrefix(w, "-") && len(w) > 1:
			f, inline = flags.ShorthandLookup(w[1:2]), len(w) > 2
		}
		if f == nil {
			positional = append(positional, w)
			continue
		}

		named = append(named, w)
		if !inline && f.NoOptDefVal == "" {
			if i+1 == len(words) {
				// let the flag parser report the missing value
				return words
			}
			i++
			named = append(named, words[i])
		}
	}

	if len(positional) == 0 {
		return named
	}
	return append(append(named, "--"), positional...)
}

func (d *Dispatcher) printHelp() {
	fmt.Fprintln(d.out, "Available commands:")
	for _, name := range helpOrder {
		cmd := commandTable[name]()
		use := cmd.Use
		if len(cmd.Aliases) > 0 {
			use += " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		fmt.Fprintf(d.out, "  %-40s %s\n", use, cmd.Short)
	}
	fmt.Fprintf(d.out, "  %-40s %s\n", "help", "Show this help")
	fmt.Fprintf(d.out, "  %-40s %s\n", "exit (quit)", "Leave the shell")
	fmt.Fprintln(d.out, "Run '<command> --help' for command flags.")
}
