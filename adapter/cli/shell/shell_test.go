package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/felixgeelhaar/todo/adapter/cli"
	"github.com/felixgeelhaar/todo/internal/app"
	"github.com/felixgeelhaar/todo/internal/productivity/application/queries"
	"github.com/felixgeelhaar/todo/pkg/config"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func setupTestApp(t *testing.T) *cli.App {
	t.Helper()

	cfg := &config.Config{
		AppEnv:    "test",
		LogLevel:  "error",
		LogFormat: "text",
		Prompt:    "> ",
		Events:    config.EventsConfig{Log: true},
	}
	container, err := app.NewContainer(cfg, zerolog.Nop())
	require.NoError(t, err)
	return cli.NewApp(container)
}

func script(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestDispatcher_EmptyAndUnknown(t *testing.T) {
	a := setupTestApp(t)
	var out bytes.Buffer
	d := NewDispatcher(a, &out)

	assert.False(t, d.Dispatch(context.Background(), "   "))
	assert.Equal(t, "Error: Command cannot be empty.\n", out.String())

	out.Reset()
	assert.False(t, d.Dispatch(context.Background(), "frobnicate 1"))
	assert.Equal(t, "Error: Unknown command 'frobnicate'. Type 'help' for available commands.\n", out.String())
}

func TestDispatcher_Exit(t *testing.T) {
	for _, line := range []string{"exit", "quit", "EXIT", "  Quit  "} {
		t.Run(line, func(t *testing.T) {
			var out bytes.Buffer
			d := NewDispatcher(setupTestApp(t), &out)
			assert.True(t, d.Dispatch(context.Background(), line))
			assert.Contains(t, out.String(), "Goodbye!")
		})
	}
}

func TestDispatcher_QuotedArguments(t *testing.T) {
	a := setupTestApp(t)
	var out bytes.Buffer
	d := NewDispatcher(a, &out)

	d.Dispatch(context.Background(), `add "Buy milk" 'two liters'`)

	tasks := a.ListTasksHandler.Handle(context.Background(), queries.ListTasksQuery{})
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title())
	desc, ok := tasks[0].Description()
	assert.True(t, ok)
	assert.Equal(t, "two liters", desc)
}

func TestDispatcher_DashLeadingArguments(t *testing.T) {
	a := setupTestApp(t)
	var out bytes.Buffer
	d := NewDispatcher(a, &out)
	ctx := context.Background()

	d.Dispatch(ctx, `add "-5 degrees tonight" "bring coat"`)
	d.Dispatch(ctx, `add Fix "-- see notes"`)
	d.Dispatch(ctx, `update 1 --title "-10 degrees tonight"`)
	require.NotContains(t, out.String(), "Error:")

	tasks := a.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{})
	require.Len(t, tasks, 2)
	assert.Equal(t, "-10 degrees tonight", tasks[0].Title())
	desc, _ := tasks[0].Description()
	assert.Equal(t, "bring coat", desc)
	assert.Equal(t, "Fix", tasks[1].Title())
	desc, _ = tasks[1].Description()
	assert.Equal(t, "-- see notes", desc)
}

func TestDispatcher_PaddedIDs(t *testing.T) {
	a := setupTestApp(t)
	var out bytes.Buffer
	d := NewDispatcher(a, &out)
	ctx := context.Background()

	d.Dispatch(ctx, "add Laundry")
	d.Dispatch(ctx, `show " 1"`)
	d.Dispatch(ctx, `done " 1"`)
	d.Dispatch(ctx, `delete " 1"`)

	assert.NotContains(t, out.String(), "Error:")
	assert.Contains(t, out.String(), "deleted successfully.")
	assert.Empty(t, a.ListTasksHandler.Handle(ctx, queries.ListTasksQuery{}))
}

func TestSeparateFlags(t *testing.T) {
	tests := []struct {
		name  string
		words []string
		want  []string
	}{
		{"no flags", []string{"Buy", "2 liters"}, []string{"--", "Buy", "2 liters"}},
		{"flag with value", []string{"Call", "-d", "later"}, []string{"-d", "later", "--", "Call"}},
		{"inline value", []string{"--description=later", "Call"}, []string{"--description=later", "--", "Call"}},
		{"flag value starting with dash", []string{"-d", "-x", "Call"}, []string{"-d", "-x", "--", "Call"}},
		{"unknown dash word", []string{"-5 degrees"}, []string{"--", "-5 degrees"}},
		{"help flag", []string{"--help"}, []string{"--help"}},
		{"explicit terminator", []string{"--", "-d"}, []string{"--", "-d"}},
		{"missing value", []string{"Call", "-d"}, []string{"Call", "-d"}},
		{"empty", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, separateFlags(commandTable["add"](), tt.words))
		})
	}
}

func TestDispatcher_UnbalancedQuotes(t *testing.T) {
	var out bytes.Buffer
	d := NewDispatcher(setupTestApp(t), &out)

	assert.False(t, d.Dispatch(context.Background(), `add "Buy milk`))
	assert.Contains(t, out.String(), "Error: Could not parse command")
}

func TestDispatcher_ErrorsDoNotEndSession(t *testing.T) {
	a := setupTestApp(t)
	var out bytes.Buffer
	d := NewDispatcher(a, &out)
	ctx := context.Background()

	assert.False(t, d.Dispatch(ctx, "show"))
	assert.Contains(t, out.String(), "accepts 1 arg(s), received 0")

	out.Reset()
	assert.False(t, d.Dispatch(ctx, "delete 9"))
	assert.Equal(t, "Error: Task with ID '9' not found.\n", out.String())

	out.Reset()
	d.Dispatch(ctx, "add Buy")
	out.Reset()
	assert.False(t, d.Dispatch(ctx, "update 1"))
	assert.Contains(t, out.String(),
		"Error: at least one of --title, --description or --clear-description must be provided")
}

func TestDispatcher_CommandNameIsCaseInsensitive(t *testing.T) {
	a := setupTestApp(t)
	var out bytes.Buffer
	d := NewDispatcher(a, &out)

	d.Dispatch(context.Background(), "ADD Laundry")
	d.Dispatch(context.Background(), "Ls")

	assert.Contains(t, out.String(), "  Title: Laundry\n")
	assert.Contains(t, out.String(), "Total tasks: 1\n")
}

func TestDispatcher_RecordsOperationMetrics(t *testing.T) {
	a := setupTestApp(t)
	d := NewDispatcher(a, &bytes.Buffer{})

	d.Dispatch(context.Background(), "add Laundry")
	d.Dispatch(context.Background(), "show 5")

	assert.Equal(t, int64(1), a.Metrics.GetCounter(observability.MetricOperationTotal,
		observability.T("operation", "shell.add")))
	assert.Equal(t, int64(1), a.Metrics.GetCounter(observability.MetricOperationErrors,
		observability.T("operation", "shell.show")))
}

func TestDispatcher_Help(t *testing.T) {
	var out bytes.Buffer
	d := NewDispatcher(setupTestApp(t), &out)

	assert.False(t, d.Dispatch(context.Background(), "help"))
	for _, name := range helpOrder {
		assert.Contains(t, out.String(), "  "+name)
	}
	assert.Contains(t, out.String(), "list (view, ls)")
	assert.Contains(t, out.String(), "exit (quit)")
}

func TestRunShell_EndToEnd(t *testing.T) {
	a := setupTestApp(t)
	var out bytes.Buffer

	err := RunShell(context.Background(), a, script(
		`add "Buy milk"`,
		`add Clean House`,
		`list`,
		`mark 1 complete`,
		`delete 2`,
		`list`,
		`exit`,
		`add "never reached"`,
	), &out)
	require.NoError(t, err)

	tasks := a.ListTasksHandler.Handle(context.Background(), queries.ListTasksQuery{})
	require.Len(t, tasks, 1)
	assert.Equal(t, "1", tasks[0].ID())
	assert.Equal(t, "Buy milk", tasks[0].Title())
	assert.True(t, tasks[0].IsComplete())
	_, hasDesc := tasks[0].Description()
	assert.False(t, hasDesc)

	got := out.String()
	assert.Contains(t, got, "Task 'Buy milk' added successfully with ID: 1")
	assert.Contains(t, got, "Task 'Clean' added successfully with ID: 2")
	assert.Contains(t, got, "  Description: House\n")
	assert.Contains(t, got, "Total tasks: 2\n")
	assert.Contains(t, got, "Task '1' marked as completed.")
	assert.Contains(t, got, "Task '2' deleted successfully.")
	assert.Contains(t, got, "Total tasks: 1\n")
	assert.Contains(t, got, "Goodbye!")
}

func TestRunShell_EOF(t *testing.T) {
	var out bytes.Buffer
	err := RunShell(context.Background(), setupTestApp(t), strings.NewReader("list\n"), &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "No tasks found.")
	assert.Contains(t, out.String(), "Goodbye!")
}

func TestRunShell_Cancelled(t *testing.T) {
	a := setupTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	pr, pw := io.Pipe()
	defer pw.Close()

	done := make(chan error, 1)
	go func() {
		done <- RunShell(ctx, a, pr, io.Discard)
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("shell did not stop after cancellation")
	}
}

func TestShellCmd(t *testing.T) {
	a := setupTestApp(t)
	root := cli.NewRootCmd(RunMenu, NewShellCmd())

	var out bytes.Buffer
	root.SetArgs([]string{"shell"})
	root.SetIn(script("add Laundry", "quit"))
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})

	require.NoError(t, root.ExecuteContext(cli.WithApp(context.Background(), a)))
	assert.Contains(t, out.String(), "Todo shell.")
	assert.Contains(t, out.String(), "Task 'Laundry' added successfully with ID: 1")
}
