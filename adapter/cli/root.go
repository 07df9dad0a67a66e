package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/felixgeelhaar/todo/internal/app"
	"github.com/felixgeelhaar/todo/pkg/config"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

type commandContext struct {
	correlationID uuid.UUID
	startedAt     time.Time
	owned         bool
}

type commandContextKey struct{}

type rootOptions struct {
	cfgFile string
	verbose bool
	noColor bool
}

// RunFunc is the action of the root command when called without a subcommand.
type RunFunc func(cmd *cobra.Command, args []string) error

// NewRootCmd builds the base command. run is executed when no subcommand is
// given; cmds are attached as subcommands.
//
// The application is bootstrapped from configuration before any command runs,
// unless the context passed to ExecuteContext already carries one.
func NewRootCmd(run RunFunc, cmds ...*cobra.Command) *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - in-memory task tracker",
		Long: `todo keeps a list of tasks for the length of one session.

Run without arguments for the numbered menu, or use "todo shell"
for a line-oriented command session. Tasks are not saved on exit.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE:          run,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			info := commandContext{
				correlationID: uuid.New(),
				startedAt:     time.Now(),
			}

			a, err := AppFromContext(ctx)
			if err != nil {
				a, err = bootstrap(cmd, opts)
				if err != nil {
					return err
				}
				info.owned = true
				ctx = WithApp(ctx, a)
			}

			ctx = observability.WithCorrelationID(ctx, info.correlationID.String())
			cmd.SetContext(context.WithValue(ctx, commandContextKey{}, info))

			a.Logger.Info().
				Str("command", cmd.CommandPath()).
				Str(observability.CorrelationIDKey, info.correlationID.String()).
				Msg("command start")
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "", "config file path")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(cmds...)
	return rootCmd
}

func bootstrap(cmd *cobra.Command, opts *rootOptions) (*App, error) {
	cfg, err := config.Load(opts.cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.verbose {
		cfg.LogLevel = string(observability.LogLevelDebug)
	}
	if opts.noColor {
		cfg.Color = false
	}
	color.NoColor = !cfg.Color

	logCfg := cfg.LogConfig()
	logCfg.Output = cmd.ErrOrStderr()
	logCfg.ServiceVersion = Version
	logger := observability.NewLogger(logCfg)

	container, err := app.NewContainer(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return NewApp(container), nil
}

// Run executes the root command, then logs the end of the command and closes
// an application bootstrapped for it, whether or not the command failed.
func Run(ctx context.Context, rootCmd *cobra.Command) error {
	cmd, err := rootCmd.ExecuteContextC(ctx)
	finish(cmd, err)
	return err
}

func finish(cmd *cobra.Command, err error) {
	if cmd == nil || cmd.Context() == nil {
		return
	}
	info, ok := cmd.Context().Value(commandContextKey{}).(commandContext)
	if !ok {
		return
	}
	a, appErr := AppFromContext(cmd.Context())
	if appErr != nil {
		return
	}

	entry := a.Logger.Info()
	if err != nil {
		entry = a.Logger.Warn().Err(err)
	}
	entry.
		Str("command", cmd.CommandPath()).
		Str(observability.CorrelationIDKey, info.correlationID.String()).
		Int64(observability.DurationKey, time.Since(info.startedAt).Milliseconds()).
		Msg("command end")
	if info.owned {
		a.Close()
	}
}

// Execute runs the root command and exits the process on failure.
func Execute(ctx context.Context, rootCmd *cobra.Command) {
	if err := Run(ctx, rootCmd); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
