package cli

import (
	"context"
	"errors"

	"github.com/felixgeelhaar/todo/internal/app"
	"github.com/felixgeelhaar/todo/internal/productivity/application/commands"
	"github.com/felixgeelhaar/todo/internal/productivity/application/queries"
	"github.com/felixgeelhaar/todo/pkg/config"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
)

// ErrAppNotInitialized is returned when a command runs without an App in its context.
var ErrAppNotInitialized = errors.New("application not initialized")

// App holds the CLI application dependencies.
type App struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Metrics *observability.InMemoryMetrics

	// Task Command Handlers
	CreateTaskHandler    *commands.CreateTaskHandler
	ModifyTaskHandler    *commands.ModifyTaskHandler
	RemoveTaskHandler    *commands.RemoveTaskHandler
	SetTaskStatusHandler *commands.SetTaskStatusHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler

	container *app.Container
}

// NewApp creates a new CLI application from a wired container.
func NewApp(c *app.Container) *App {
	return &App{
		Config:               c.Config,
		Logger:               c.Logger,
		Metrics:              c.Metrics,
		CreateTaskHandler:    c.CreateTaskHandler,
		ModifyTaskHandler:    c.ModifyTaskHandler,
		RemoveTaskHandler:    c.RemoveTaskHandler,
		SetTaskStatusHandler: c.SetTaskStatusHandler,
		ListTasksHandler:     c.ListTasksHandler,
		GetTaskHandler:       c.GetTaskHandler,
		container:            c,
	}
}

// Close releases the underlying container.
func (a *App) Close() {
	if a.container != nil {
		a.container.Close()
	}
}

type appContextKey struct{}

// WithApp returns a context carrying the application.
func WithApp(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, appContextKey{}, a)
}

// AppFromContext returns the application stored by WithApp.
func AppFromContext(ctx context.Context) (*App, error) {
	if ctx == nil {
		return nil, ErrAppNotInitialized
	}
	a, ok := ctx.Value(appContextKey{}).(*App)
	if !ok || a == nil {
		return nil, ErrAppNotInitialized
	}
	return a, nil
}
