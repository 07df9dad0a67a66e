package app

import (
	"errors"

	"github.com/felixgeelhaar/todo/internal/productivity/application/commands"
	"github.com/felixgeelhaar/todo/internal/productivity/application/queries"
	"github.com/felixgeelhaar/todo/internal/productivity/application/subscribers"
	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	"github.com/felixgeelhaar/todo/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todo/pkg/config"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
)

// Container holds all application dependencies. It is built once per process
// and owns the task store and id generator for the session.
type Container struct {
	Config  *config.Config
	Logger  zerolog.Logger
	Metrics *observability.InMemoryMetrics

	// Store
	TaskRepo    task.Repository
	IDGenerator task.IDGenerator

	// Events
	EventBus    *eventbus.InProcessEventBus
	ActivityLog *subscribers.ActivityLogSubscriber

	// Task Command Handlers
	CreateTaskHandler    *commands.CreateTaskHandler
	ModifyTaskHandler    *commands.ModifyTaskHandler
	RemoveTaskHandler    *commands.RemoveTaskHandler
	SetTaskStatusHandler *commands.SetTaskStatusHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler
	GetTaskHandler   *queries.GetTaskHandler
}

// NewContainer wires the in-memory store, the event bus and every handler.
func NewContainer(cfg *config.Config, logger zerolog.Logger) (*Container, error) {
	if cfg == nil {
		return nil, errors.New("config is required")
	}

	metrics := observability.NewInMemoryMetrics()
	c := &Container{
		Config:      cfg,
		Logger:      logger,
		Metrics:     metrics,
		TaskRepo:    persistence.NewInMemoryTaskRepository(),
		IDGenerator: task.NewSequentialIDGenerator(),
		EventBus:    eventbus.NewInProcessEventBus(logger).WithMetrics(metrics),
	}

	c.ActivityLog = subscribers.NewActivityLogSubscriber(logger)
	c.ActivityLog.SetEnabled(cfg.Events.Log)
	c.EventBus.RegisterConsumer(c.ActivityLog)
	c.EventBus.RegisterConsumer(subscribers.NewMetricsSubscriber(c.Metrics))

	c.CreateTaskHandler = commands.NewCreateTaskHandler(c.TaskRepo, c.IDGenerator, c.EventBus, logger)
	c.ModifyTaskHandler = commands.NewModifyTaskHandler(c.TaskRepo, c.EventBus, logger)
	c.RemoveTaskHandler = commands.NewRemoveTaskHandler(c.TaskRepo, c.EventBus, logger)
	c.SetTaskStatusHandler = commands.NewSetTaskStatusHandler(c.TaskRepo, c.EventBus, logger)

	c.ListTasksHandler = queries.NewListTasksHandler(c.TaskRepo)
	c.GetTaskHandler = queries.NewGetTaskHandler(c.TaskRepo)

	registry := c.EventBus.GetRegistry()
	logger.Debug().
		Str("app_env", cfg.AppEnv).
		Int("consumers", registry.ConsumerCount()).
		Strs("event_types", registry.GetAllEventTypes()).
		Msg("container initialized")

	return c, nil
}

// Close releases resources. Tasks are discarded with the process.
func (c *Container) Close() {
	if c.EventBus != nil {
		if err := c.EventBus.Close(); err != nil {
			c.Logger.Warn().Err(err).Msg("error closing event bus")
		}
	}
	c.Logger.Debug().Msg("container closed")
}
