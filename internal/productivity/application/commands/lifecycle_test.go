package commands

import (
	"bytes"
	"context"
	"strconv"
	"testing"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	"github.com/felixgeelhaar/todo/internal/productivity/infrastructure/persistence"
	"github.com/felixgeelhaar/todo/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/todo/pkg/observability"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lifecycle struct {
	repo   *persistence.InMemoryTaskRepository
	create *CreateTaskHandler
	modify *ModifyTaskHandler
	remove *RemoveTaskHandler
	status *SetTaskStatusHandler
}

func newLifecycle() lifecycle {
	logger := zerolog.Nop()
	repo := persistence.NewInMemoryTaskRepository()
	bus := eventbus.NewInProcessEventBus(logger)
	return lifecycle{
		repo:   repo,
		create: NewCreateTaskHandler(repo, task.NewSequentialIDGenerator(), bus, logger),
		modify: NewModifyTaskHandler(repo, bus, logger),
		remove: NewRemoveTaskHandler(repo, bus, logger),
		status: NewSetTaskStatusHandler(repo, bus, logger),
	}
}

func TestLifecycle_EndToEnd(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle()

	milk, err := l.create.Handle(ctx, CreateTaskCommand{Title: "Buy milk"})
	require.NoError(t, err)
	assert.Equal(t, "1", milk.ID())
	assert.Equal(t, "Buy milk", milk.Title())
	assert.Nil(t, milk.DescriptionPtr())
	assert.False(t, milk.IsComplete())

	clean, err := l.create.Handle(ctx, CreateTaskCommand{Title: "Clean", Description: strPtr("House")})
	require.NoError(t, err)
	assert.Equal(t, "2", clean.ID())

	assert.Len(t, l.repo.GetAll(ctx), 2)

	done, err := l.status.Handle(ctx, SetTaskStatusCommand{TaskID: "1", Complete: true})
	require.NoError(t, err)
	assert.Equal(t, "1", done.ID())
	assert.True(t, done.IsComplete())

	require.NoError(t, l.remove.Handle(ctx, RemoveTaskCommand{TaskID: "2"}))

	all := l.repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, done, all[0])

	_, ok := l.repo.Get(ctx, "2")
	assert.False(t, ok)
}

func TestLifecycle_RoundTrip(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle()

	assertStored := func(returned task.Task) {
		t.Helper()
		stored, ok := l.repo.Get(ctx, returned.ID())
		require.True(t, ok)
		assert.Equal(t, returned, stored)
	}

	created, err := l.create.Handle(ctx, CreateTaskCommand{Title: "Write report"})
	require.NoError(t, err)
	assertStored(created)

	modified, err := l.modify.Handle(ctx, ModifyTaskCommand{TaskID: created.ID(), Description: SetDescription("Q3")})
	require.NoError(t, err)
	assertStored(modified)

	completed, err := l.status.Handle(ctx, SetTaskStatusCommand{TaskID: created.ID(), Complete: true})
	require.NoError(t, err)
	assertStored(completed)
}

func TestLifecycle_IDsStrictlyIncrease(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle()

	previous := 0
	for i := 0; i < 25; i++ {
		created, err := l.create.Handle(ctx, CreateTaskCommand{Title: "task"})
		require.NoError(t, err)

		n, err := strconv.Atoi(created.ID())
		require.NoError(t, err)
		assert.Greater(t, n, previous)
		previous = n

		if i%5 == 0 {
			require.NoError(t, l.remove.Handle(ctx, RemoveTaskCommand{TaskID: created.ID()}))
		}
	}
}

func TestLifecycle_InvalidCreateLeavesStoreUnchanged(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle()

	_, err := l.create.Handle(ctx, CreateTaskCommand{Title: "keep"})
	require.NoError(t, err)

	_, err = l.create.Handle(ctx, CreateTaskCommand{Title: "   "})
	require.ErrorIs(t, err, task.ErrInvalidInput)

	assert.Equal(t, 1, l.repo.Count(ctx))
}

func TestLifecycle_UnknownIDs(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle()

	_, err := l.modify.Handle(ctx, ModifyTaskCommand{TaskID: "404", Title: strPtr("x")})
	assert.ErrorIs(t, err, task.ErrNotFound)

	_, err = l.status.Handle(ctx, SetTaskStatusCommand{TaskID: "404", Complete: true})
	assert.ErrorIs(t, err, task.ErrNotFound)

	err = l.remove.Handle(ctx, RemoveTaskCommand{TaskID: "404"})
	assert.ErrorIs(t, err, task.ErrNotFound)
}

func TestLifecycle_PaddedIDs(t *testing.T) {
	ctx := context.Background()
	l := newLifecycle()

	created, err := l.create.Handle(ctx, CreateTaskCommand{Title: "Buy milk"})
	require.NoError(t, err)

	modified, err := l.modify.Handle(ctx, ModifyTaskCommand{TaskID: " 1 ", Title: strPtr("Buy oat milk")})
	require.NoError(t, err)
	assert.Equal(t, created.ID(), modified.ID())

	completed, err := l.status.Handle(ctx, SetTaskStatusCommand{TaskID: "\t1", Complete: true})
	require.NoError(t, err)
	assert.True(t, completed.IsComplete())

	require.NoError(t, l.remove.Handle(ctx, RemoveTaskCommand{TaskID: "1 "}))
	assert.Equal(t, 0, l.repo.Count(ctx))

	_, err = l.modify.Handle(ctx, ModifyTaskCommand{TaskID: " 1", Title: strPtr("x")})
	assert.ErrorIs(t, err, task.ErrNotFound)
	assert.EqualError(t, err, task.NotFoundError("1").Error())
}

func TestLifecycle_LogsWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	repo := persistence.NewInMemoryTaskRepository()
	bus := eventbus.NewInProcessEventBus(zerolog.Nop())
	create := NewCreateTaskHandler(repo, task.NewSequentialIDGenerator(), bus, logger)
	remove := NewRemoveTaskHandler(repo, bus, logger)

	ctx := observability.WithCorrelationID(context.Background(), "corr-1")
	ctx = observability.WithOperation(ctx, "add")
	_, err := create.Handle(ctx, CreateTaskCommand{Title: "Buy milk"})
	require.NoError(t, err)
	require.NoError(t, remove.Handle(ctx, RemoveTaskCommand{TaskID: "1"}))

	logs := buf.String()
	assert.Contains(t, logs, `"message":"task created"`)
	assert.Contains(t, logs, `"message":"task deleted"`)
	assert.Contains(t, logs, `"correlation_id":"corr-1"`)
	assert.Contains(t, logs, `"operation":"add"`)
	assert.Contains(t, logs, `"task_id":"1"`)
}
