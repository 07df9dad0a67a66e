package persistence

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/todo/internal/productivity/domain/task"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(t *testing.T, id, title string) task.Task {
	t.Helper()

	tsk, err := task.NewTask(id, title, nil)
	require.NoError(t, err)
	return tsk
}

func TestInMemoryTaskRepository_Add(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()

	tsk := newTestTask(t, "1", "Buy milk")
	require.NoError(t, repo.Add(ctx, tsk))

	assert.Equal(t, 1, repo.Count(ctx))
	got, ok := repo.Get(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, tsk, got)
}

func TestInMemoryTaskRepository_Add_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()

	require.NoError(t, repo.Add(ctx, newTestTask(t, "1", "First")))
	err := repo.Add(ctx, newTestTask(t, "1", "Second"))

	require.Error(t, err)
	assert.ErrorIs(t, err, task.ErrDuplicateKey)
	assert.Equal(t, 1, repo.Count(ctx))

	got, _ := repo.Get(ctx, "1")
	assert.Equal(t, "First", got.Title())
}

func TestInMemoryTaskRepository_Get_NotFound(t *testing.T) {
	repo := NewInMemoryTaskRepository()

	got, ok := repo.Get(context.Background(), "missing")

	assert.False(t, ok)
	assert.True(t, got.IsZero())
}

func TestInMemoryTaskRepository_GetAll_InsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()

	assert.Empty(t, repo.GetAll(ctx))

	for _, id := range []string{"3", "1", "2"} {
		require.NoError(t, repo.Add(ctx, newTestTask(t, id, "Task "+id)))
	}

	all := repo.GetAll(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, "3", all[0].ID())
	assert.Equal(t, "1", all[1].ID())
	assert.Equal(t, "2", all[2].ID())
}

func TestInMemoryTaskRepository_GetAll_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()
	require.NoError(t, repo.Add(ctx, newTestTask(t, "1", "Original")))

	all := repo.GetAll(ctx)
	all[0] = newTestTask(t, "1", "Mutated")

	got, _ := repo.Get(ctx, "1")
	assert.Equal(t, "Original", got.Title())
}

func TestInMemoryTaskRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()
	require.NoError(t, repo.Add(ctx, newTestTask(t, "1", "A")))
	require.NoError(t, repo.Add(ctx, newTestTask(t, "2", "B")))

	updated := newTestTask(t, "1", "A2").WithCompletion(true)
	require.NoError(t, repo.Update(ctx, updated))

	assert.Equal(t, 2, repo.Count(ctx))
	got, ok := repo.Get(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, updated, got)

	// Position is preserved.
	all := repo.GetAll(ctx)
	assert.Equal(t, "1", all[0].ID())
}

func TestInMemoryTaskRepository_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()

	err := repo.Update(ctx, newTestTask(t, "9", "Ghost"))

	require.Error(t, err)
	assert.ErrorIs(t, err, task.ErrNotFound)
	assert.Equal(t, 0, repo.Count(ctx))
}

func TestInMemoryTaskRepository_Delete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()
	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, repo.Add(ctx, newTestTask(t, id, "Task "+id)))
	}

	require.NoError(t, repo.Delete(ctx, "2"))

	assert.Equal(t, 2, repo.Count(ctx))
	_, ok := repo.Get(ctx, "2")
	assert.False(t, ok)

	all := repo.GetAll(ctx)
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID())
	assert.Equal(t, "3", all[1].ID())
}

func TestInMemoryTaskRepository_Delete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()
	require.NoError(t, repo.Add(ctx, newTestTask(t, "1", "Keep")))

	err := repo.Delete(ctx, "2")

	require.Error(t, err)
	assert.ErrorIs(t, err, task.ErrNotFound)
	assert.Equal(t, 1, repo.Count(ctx))
}

func TestInMemoryTaskRepository_ReAddAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewInMemoryTaskRepository()
	require.NoError(t, repo.Add(ctx, newTestTask(t, "1", "First")))
	require.NoError(t, repo.Delete(ctx, "1"))

	require.NoError(t, repo.Add(ctx, newTestTask(t, "1", "Again")))

	all := repo.GetAll(ctx)
	require.Len(t, all, 1)
	assert.Equal(t, "Again", all[0].Title())
}
