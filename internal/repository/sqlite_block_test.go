package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyweave/studyweave/internal/domain"
)

func mustCreateBlock(t *testing.T, repo *SQLiteBlockRepo, userID string, taskID int64, start time.Time, pinned bool) *domain.StudyBlock {
	t.Helper()
	b := &domain.StudyBlock{
		UserID:   userID,
		TaskID:   taskID,
		Start:    start,
		End:      start.Add(time.Hour),
		IsPinned: pinned,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBlockRepo_CreateAndList(t *testing.T) {
	database := newTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	blocks := NewSQLiteBlockRepo(database)
	ctx := context.Background()

	task := mustCreateTask(t, tasks, "u-1", "Essay", due)
	start := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	mustCreateBlock(t, blocks, "u-1", task.ID, start.Add(2*time.Hour), false)
	mustCreateBlock(t, blocks, "u-1", task.ID, start, true)

	got, err := blocks.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[0].Start.Equal(start), "list is ordered by start time")
	assert.True(t, got[0].IsPinned)
	assert.Equal(t, 60, got[0].DurationMinutes())
}

func TestBlockRepo_ListPinned(t *testing.T) {
	database := newTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	blocks := NewSQLiteBlockRepo(database)
	ctx := context.Background()

	task := mustCreateTask(t, tasks, "u-1", "Essay", due)
	start := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	pinned := mustCreateBlock(t, blocks, "u-1", task.ID, start, true)
	mustCreateBlock(t, blocks, "u-1", task.ID, start.Add(2*time.Hour), false)

	got, err := blocks.ListPinned(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pinned.ID, got[0].ID)
}

func TestBlockRepo_DeleteUnpinnedKeepsPinned(t *testing.T) {
	database := newTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	blocks := NewSQLiteBlockRepo(database)
	ctx := context.Background()

	task := mustCreateTask(t, tasks, "u-1", "Essay", due)
	start := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	pinned := mustCreateBlock(t, blocks, "u-1", task.ID, start, true)
	mustCreateBlock(t, blocks, "u-1", task.ID, start.Add(2*time.Hour), false)

	require.NoError(t, blocks.DeleteUnpinned(ctx, "u-1"))

	got, err := blocks.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, pinned.ID, got[0].ID)
}

func TestBlockRepo_DeleteAll(t *testing.T) {
	database := newTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	blocks := NewSQLiteBlockRepo(database)
	ctx := context.Background()

	task := mustCreateTask(t, tasks, "u-1", "Essay", due)
	start := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	mustCreateBlock(t, blocks, "u-1", task.ID, start, true)

	require.NoError(t, blocks.DeleteAll(ctx, "u-1"))

	got, err := blocks.List(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, got, "DeleteAll removes pinned blocks too")
}

func TestBlockRepo_UpdatePin(t *testing.T) {
	database := newTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	blocks := NewSQLiteBlockRepo(database)
	ctx := context.Background()

	task := mustCreateTask(t, tasks, "u-1", "Essay", due)
	start := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	b := mustCreateBlock(t, blocks, "u-1", task.ID, start, false)

	b.Start = start.Add(3 * time.Hour)
	b.End = b.Start.Add(time.Hour)
	b.IsPinned = true
	require.NoError(t, blocks.Update(ctx, b))

	got, err := blocks.GetByID(ctx, "u-1", b.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPinned)
	assert.True(t, got.Start.Equal(start.Add(3*time.Hour)))
}

func TestBlockRepo_CascadeOnTaskDelete(t *testing.T) {
	database := newTestDB(t)
	tasks := NewSQLiteTaskRepo(database)
	blocks := NewSQLiteBlockRepo(database)
	ctx := context.Background()

	task := mustCreateTask(t, tasks, "u-1", "Essay", due)
	start := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	mustCreateBlock(t, blocks, "u-1", task.ID, start, false)

	require.NoError(t, tasks.Delete(ctx, "u-1", task.ID))

	got, err := blocks.List(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, got, "blocks cascade with their task")
}
