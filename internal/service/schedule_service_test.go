package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/testutil"
)

func TestScheduleService_PreviewDoesNotPersist(t *testing.T) {
	e := setupEnv(t)
	svc := e.newScheduleService(t)
	ctx := context.Background()
	e.seedUser(t, "u-1")

	preview, err := svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)
	require.NotEmpty(t, preview.Blocks)
	assert.Equal(t, len(preview.Blocks), preview.Diff.Added)

	persisted, err := svc.ListBlocks(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, persisted, "preview must leave the stored plan untouched")
}

func TestScheduleService_ConfirmPersistsPreview(t *testing.T) {
	e := setupEnv(t)
	svc := e.newScheduleService(t)
	ctx := context.Background()
	e.seedUser(t, "u-1")

	preview, err := svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)

	result, err := svc.ConfirmPlan(ctx, "u-1", domain.TriggerManualReplan)
	require.NoError(t, err)
	assert.Equal(t, 1, result.VersionNumber)
	assert.Equal(t, len(preview.Blocks), result.BlockCount)

	persisted, err := svc.ListBlocks(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, persisted, len(preview.Blocks))
	for _, b := range persisted {
		require.NotNil(t, b.PlanVersionID)
	}

	versions, err := e.versions.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, versions, 1)
	assert.Equal(t, domain.TriggerManualReplan, versions[0].Trigger)
	assert.Empty(t, versions[0].Snapshot, "first version snapshots the empty pre-confirm plan")
}

func TestScheduleService_ConfirmWithoutPreview(t *testing.T) {
	e := setupEnv(t)
	svc := e.newScheduleService(t)

	_, err := svc.ConfirmPlan(context.Background(), "u-1", "")
	assert.ErrorIs(t, err, ErrNoPendingPreview)
}

func TestScheduleService_ConfirmConsumesPreview(t *testing.T) {
	e := setupEnv(t)
	svc := e.newScheduleService(t)
	ctx := context.Background()
	e.seedUser(t, "u-1")

	_, err := svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)
	_, err = svc.ConfirmPlan(ctx, "u-1", "")
	require.NoError(t, err)

	_, err = svc.ConfirmPlan(ctx, "u-1", "")
	assert.ErrorIs(t, err, ErrNoPendingPreview)
}

func TestScheduleService_ReplanPreservesPinnedBlocks(t *testing.T) {
	e := setupEnv(t)
	svc := e.newScheduleService(t)
	ctx := context.Background()
	task := e.seedUser(t, "u-1")

	_, err := svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)
	_, err = svc.ConfirmPlan(ctx, "u-1", "")
	require.NoError(t, err)

	blocks, err := svc.ListBlocks(ctx, "u-1")
	require.NoError(t, err)
	require.NotEmpty(t, blocks)

	moved, err := svc.MoveBlock(ctx, "u-1", blocks[0].ID, monday.Add(20*time.Hour))
	require.NoError(t, err)
	assert.True(t, moved.IsPinned)

	_, err = svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)
	_, err = svc.ConfirmPlan(ctx, "u-1", "")
	require.NoError(t, err)

	after, err := svc.ListBlocks(ctx, "u-1")
	require.NoError(t, err)

	found := false
	for _, b := range after {
		if b.ID == moved.ID {
			found = true
			assert.True(t, b.Start.Equal(moved.Start), "pinned block keeps its manual position")
			assert.Equal(t, task.ID, b.TaskID)
		}
	}
	assert.True(t, found, "pinned block survives the replan")
}

func TestScheduleService_MoveBlockCreatesVersion(t *testing.T) {
	e := setupEnv(t)
	svc := e.newScheduleService(t)
	ctx := context.Background()
	e.seedUser(t, "u-1")

	_, err := svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)
	_, err = svc.ConfirmPlan(ctx, "u-1", "")
	require.NoError(t, err)

	blocks, err := svc.ListBlocks(ctx, "u-1")
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	duration := blocks[0].End.Sub(blocks[0].Start)

	newStart := monday.Add(19 * time.Hour)
	moved, err := svc.MoveBlock(ctx, "u-1", blocks[0].ID, newStart)
	require.NoError(t, err)
	assert.True(t, moved.End.Equal(newStart.Add(duration)), "duration is preserved")

	versions, err := e.versions.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, versions, 2)
	assert.Equal(t, domain.TriggerDragMove, versions[0].Trigger)
}

func TestScheduleService_MoveBlockUnknownID(t *testing.T) {
	e := setupEnv(t)
	svc := e.newScheduleService(t)
	e.seedUser(t, "u-1")

	_, err := svc.MoveBlock(context.Background(), "u-1", 42, monday.Add(10*time.Hour))
	require.Error(t, err)
}

func TestScheduleService_NewPreviewReplacesOld(t *testing.T) {
	e := setupEnv(t)
	svc := e.newScheduleService(t)
	ctx := context.Background()
	task := e.seedUser(t, "u-1")

	_, err := svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)

	// Shrink the task so the second preview differs.
	est := 0.5
	_, err = NewTaskService(e.tasks, e.courses).Update(ctx, "u-1", task.ID, domain.TaskUpdate{EstimatedHours: &est})
	require.NoError(t, err)

	second, err := svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)

	result, err := svc.ConfirmPlan(ctx, "u-1", "")
	require.NoError(t, err)
	assert.Equal(t, len(second.Blocks), result.BlockCount, "confirm applies the latest preview")
}

func TestPreviewStore_Expiry(t *testing.T) {
	store := NewPreviewStore(time.Minute)
	current := monday
	store.now = func() time.Time { return current }

	store.Put("u-1", &PlanPreview{})
	_, ok := store.Get("u-1")
	assert.True(t, ok)

	current = monday.Add(2 * time.Minute)
	_, ok = store.Get("u-1")
	assert.False(t, ok, "preview expires after its TTL")
}

func TestPreviewStore_PerUserIsolation(t *testing.T) {
	store := NewPreviewStore(time.Minute)
	store.Put("u-1", &PlanPreview{})

	_, ok := store.Get("u-2")
	assert.False(t, ok)

	store.Delete("u-1")
	_, ok = store.Get("u-1")
	assert.False(t, ok)
}

func TestScheduleService_ConfirmRollsBackOnWriteFailure(t *testing.T) {
	database := testutil.NewTestDB(t)
	tasks := repository.NewSQLiteTaskRepo(database)
	blocks := repository.NewSQLiteBlockRepo(database)
	versions := repository.NewSQLitePlanVersionRepo(database)
	availability := repository.NewSQLiteAvailabilityRepo(database)

	failing := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: errors.New("disk full")}
	svc := NewScheduleService(tasks, blocks, availability, failing, NewPreviewStore(0), zap.NewNop())
	svc.(*scheduleService).now = func() time.Time { return monday }

	ctx := context.Background()
	rules := domain.DefaultSchedulingRules()
	require.NoError(t, availability.Upsert(ctx, "u-1", testutil.OpenWeekGrid(8, 22), &rules))
	task := testutil.NewTestTask("u-1", "Essay draft", monday.AddDate(0, 0, 4))
	require.NoError(t, tasks.Create(ctx, task))

	_, err := svc.GeneratePreview(ctx, "u-1")
	require.NoError(t, err)

	_, err = svc.ConfirmPlan(ctx, "u-1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")

	// The failed confirm must leave no partial state behind.
	persisted, err := blocks.List(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, persisted)

	history, err := versions.List(ctx, "u-1")
	require.NoError(t, err)
	assert.Empty(t, history)
}
