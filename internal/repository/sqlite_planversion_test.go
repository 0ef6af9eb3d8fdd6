package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyweave/studyweave/internal/domain"
)

func TestPlanVersionRepo_CreateAndGet(t *testing.T) {
	repo := NewSQLitePlanVersionRepo(newTestDB(t))
	ctx := context.Background()

	start := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)
	v := &domain.PlanVersion{
		UserID:        "u-1",
		VersionNumber: 1,
		Trigger:       domain.TriggerManualReplan,
		Snapshot: []domain.BlockSnapshot{
			{ID: 1, TaskID: 10, Start: start, End: start.Add(time.Hour), IsPinned: true},
		},
		DiffSummary: "Added 1, moved 0, deleted 0 blocks",
	}
	require.NoError(t, repo.Create(ctx, v))
	require.NotZero(t, v.ID)

	got, err := repo.GetByNumber(ctx, "u-1", 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TriggerManualReplan, got.Trigger)
	require.Len(t, got.Snapshot, 1)
	assert.Equal(t, int64(10), got.Snapshot[0].TaskID)
	assert.True(t, got.Snapshot[0].Start.Equal(start))
	assert.True(t, got.Snapshot[0].IsPinned)
}

func TestPlanVersionRepo_GetMissingNumber(t *testing.T) {
	repo := NewSQLitePlanVersionRepo(newTestDB(t))
	_, err := repo.GetByNumber(context.Background(), "u-1", 3)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPlanVersionRepo_ListNewestFirst(t *testing.T) {
	repo := NewSQLitePlanVersionRepo(newTestDB(t))
	ctx := context.Background()

	for n := 1; n <= 3; n++ {
		v := &domain.PlanVersion{UserID: "u-1", VersionNumber: n, Trigger: domain.TriggerNewTask}
		require.NoError(t, repo.Create(ctx, v))
	}

	versions, err := repo.List(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, versions, 3)
	assert.Equal(t, 3, versions[0].VersionNumber)
	assert.Equal(t, 1, versions[2].VersionNumber)
}

func TestPlanVersionRepo_MaxVersionNumber(t *testing.T) {
	repo := NewSQLitePlanVersionRepo(newTestDB(t))
	ctx := context.Background()

	n, err := repo.MaxVersionNumber(ctx, "u-1")
	require.NoError(t, err)
	assert.Zero(t, n, "a user with no versions starts at zero")

	require.NoError(t, repo.Create(ctx, &domain.PlanVersion{UserID: "u-1", VersionNumber: 1, Trigger: domain.TriggerNewTask}))
	require.NoError(t, repo.Create(ctx, &domain.PlanVersion{UserID: "u-1", VersionNumber: 2, Trigger: domain.TriggerNewTask}))
	require.NoError(t, repo.Create(ctx, &domain.PlanVersion{UserID: "u-2", VersionNumber: 9, Trigger: domain.TriggerNewTask}))

	n, err = repo.MaxVersionNumber(ctx, "u-1")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "other users' versions do not count")
}

func TestPlanVersionRepo_EmptySnapshotRoundTrips(t *testing.T) {
	repo := NewSQLitePlanVersionRepo(newTestDB(t))
	ctx := context.Background()

	v := &domain.PlanVersion{UserID: "u-1", VersionNumber: 1, Trigger: domain.TriggerManualReplan}
	require.NoError(t, repo.Create(ctx, v))

	got, err := repo.GetByNumber(ctx, "u-1", 1)
	require.NoError(t, err)
	assert.Empty(t, got.Snapshot)
}
