package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/stretchr/testify/require"
	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/testutil"
)

// monday is a fixed plan start so engine output is reproducible.
var monday = time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)

type env struct {
	tasks        repository.TaskRepo
	courses      repository.CourseRepo
	blocks       repository.BlockRepo
	versions     repository.PlanVersionRepo
	availability repository.AvailabilityRepo
	profiles     repository.EnergyProfileRepo
	reviews      repository.ReviewStateRepo
	uow          db.UnitOfWork
	previews     *PreviewStore
}

func setupEnv(t *testing.T) *env {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &env{
		tasks:        repository.NewSQLiteTaskRepo(database),
		courses:      repository.NewSQLiteCourseRepo(database),
		blocks:       repository.NewSQLiteBlockRepo(database),
		versions:     repository.NewSQLitePlanVersionRepo(database),
		availability: repository.NewSQLiteAvailabilityRepo(database),
		profiles:     repository.NewSQLiteEnergyProfileRepo(database),
		reviews:      repository.NewSQLiteReviewStateRepo(database),
		uow:          testutil.NewTestUoW(database),
		previews:     NewPreviewStore(0),
	}
}

// newScheduleService wires a schedule service with a frozen clock.
func (e *env) newScheduleService(t *testing.T) ScheduleService {
	t.Helper()
	svc := NewScheduleService(e.tasks, e.blocks, e.availability, e.uow, e.previews, zap.NewNop())
	svc.(*scheduleService).now = func() time.Time { return monday }
	return svc
}

// seedUser creates a user with an open 08:00-22:00 grid and one active
// task due Friday evening.
func (e *env) seedUser(t *testing.T, userID string) *domain.Task {
	t.Helper()
	ctx := context.Background()

	rules := domain.DefaultSchedulingRules()
	require.NoError(t, e.availability.Upsert(ctx, userID, testutil.OpenWeekGrid(8, 22), &rules))

	task := testutil.NewTestTask(userID, "Essay draft", monday.AddDate(0, 0, 4))
	require.NoError(t, e.tasks.Create(ctx, task))
	return task
}
