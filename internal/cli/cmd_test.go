package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/service"
	"github.com/studyweave/studyweave/internal/testutil"
	"go.uber.org/zap"
)

// testApp wires a full App backed by an in-memory DB for CLI integration tests.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	courseRepo := repository.NewSQLiteCourseRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	blockRepo := repository.NewSQLiteBlockRepo(database)
	versionRepo := repository.NewSQLitePlanVersionRepo(database)
	availabilityRepo := repository.NewSQLiteAvailabilityRepo(database)
	energyRepo := repository.NewSQLiteEnergyProfileRepo(database)
	reviewRepo := repository.NewSQLiteReviewStateRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	previews := service.NewPreviewStore(0)
	logger := zap.NewNop()

	return &App{
		Courses:      service.NewCourseService(courseRepo),
		Tasks:        service.NewTaskService(taskRepo, courseRepo),
		Availability: service.NewAvailabilityService(availabilityRepo),
		Schedule:     service.NewScheduleService(taskRepo, blockRepo, availabilityRepo, uow, previews, logger),
		Versions:     service.NewVersionService(versionRepo, uow, logger),
		WhatIf:       service.NewWhatIfService(taskRepo, blockRepo, availabilityRepo),
		FreeTime:     service.NewFreeTimeService(availabilityRepo),
		Reviews:      service.NewReviewService(taskRepo, reviewRepo),
		Energy:       service.NewEnergyService(taskRepo, energyRepo),

		DefaultUser:   "cli-test-user",
		IsInteractive: func() bool { return false },
	}
}

// seedSchedulableUser gives the default user an open grid and one task.
func seedSchedulableUser(t *testing.T, app *App) int64 {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, app.Availability.SetGrid(ctx, app.DefaultUser, testutil.OpenWeekGrid(8, 22)))

	task := testutil.NewTestTask(app.DefaultUser, "Essay draft", time.Now().UTC().AddDate(0, 0, 5))
	require.NoError(t, app.Tasks.Create(ctx, task))
	return task.ID
}

// executeCmd runs a cobra command and captures cobra's own output.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

// --- root command ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app)
	require.NoError(t, err)
	assert.Contains(t, output, "studyweave")
}

// --- task commands ---

func TestTaskAddCmd_CreatesTask(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add",
		"--title", "Read chapter 4",
		"--due", "2026-09-15",
		"--priority", "high",
		"--est", "2.5")
	require.NoError(t, err)

	tasks, err := app.Tasks.List(context.Background(), app.DefaultUser)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Read chapter 4", tasks[0].Title)
}

func TestTaskAddCmd_RequiresTitleWithoutTerminal(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "--due", "2026-09-15")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "--title")
}

func TestTaskAddCmd_InvalidDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "add", "--title", "X", "--due", "next tuesday")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid date")
}

func TestTaskDoneCmd(t *testing.T) {
	app := testApp(t)
	taskID := seedSchedulableUser(t, app)

	_, err := executeCmd(t, app, "task", "done", "1")
	require.NoError(t, err)

	task, err := app.Tasks.GetByID(context.Background(), app.DefaultUser, taskID)
	require.NoError(t, err)
	assert.NotNil(t, task.CompletedAt)
}

func TestTaskShowCmd_UnknownID(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "show", "42")
	assert.Error(t, err)
}

func TestTaskListCmd_EmptyDB(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "task", "list")
	require.NoError(t, err)
}

// --- user scoping via the persistent flag ---

func TestUserFlag_ScopesCommands(t *testing.T) {
	app := testApp(t)
	seedSchedulableUser(t, app)

	_, err := executeCmd(t, app, "--user", "someone-else", "task", "show", "1")
	assert.Error(t, err)
}

// --- grid and rules ---

func TestGridSetCmd_InvalidDay(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "grid", "set", "--day", "someday", "--from", "8", "--to", "12")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown day")
}

func TestGridSetCmd_AcceptsDayNames(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "grid", "set", "--day", "wed", "--from", "8", "--to", "12")
	require.NoError(t, err)

	grid, _, err := app.Availability.Get(context.Background(), app.DefaultUser)
	require.NoError(t, err)
	assert.True(t, grid.Days[2][8*4])
	assert.False(t, grid.Days[2][12*4])
}

func TestRulesSetCmd_KeepsUnsetFields(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "rules", "set", "--daily-max", "6")
	require.NoError(t, err)

	_, rules, err := app.Availability.Get(context.Background(), app.DefaultUser)
	require.NoError(t, err)
	assert.Equal(t, 6.0, rules.DailyMaxHours)
	assert.Equal(t, 90, rules.BreakAfterMinutes)
}

// --- plan commands ---

func TestPlanGenerateThenConfirm(t *testing.T) {
	app := testApp(t)
	seedSchedulableUser(t, app)

	_, err := executeCmd(t, app, "plan", "generate")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "confirm")
	require.NoError(t, err)

	blocks, err := app.Schedule.ListBlocks(context.Background(), app.DefaultUser)
	require.NoError(t, err)
	assert.NotEmpty(t, blocks)
}

func TestPlanConfirmCmd_WithoutPreview(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "confirm")
	assert.Error(t, err)
}

func TestPlanShowCmd_EmptyPlan(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "show")
	require.NoError(t, err)
}

func TestPlanShowCmd_WithEnergy(t *testing.T) {
	app := testApp(t)
	seedSchedulableUser(t, app)

	_, err := executeCmd(t, app, "plan", "generate")
	require.NoError(t, err)
	_, err = executeCmd(t, app, "plan", "confirm")
	require.NoError(t, err)

	_, err = executeCmd(t, app, "plan", "show", "--energy")
	require.NoError(t, err)
}

func TestPlanRollbackCmd_UnknownVersion(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "plan", "rollback", "9")
	assert.Error(t, err)
}

// --- what-if commands ---

func TestWhatIfRemoveHoursCmd(t *testing.T) {
	app := testApp(t)
	seedSchedulableUser(t, app)

	_, err := executeCmd(t, app, "whatif", "remove-hours", "--by", "2")
	require.NoError(t, err)
}

func TestWhatIfChangeDeadlineCmd_MissingDate(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "whatif", "change-deadline", "1")
	assert.Error(t, err)
}

// --- freetime ---

func TestFreeTimeCmd_NeedsTwoUsers(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "freetime", "--users", "alice")
	assert.Error(t, err)
}

// --- review commands ---

func TestReviewRecordCmd(t *testing.T) {
	app := testApp(t)
	seedSchedulableUser(t, app)

	_, err := executeCmd(t, app, "review", "record", "1", "--quality", "4")
	require.NoError(t, err)
}

func TestReviewRecordCmd_QualityOutOfRange(t *testing.T) {
	app := testApp(t)
	seedSchedulableUser(t, app)

	_, err := executeCmd(t, app, "review", "record", "1", "--quality", "7")
	assert.Error(t, err)
}

// --- energy commands ---

func TestEnergySetCmd_Preset(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "energy", "set", "--type", "night_owl")
	require.NoError(t, err)

	profile, err := app.Energy.GetProfile(context.Background(), app.DefaultUser)
	require.NoError(t, err)
	assert.Equal(t, "night_owl", string(profile.Type))
}

func TestEnergySetCmd_CustomNeedsScores(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "energy", "set", "--type", "custom", "--scores", "0.5,0.5")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "24")
}
