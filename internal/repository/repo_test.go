package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func mustCreateTask(t *testing.T, repo *SQLiteTaskRepo, userID, title string, due time.Time) *domain.Task {
	t.Helper()
	est := 2.0
	task := &domain.Task{
		UserID:          userID,
		Title:           title,
		DueDate:         due,
		EstimatedHours:  &est,
		Difficulty:      3,
		Priority:        domain.PriorityMedium,
		Type:            domain.TypeAssignment,
		FocusLoad:       domain.FocusMedium,
		Status:          domain.TaskActive,
		Splittable:      true,
		MinBlockMinutes: 30,
		MaxBlockMinutes: 120,
	}
	require.NoError(t, repo.Create(context.Background(), task))
	return task
}
