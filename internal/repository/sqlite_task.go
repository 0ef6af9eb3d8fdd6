package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
)

// taskColumns is the canonical SELECT column list for tasks.
const taskColumns = `id, user_id, course_id, title, description, due_date,
		estimated_hours, difficulty, priority, type, focus_load, status,
		splittable, min_block_minutes, max_block_minutes,
		completed_at, created_at, updated_at`

// SQLiteTaskRepo implements TaskRepo on a SQLite connection or
// transaction.
type SQLiteTaskRepo struct {
	db db.DBTX
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db db.DBTX) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	now := nowUTC()
	t.CreatedAt = now
	t.UpdatedAt = now

	query := `INSERT INTO tasks (user_id, course_id, title, description, due_date,
		estimated_hours, difficulty, priority, type, focus_load, status,
		splittable, min_block_minutes, max_block_minutes,
		completed_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, query,
		t.UserID,
		nullableInt64ToValue(t.CourseID),
		t.Title,
		t.Description,
		formatTime(t.DueDate),
		nullableFloatToValue(t.EstimatedHours),
		t.Difficulty,
		string(t.Priority),
		string(t.Type),
		string(t.FocusLoad),
		string(t.Status),
		boolToInt(t.Splittable),
		t.MinBlockMinutes,
		t.MaxBlockMinutes,
		nullableTimeToString(t.CompletedAt),
		formatTime(t.CreatedAt),
		formatTime(t.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	t.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading task id: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, userID string, id int64) (*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ? AND user_id = ?`
	row := r.db.QueryRowContext(ctx, query, id, userID)
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("task %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return t, nil
}

// List returns the user's tasks ordered by due date. With no statuses
// given every task is returned.
func (r *SQLiteTaskRepo) List(ctx context.Context, userID string, statuses ...domain.TaskStatus) ([]*domain.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE user_id = ?`
	args := []any{userID}
	if len(statuses) > 0 {
		placeholders := make([]string, len(statuses))
		for i, s := range statuses {
			placeholders[i] = "?"
			args = append(args, string(s))
		}
		query += ` AND status IN (` + strings.Join(placeholders, ", ") + `)`
	}
	query += ` ORDER BY due_date, id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *SQLiteTaskRepo) ListActive(ctx context.Context, userID string) ([]*domain.Task, error) {
	return r.List(ctx, userID, domain.TaskActive)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	t.UpdatedAt = nowUTC()

	query := `UPDATE tasks SET course_id = ?, title = ?, description = ?, due_date = ?,
		estimated_hours = ?, difficulty = ?, priority = ?, type = ?, focus_load = ?,
		status = ?, splittable = ?, min_block_minutes = ?, max_block_minutes = ?,
		completed_at = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query,
		nullableInt64ToValue(t.CourseID),
		t.Title,
		t.Description,
		formatTime(t.DueDate),
		nullableFloatToValue(t.EstimatedHours),
		t.Difficulty,
		string(t.Priority),
		string(t.Type),
		string(t.FocusLoad),
		string(t.Status),
		boolToInt(t.Splittable),
		t.MinBlockMinutes,
		t.MaxBlockMinutes,
		nullableTimeToString(t.CompletedAt),
		formatTime(t.UpdatedAt),
		t.ID,
		t.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	return requireRowAffected(res, "task", t.ID)
}

func (r *SQLiteTaskRepo) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}
	return requireRowAffected(res, "task", id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*domain.Task, error) {
	var t domain.Task
	var courseID sql.NullInt64
	var estimatedHours sql.NullFloat64
	var priorityStr, typeStr, focusStr, statusStr string
	var splittableInt int
	var dueStr, createdStr, updatedStr string
	var completedStr sql.NullString

	err := row.Scan(
		&t.ID, &t.UserID, &courseID, &t.Title, &t.Description, &dueStr,
		&estimatedHours, &t.Difficulty, &priorityStr, &typeStr, &focusStr, &statusStr,
		&splittableInt, &t.MinBlockMinutes, &t.MaxBlockMinutes,
		&completedStr, &createdStr, &updatedStr,
	)
	if err != nil {
		return nil, err
	}

	if courseID.Valid {
		t.CourseID = &courseID.Int64
	}
	if estimatedHours.Valid {
		t.EstimatedHours = &estimatedHours.Float64
	}
	t.Priority = domain.Priority(priorityStr)
	t.Type = domain.TaskType(typeStr)
	t.FocusLoad = domain.FocusLoad(focusStr)
	t.Status = domain.TaskStatus(statusStr)
	t.Splittable = intToBool(splittableInt)
	t.CompletedAt = parseNullableTime(completedStr)

	if t.DueDate, err = parseTime(dueStr, "due_date"); err != nil {
		return nil, err
	}
	if t.CreatedAt, err = parseTime(createdStr, "created_at"); err != nil {
		return nil, err
	}
	if t.UpdatedAt, err = parseTime(updatedStr, "updated_at"); err != nil {
		return nil, err
	}
	return &t, nil
}

func scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

// requireRowAffected maps a zero-row write to ErrNotFound.
func requireRowAffected(res sql.Result, entity string, id int64) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %d: %w", entity, id, ErrNotFound)
	}
	return nil
}
