package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
)

// SQLiteReviewStateRepo implements ReviewStateRepo on a SQLite
// connection or transaction.
type SQLiteReviewStateRepo struct {
	db db.DBTX
}

// NewSQLiteReviewStateRepo creates a new SQLiteReviewStateRepo.
func NewSQLiteReviewStateRepo(db db.DBTX) *SQLiteReviewStateRepo {
	return &SQLiteReviewStateRepo{db: db}
}

// Get returns the review state for a task, or the initial state if the
// task has never been reviewed.
func (r *SQLiteReviewStateRepo) Get(ctx context.Context, userID string, taskID int64) (*domain.ReviewState, error) {
	var s domain.ReviewState
	var lastStr, nextStr sql.NullString
	var updatedStr string

	err := r.db.QueryRowContext(ctx,
		`SELECT task_id, user_id, repetitions, easiness, interval, last_review, next_review, updated_at
		FROM review_states WHERE task_id = ? AND user_id = ?`, taskID, userID).
		Scan(&s.TaskID, &s.UserID, &s.Repetitions, &s.Easiness, &s.IntervalDays, &lastStr, &nextStr, &updatedStr)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.NewReviewState(taskID, userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading review state: %w", err)
	}

	s.LastReview = parseNullableTime(lastStr)
	s.NextReview = parseNullableTime(nextStr)
	if s.UpdatedAt, err = parseTime(updatedStr, "updated_at"); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteReviewStateRepo) Upsert(ctx context.Context, s *domain.ReviewState) error {
	s.UpdatedAt = nowUTC()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO review_states (task_id, user_id, repetitions, easiness, interval, last_review, next_review, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(task_id) DO UPDATE
		SET repetitions = excluded.repetitions,
			easiness = excluded.easiness,
			interval = excluded.interval,
			last_review = excluded.last_review,
			next_review = excluded.next_review,
			updated_at = excluded.updated_at`,
		s.TaskID, s.UserID, s.Repetitions, s.Easiness, s.IntervalDays,
		nullableTimeToString(s.LastReview), nullableTimeToString(s.NextReview), formatTime(s.UpdatedAt))
	if err != nil {
		return fmt.Errorf("upserting review state: %w", err)
	}
	return nil
}
