package domain

import "time"

// ReviewState tracks spaced-repetition progress for one task. One row
// per task; graded reviews advance it, failures reset it.
type ReviewState struct {
	TaskID       int64
	UserID       string
	Repetitions  int
	Easiness     float64
	IntervalDays int
	LastReview   *time.Time
	NextReview   *time.Time
	UpdatedAt    time.Time
}

// NewReviewState returns the initial state for a task that has never
// been reviewed.
func NewReviewState(taskID int64, userID string) *ReviewState {
	return &ReviewState{
		TaskID:       taskID,
		UserID:       userID,
		Repetitions:  0,
		Easiness:     2.5,
		IntervalDays: 1,
	}
}
