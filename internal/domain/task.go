package domain

import "time"

type Task struct {
	ID       int64
	UserID   string
	CourseID *int64

	Title       string
	Description string
	DueDate     time.Time
	// EstimatedHours is the nominal effort; nil defaults to 1.0 at
	// scheduling time.
	EstimatedHours *float64
	Difficulty     int // 1..5
	Priority       Priority
	Type           TaskType
	FocusLoad      FocusLoad
	Status         TaskStatus

	// Split rules
	Splittable      bool
	MinBlockMinutes int
	MaxBlockMinutes int

	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EffectiveEstimatedHours returns the nominal effort, defaulting to 1.0
// when no estimate was given.
func (t *Task) EffectiveEstimatedHours() float64 {
	if t.EstimatedHours == nil {
		return 1.0
	}
	return *t.EstimatedHours
}

// Complete marks the task completed at the given time.
func (t *Task) Complete(now time.Time) {
	t.Status = TaskCompleted
	t.CompletedAt = &now
	t.UpdatedAt = now
}

// TaskUpdate enumerates the mutable task fields. Nil pointers leave the
// corresponding field untouched.
type TaskUpdate struct {
	Title           *string
	Description     *string
	DueDate         *time.Time
	EstimatedHours  *float64
	Difficulty      *int
	Priority        *Priority
	Type            *TaskType
	FocusLoad       *FocusLoad
	CourseID        *int64
	Splittable      *bool
	MinBlockMinutes *int
	MaxBlockMinutes *int
}

// Apply copies the set fields of the update onto the task.
func (t *Task) Apply(u TaskUpdate, now time.Time) {
	if u.Title != nil {
		t.Title = *u.Title
	}
	if u.Description != nil {
		t.Description = *u.Description
	}
	if u.DueDate != nil {
		t.DueDate = *u.DueDate
	}
	if u.EstimatedHours != nil {
		t.EstimatedHours = u.EstimatedHours
	}
	if u.Difficulty != nil {
		t.Difficulty = *u.Difficulty
	}
	if u.Priority != nil {
		t.Priority = *u.Priority
	}
	if u.Type != nil {
		t.Type = *u.Type
	}
	if u.FocusLoad != nil {
		t.FocusLoad = *u.FocusLoad
	}
	if u.CourseID != nil {
		t.CourseID = u.CourseID
	}
	if u.Splittable != nil {
		t.Splittable = *u.Splittable
	}
	if u.MinBlockMinutes != nil {
		t.MinBlockMinutes = *u.MinBlockMinutes
	}
	if u.MaxBlockMinutes != nil {
		t.MaxBlockMinutes = *u.MaxBlockMinutes
	}
	t.UpdatedAt = now
}
