package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/studyweave/studyweave/internal/domain"
)

// NewTestUserID returns a fresh user id.
func NewTestUserID() string {
	return "user-" + uuid.New().String()
}

// Task options
type TaskOption func(*domain.Task)

func WithEstimatedHours(h float64) TaskOption {
	return func(t *domain.Task) {
		t.EstimatedHours = &h
	}
}

func WithDifficulty(d int) TaskOption {
	return func(t *domain.Task) {
		t.Difficulty = d
	}
}

func WithPriority(p domain.Priority) TaskOption {
	return func(t *domain.Task) {
		t.Priority = p
	}
}

func WithFocusLoad(f domain.FocusLoad) TaskOption {
	return func(t *domain.Task) {
		t.FocusLoad = f
	}
}

func WithTaskType(tt domain.TaskType) TaskOption {
	return func(t *domain.Task) {
		t.Type = tt
	}
}

func WithCourseID(id int64) TaskOption {
	return func(t *domain.Task) {
		t.CourseID = &id
	}
}

func WithNotSplittable() TaskOption {
	return func(t *domain.Task) {
		t.Splittable = false
	}
}

func WithBlockBounds(minMinutes, maxMinutes int) TaskOption {
	return func(t *domain.Task) {
		t.MinBlockMinutes = minMinutes
		t.MaxBlockMinutes = maxMinutes
	}
}

// NewTestTask builds an unsaved active task with sensible defaults.
func NewTestTask(userID, title string, due time.Time, opts ...TaskOption) *domain.Task {
	est := 2.0
	t := &domain.Task{
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
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewTestBlock builds an unsaved one-hour study block.
func NewTestBlock(userID string, taskID int64, start time.Time) *domain.StudyBlock {
	return &domain.StudyBlock{
		UserID: userID,
		TaskID: taskID,
		Start:  start,
		End:    start.Add(time.Hour),
	}
}

// OpenWeekGrid returns a grid available startHour-endHour every day.
func OpenWeekGrid(startHour, endHour int) *domain.WeekGrid {
	grid := &domain.WeekGrid{}
	for day := 0; day < 7; day++ {
		grid.SetRange(day, startHour, endHour, true)
	}
	return grid
}
