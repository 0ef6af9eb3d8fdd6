package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/scheduler"
)

const (
	defaultAssumedQuality = 4
	defaultMaxReviews     = 20
)

type reviewService struct {
	tasks   repository.TaskRepo
	reviews repository.ReviewStateRepo

	now func() time.Time
}

func NewReviewService(tasks repository.TaskRepo, reviews repository.ReviewStateRepo) ReviewService {
	return &reviewService{
		tasks:   tasks,
		reviews: reviews,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *reviewService) RecordReview(ctx context.Context, userID string, taskID int64, quality int) (*domain.ReviewState, error) {
	if quality < 0 || quality > 5 {
		return nil, fmt.Errorf("quality must be 0-5, got %d", quality)
	}
	if _, err := s.tasks.GetByID(ctx, userID, taskID); err != nil {
		return nil, err
	}

	state, err := s.reviews.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	result := scheduler.ComputeNextReview(quality, state.Repetitions, state.Easiness, state.IntervalDays)

	now := s.now()
	next := now.AddDate(0, 0, result.NextInterval)
	state.Repetitions = result.Repetitions
	state.Easiness = result.Easiness
	state.IntervalDays = result.NextInterval
	state.LastReview = &now
	state.NextReview = &next

	if err := s.reviews.Upsert(ctx, state); err != nil {
		return nil, err
	}
	return state, nil
}

// PlanReviews projects review sessions for an exam task from today up
// to its due date, resuming from the task's current review state.
func (s *reviewService) PlanReviews(ctx context.Context, userID string, taskID int64) ([]contract.ReviewBlock, error) {
	task, err := s.tasks.GetByID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	state, err := s.reviews.Get(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}

	start := s.now().Truncate(24 * time.Hour)
	if !start.Before(task.DueDate) {
		return nil, fmt.Errorf("task %d is already due", taskID)
	}

	return scheduler.GenerateReviewBlocks(taskID, task.DueDate, start, state.Easiness, defaultAssumedQuality, defaultMaxReviews), nil
}
