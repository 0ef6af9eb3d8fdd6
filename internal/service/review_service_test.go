package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/testutil"
)

func newReviewService(t *testing.T, e *env) ReviewService {
	t.Helper()
	svc := NewReviewService(e.tasks, e.reviews)
	svc.(*reviewService).now = func() time.Time { return monday }
	return svc
}

func TestReviewService_RecordReviewProgression(t *testing.T) {
	e := setupEnv(t)
	svc := newReviewService(t, e)
	ctx := context.Background()

	task := testutil.NewTestTask("u-1", "Flashcards", monday.AddDate(0, 0, 60), testutil.WithTaskType(domain.TypeExam))
	require.NoError(t, e.tasks.Create(ctx, task))

	first, err := svc.RecordReview(ctx, "u-1", task.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Repetitions)
	assert.Equal(t, 1, first.IntervalDays)
	require.NotNil(t, first.NextReview)
	assert.True(t, first.NextReview.Equal(monday.AddDate(0, 0, 1)))

	second, err := svc.RecordReview(ctx, "u-1", task.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Repetitions)
	assert.Equal(t, 6, second.IntervalDays)

	third, err := svc.RecordReview(ctx, "u-1", task.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 3, third.Repetitions)
	assert.Greater(t, third.IntervalDays, 6)
}

func TestReviewService_FailedReviewResets(t *testing.T) {
	e := setupEnv(t)
	svc := newReviewService(t, e)
	ctx := context.Background()

	task := testutil.NewTestTask("u-1", "Flashcards", monday.AddDate(0, 0, 60))
	require.NoError(t, e.tasks.Create(ctx, task))

	for i := 0; i < 3; i++ {
		_, err := svc.RecordReview(ctx, "u-1", task.ID, 4)
		require.NoError(t, err)
	}

	reset, err := svc.RecordReview(ctx, "u-1", task.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, reset.Repetitions)
	assert.Equal(t, 1, reset.IntervalDays)
}

func TestReviewService_RecordReviewValidation(t *testing.T) {
	e := setupEnv(t)
	svc := newReviewService(t, e)
	ctx := context.Background()

	task := testutil.NewTestTask("u-1", "Flashcards", monday.AddDate(0, 0, 60))
	require.NoError(t, e.tasks.Create(ctx, task))

	_, err := svc.RecordReview(ctx, "u-1", task.ID, 6)
	assert.ErrorContains(t, err, "quality")

	_, err = svc.RecordReview(ctx, "u-1", 999, 4)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestReviewService_PlanReviewsEndsBeforeExam(t *testing.T) {
	e := setupEnv(t)
	svc := newReviewService(t, e)
	ctx := context.Background()

	exam := monday.AddDate(0, 0, 21)
	task := testutil.NewTestTask("u-1", "Final exam", exam, testutil.WithTaskType(domain.TypeExam))
	require.NoError(t, e.tasks.Create(ctx, task))

	blocks, err := svc.PlanReviews(ctx, "u-1", task.ID)
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	for _, b := range blocks {
		assert.True(t, b.ReviewDate.Before(exam))
	}
	last := blocks[len(blocks)-1]
	assert.True(t, last.ReviewDate.Equal(exam.AddDate(0, 0, -1)), "cram session lands the day before the exam")
}

func TestReviewService_PlanReviewsPastDue(t *testing.T) {
	e := setupEnv(t)
	svc := newReviewService(t, e)
	ctx := context.Background()

	task := testutil.NewTestTask("u-1", "Old exam", monday.AddDate(0, 0, -1))
	require.NoError(t, e.tasks.Create(ctx, task))

	_, err := svc.PlanReviews(ctx, "u-1", task.ID)
	assert.ErrorContains(t, err, "already due")
}
