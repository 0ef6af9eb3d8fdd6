package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeNextReview_FirstSuccessfulReview(t *testing.T) {
	result := ComputeNextReview(4, 0, 2.5, 1)

	assert.Equal(t, 1, result.NextInterval)
	assert.Equal(t, 1, result.Repetitions)
	assert.Equal(t, 2.5, result.Easiness, "quality 4 leaves easiness unchanged")
}

func TestComputeNextReview_SecondSuccessfulReview(t *testing.T) {
	result := ComputeNextReview(4, 1, 2.5, 1)

	assert.Equal(t, 6, result.NextInterval)
	assert.Equal(t, 2, result.Repetitions)
}

func TestComputeNextReview_LaterIntervalsScaleByEasiness(t *testing.T) {
	result := ComputeNextReview(4, 2, 2.5, 6)

	assert.Equal(t, 15, result.NextInterval)
	assert.Equal(t, 3, result.Repetitions)
}

func TestComputeNextReview_HalfDayIntervalsRoundToEven(t *testing.T) {
	// 6 × 1.75 = 10.5 rounds down to the even 10, not up to 11.
	result := ComputeNextReview(4, 2, 1.75, 6)
	assert.Equal(t, 10, result.NextInterval)

	// 3 × 1.5 = 4.5 rounds to 4.
	result = ComputeNextReview(4, 2, 1.5, 3)
	assert.Equal(t, 4, result.NextInterval)
}

func TestComputeNextReview_LowQualityResets(t *testing.T) {
	for quality := 0; quality < 3; quality++ {
		result := ComputeNextReview(quality, 5, 2.5, 30)
		assert.Equal(t, 0, result.Repetitions, "quality %d", quality)
		assert.Equal(t, 1, result.NextInterval, "quality %d", quality)
	}
}

func TestComputeNextReview_EasinessAdjustments(t *testing.T) {
	assert.Equal(t, 2.6, ComputeNextReview(5, 0, 2.5, 1).Easiness)
	assert.Equal(t, 2.5, ComputeNextReview(4, 0, 2.5, 1).Easiness)
	assert.Equal(t, 2.36, ComputeNextReview(3, 0, 2.5, 1).Easiness)
	assert.Equal(t, 2.18, ComputeNextReview(2, 0, 2.5, 1).Easiness)
}

func TestComputeNextReview_EasinessFloor(t *testing.T) {
	// Repeated blackouts drive easiness down but never below 1.3.
	easiness := 1.35
	for i := 0; i < 5; i++ {
		result := ComputeNextReview(0, 0, easiness, 1)
		easiness = result.Easiness
	}
	assert.Equal(t, 1.3, easiness)
}

func TestComputeNextReview_QualityClamped(t *testing.T) {
	assert.Equal(t, ComputeNextReview(5, 0, 2.5, 1), ComputeNextReview(9, 0, 2.5, 1))
	assert.Equal(t, ComputeNextReview(0, 0, 2.5, 1), ComputeNextReview(-3, 0, 2.5, 1))
}

func TestGenerateReviewBlocks_CadenceAndCramSession(t *testing.T) {
	start := monday
	exam := monday.AddDate(0, 0, 30)

	blocks := GenerateReviewBlocks(42, exam, start, 2.5, 4, 20)

	// Projected cadence at quality 4: day 0, +1, +6, +15, then the next
	// jump overshoots the exam; a cram session fills the gap.
	require.Len(t, blocks, 5)
	wantDays := []int{0, 1, 7, 22, 29}
	for i, b := range blocks {
		assert.Equal(t, int64(42), b.TaskID)
		assert.Equal(t, i, b.RepetitionNumber)
		assert.True(t, b.ReviewDate.Equal(start.AddDate(0, 0, wantDays[i])), "review %d", i)
	}
	cram := blocks[len(blocks)-1]
	assert.True(t, cram.ReviewDate.Equal(exam.AddDate(0, 0, -1)))
	assert.Equal(t, 1, cram.ExpectedInterval)
}

func TestGenerateReviewBlocks_NoCramWhenLastReviewLandsCloseEnough(t *testing.T) {
	start := monday
	exam := monday.AddDate(0, 0, 2)

	blocks := GenerateReviewBlocks(1, exam, start, 2.5, 4, 20)

	require.Len(t, blocks, 2)
	assert.True(t, blocks[1].ReviewDate.Equal(exam.AddDate(0, 0, -1)))
}

func TestGenerateReviewBlocks_StartOnOrAfterExamIsEmpty(t *testing.T) {
	assert.Empty(t, GenerateReviewBlocks(1, monday, monday, 2.5, 4, 20))
	assert.Empty(t, GenerateReviewBlocks(1, monday, monday.AddDate(0, 0, 1), 2.5, 4, 20))
}

func TestGenerateReviewBlocks_MaxReviewsCapsProjection(t *testing.T) {
	exam := monday.AddDate(0, 0, 365)
	blocks := GenerateReviewBlocks(1, exam, monday, 2.5, 4, 3)

	// Three projected reviews plus the cram session before the exam.
	require.Len(t, blocks, 4)
	for i := 0; i < 3; i++ {
		assert.True(t, blocks[i].ReviewDate.Before(exam))
	}
}

func TestGenerateReviewBlocks_LowQualityStaysDaily(t *testing.T) {
	exam := monday.AddDate(0, 0, 5)
	blocks := GenerateReviewBlocks(1, exam, monday, 2.5, 1, 20)

	require.Len(t, blocks, 5)
	for i, b := range blocks {
		assert.True(t, b.ReviewDate.Equal(monday.Add(time.Duration(i)*24*time.Hour)))
	}
}
