package scheduler

import (
	"math"
	"time"

	"github.com/studyweave/studyweave/internal/contract"
)

// SM-2 spaced repetition, after Wozniak's SuperMemo algorithm.
//
// Quality grades:
//   0 - complete blackout
//   1 - incorrect, remembered on seeing the answer
//   2 - incorrect, answer seemed easy to recall
//   3 - correct with significant difficulty
//   4 - correct after some hesitation
//   5 - perfect recall

const minEasiness = 1.3

// ComputeNextReview advances the SM-2 state by one graded review.
// Quality below 3 resets repetitions and the interval; otherwise the
// interval follows the 1, 6, round(interval × easiness) progression.
func ComputeNextReview(quality, repetitions int, easiness float64, interval int) contract.ReviewResult {
	if quality < 0 {
		quality = 0
	}
	if quality > 5 {
		quality = 5
	}

	q := float64(quality)
	newEasiness := easiness + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if newEasiness < minEasiness {
		newEasiness = minEasiness
	}

	var newRepetitions, newInterval int
	if quality < 3 {
		newRepetitions = 0
		newInterval = 1
	} else {
		newRepetitions = repetitions + 1
		switch newRepetitions {
		case 1:
			newInterval = 1
		case 2:
			newInterval = 6
		default:
			// Ties round to even (6 × 1.75 = 10.5 → 10).
			newInterval = int(math.RoundToEven(float64(interval) * newEasiness))
			if newInterval < 1 {
				newInterval = 1
			}
		}
	}

	return contract.ReviewResult{
		NextInterval: newInterval,
		Repetitions:  newRepetitions,
		Easiness:     round2(newEasiness),
	}
}

// GenerateReviewBlocks projects review dates from startDate up to (not
// including) examDate, assuming a fixed quality grade per review.
// Actual quality tracking happens at review time; this only gives the
// student a schedule to follow. If the projected cadence leaves a gap
// before the exam, a cram session lands on the day before it.
func GenerateReviewBlocks(
	taskID int64,
	examDate, startDate time.Time,
	initialEasiness float64,
	assumedQuality, maxReviews int,
) []contract.ReviewBlock {
	if !startDate.Before(examDate) {
		return []contract.ReviewBlock{}
	}

	blocks := []contract.ReviewBlock{}
	current := startDate
	repetitions := 0
	easiness := initialEasiness
	interval := 1

	for current.Before(examDate) && len(blocks) < maxReviews {
		blocks = append(blocks, contract.ReviewBlock{
			TaskID:           taskID,
			ReviewDate:       current,
			RepetitionNumber: len(blocks),
			ExpectedInterval: interval,
		})

		result := ComputeNextReview(assumedQuality, repetitions, easiness, interval)
		repetitions = result.Repetitions
		easiness = result.Easiness
		interval = result.NextInterval

		current = current.AddDate(0, 0, interval)
	}

	dayBeforeExam := examDate.AddDate(0, 0, -1)
	if len(blocks) > 0 && blocks[len(blocks)-1].ReviewDate.Before(dayBeforeExam) {
		blocks = append(blocks, contract.ReviewBlock{
			TaskID:           taskID,
			ReviewDate:       dayBeforeExam,
			RepetitionNumber: len(blocks),
			ExpectedInterval: 1,
		})
	}

	return blocks
}
