package contract

import "time"

// ReviewResult is the output of a single SM-2 computation step.
type ReviewResult struct {
	NextInterval int     `json:"next_interval"` // days until next review
	Repetitions  int     `json:"repetitions"`
	Easiness     float64 `json:"easiness"` // floored at 1.3
}

// ReviewBlock is a projected review date for a task.
type ReviewBlock struct {
	TaskID           int64     `json:"task_id"`
	ReviewDate       time.Time `json:"review_date"`
	RepetitionNumber int       `json:"repetition_number"`
	ExpectedInterval int       `json:"expected_interval"`
}
