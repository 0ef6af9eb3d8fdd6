package domain

import "time"

// StudyBlock is a persisted allocation of time to a task. Blocks are
// produced by the scheduling engine and replaced wholesale on each
// confirmed replan; pinned blocks survive replans unchanged.
type StudyBlock struct {
	ID            int64
	UserID        string
	TaskID        int64
	PlanVersionID *int64

	Start      time.Time
	End        time.Time
	BlockIndex int
	IsPinned   bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the block length in whole minutes.
func (b *StudyBlock) DurationMinutes() int {
	return int(b.End.Sub(b.Start).Minutes())
}
