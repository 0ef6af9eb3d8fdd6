package domain

import "time"

// PlanVersion is an append-only snapshot of a user's full block set.
// VersionNumber strictly increases per user; rollback creates a new
// version rather than rewriting history.
type PlanVersion struct {
	ID            int64
	UserID        string
	VersionNumber int
	Trigger       string
	Snapshot      []BlockSnapshot
	DiffSummary   string
	CreatedAt     time.Time
}

// BlockSnapshot is the JSON shape of one block inside a version snapshot.
type BlockSnapshot struct {
	ID         int64     `json:"id"`
	TaskID     int64     `json:"task_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	BlockIndex int       `json:"block_index"`
	IsPinned   bool      `json:"is_pinned"`
}

// SnapshotBlocks converts persisted blocks into snapshot entries.
func SnapshotBlocks(blocks []*StudyBlock) []BlockSnapshot {
	snaps := make([]BlockSnapshot, 0, len(blocks))
	for _, b := range blocks {
		snaps = append(snaps, BlockSnapshot{
			ID:         b.ID,
			TaskID:     b.TaskID,
			Start:      b.Start,
			End:        b.End,
			BlockIndex: b.BlockIndex,
			IsPinned:   b.IsPinned,
		})
	}
	return snaps
}
