package contract

import "time"

type DiffAction string

const (
	ActionAdded   DiffAction = "added"
	ActionMoved   DiffAction = "moved"
	ActionDeleted DiffAction = "deleted"
)

// DiffItem describes one block-level change between two plans.
type DiffItem struct {
	Action    DiffAction `json:"action"`
	BlockID   *int64     `json:"block_id,omitempty"`
	TaskTitle string     `json:"task_title"`
	OldStart  *time.Time `json:"old_start,omitempty"`
	OldEnd    *time.Time `json:"old_end,omitempty"`
	NewStart  *time.Time `json:"new_start,omitempty"`
	NewEnd    *time.Time `json:"new_end,omitempty"`
}

// PlanDiff is the classified change list between an old and a new block
// set, serialized directly as the API response.
type PlanDiff struct {
	Added   int        `json:"added"`
	Moved   int        `json:"moved"`
	Deleted int        `json:"deleted"`
	Items   []DiffItem `json:"items"`
}

// Summary renders the one-line human-readable form stored on plan versions.
func (d PlanDiff) Summary() string {
	return formatSummary(d.Added, d.Moved, d.Deleted)
}
