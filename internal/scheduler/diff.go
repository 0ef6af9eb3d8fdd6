package scheduler

import (
	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/domain"
)

// ComputeDiff classifies the changes from oldBlocks to newBlocks.
//
// Blocks are grouped per task and paired by position within the task's
// own block sequence: positional pairing means a reorder inside one
// task can register as spurious moves, which is accepted as an
// approximation. Tasks are visited in first-seen order of each input so
// the item list is deterministic.
func ComputeDiff(oldBlocks []*domain.StudyBlock, newBlocks []Block, taskTitles map[int64]string) contract.PlanDiff {
	oldByTask := make(map[int64][]*domain.StudyBlock)
	var oldOrder []int64
	for _, b := range oldBlocks {
		if _, seen := oldByTask[b.TaskID]; !seen {
			oldOrder = append(oldOrder, b.TaskID)
		}
		oldByTask[b.TaskID] = append(oldByTask[b.TaskID], b)
	}

	newByTask := make(map[int64][]Block)
	var newOrder []int64
	for _, b := range newBlocks {
		if _, seen := newByTask[b.TaskID]; !seen {
			newOrder = append(newOrder, b.TaskID)
		}
		newByTask[b.TaskID] = append(newByTask[b.TaskID], b)
	}

	diff := contract.PlanDiff{Items: []contract.DiffItem{}}

	// Deleted and moved blocks.
	for _, taskID := range oldOrder {
		oldList := oldByTask[taskID]
		newList := newByTask[taskID]
		for i, ob := range oldList {
			if i < len(newList) {
				nb := newList[i]
				if !ob.Start.Equal(nb.Start) || !ob.End.Equal(nb.End) {
					id := ob.ID
					oldStart, oldEnd := ob.Start, ob.End
					newStart, newEnd := nb.Start, nb.End
					diff.Items = append(diff.Items, contract.DiffItem{
						Action:    contract.ActionMoved,
						BlockID:   &id,
						TaskTitle: taskTitles[taskID],
						OldStart:  &oldStart,
						OldEnd:    &oldEnd,
						NewStart:  &newStart,
						NewEnd:    &newEnd,
					})
					diff.Moved++
				}
			} else {
				id := ob.ID
				oldStart, oldEnd := ob.Start, ob.End
				diff.Items = append(diff.Items, contract.DiffItem{
					Action:    contract.ActionDeleted,
					BlockID:   &id,
					TaskTitle: taskTitles[taskID],
					OldStart:  &oldStart,
					OldEnd:    &oldEnd,
				})
				diff.Deleted++
			}
		}
	}

	// Added blocks: anything beyond the old count per task.
	for _, taskID := range newOrder {
		newList := newByTask[taskID]
		oldCount := len(oldByTask[taskID])
		for _, nb := range newList[min(oldCount, len(newList)):] {
			newStart, newEnd := nb.Start, nb.End
			diff.Items = append(diff.Items, contract.DiffItem{
				Action:    contract.ActionAdded,
				TaskTitle: taskTitles[taskID],
				NewStart:  &newStart,
				NewEnd:    &newEnd,
			})
			diff.Added++
		}
	}

	return diff
}
