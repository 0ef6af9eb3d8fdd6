package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/domain"
)

func TestFormatBlockList_Empty(t *testing.T) {
	out := FormatBlockList(nil, nil, nil)
	assert.Contains(t, out, "No study blocks")
}

func TestFormatBlockList_GroupsByDay(t *testing.T) {
	start := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	blocks := []*domain.StudyBlock{
		{ID: 1, TaskID: 1, Start: start, End: start.Add(time.Hour)},
		{ID: 2, TaskID: 1, Start: start.Add(2 * time.Hour), End: start.Add(3 * time.Hour)},
		{ID: 3, TaskID: 1, Start: start.AddDate(0, 0, 1), End: start.AddDate(0, 0, 1).Add(time.Hour), IsPinned: true},
	}
	tasks := map[int64]*domain.Task{1: {ID: 1, Title: "Essay draft"}}

	out := FormatBlockList(blocks, tasks, nil)
	assert.Contains(t, out, "MONDAY, MAR 16")
	assert.Contains(t, out, "TUESDAY, MAR 17")
	assert.Contains(t, out, "09:00-10:00")
	assert.Contains(t, out, "Essay draft")
	assert.Contains(t, out, "pinned")
}

func TestFormatBlockList_UnknownTaskFallsBackToID(t *testing.T) {
	start := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	blocks := []*domain.StudyBlock{{ID: 1, TaskID: 7, Start: start, End: start.Add(time.Hour)}}

	out := FormatBlockList(blocks, nil, nil)
	assert.Contains(t, out, "task 7")
}

func TestFormatDiff(t *testing.T) {
	oldStart := time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC)
	oldEnd := oldStart.Add(time.Hour)
	newStart := oldStart.Add(2 * time.Hour)
	newEnd := newStart.Add(time.Hour)

	diff := contract.PlanDiff{
		Added:   1,
		Moved:   1,
		Deleted: 1,
		Items: []contract.DiffItem{
			{Action: contract.ActionAdded, TaskTitle: "Reading", NewStart: &newStart, NewEnd: &newEnd},
			{Action: contract.ActionMoved, TaskTitle: "Essay", OldStart: &oldStart, OldEnd: &oldEnd, NewStart: &newStart, NewEnd: &newEnd},
			{Action: contract.ActionDeleted, TaskTitle: "Lab prep", OldStart: &oldStart, OldEnd: &oldEnd},
		},
	}

	out := FormatDiff(diff)
	assert.Contains(t, out, "Added 1, moved 1, deleted 1 blocks")
	assert.Contains(t, out, "Reading")
	assert.Contains(t, out, "Essay")
	assert.Contains(t, out, "Lab prep")
	assert.Contains(t, out, "09:00-10:00")
	assert.Contains(t, out, "11:00-12:00")
}

func TestFormatWeekGrid_MarksFreeHours(t *testing.T) {
	grid := &domain.WeekGrid{}
	grid.SetRange(0, 9, 12, true)

	out := FormatWeekGrid(grid)
	assert.Contains(t, out, "Mon")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "·")
}

func TestFormatFreeSlots(t *testing.T) {
	slots := []contract.FreeSlot{
		{Day: "monday", StartHour: 12, EndHour: 14, DurationMinutes: 120},
		{Day: "tuesday", StartHour: 8, EndHour: 9, DurationMinutes: 60},
	}

	out := FormatFreeSlots(slots)
	assert.Contains(t, out, "MONDAY")
	assert.Contains(t, out, "12:00-14:00")
	assert.Contains(t, out, "120 min")
}

func TestFormatVersionList(t *testing.T) {
	versions := []*domain.PlanVersion{
		{VersionNumber: 2, Trigger: "drag_move", DiffSummary: "Added 0, moved 1, deleted 0 blocks",
			Snapshot: []domain.BlockSnapshot{{ID: 1}}, CreatedAt: time.Now()},
		{VersionNumber: 1, Trigger: "manual_replan", DiffSummary: "Added 3, moved 0, deleted 0 blocks",
			CreatedAt: time.Now()},
	}

	out := FormatVersionList(versions)
	assert.Contains(t, out, "v2")
	assert.Contains(t, out, "v1")
	assert.Contains(t, out, "drag_move")
}
