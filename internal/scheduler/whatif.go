package scheduler

import (
	"fmt"
	"time"

	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/domain"
)

// Simulate applies one hypothetical scenario to detached copies of the
// real inputs, reruns the allocation engine, and diffs the outcome
// against the currently persisted blocks. Nothing is mutated: grids and
// rules are taken by value, tasks are copied before any change, and no
// store is touched. Missing or nonsensical scenario fields degrade to
// warnings, never to a hard failure.
func Simulate(
	tasks []*domain.Task,
	grid domain.WeekGrid,
	rules domain.SchedulingRules,
	pinned []Block,
	currentBlocks []*domain.StudyBlock,
	scenario contract.Scenario,
	planStart time.Time,
) contract.SimulationResult {
	warnings := []string{}

	titles := make(map[int64]string, len(tasks))
	for _, t := range tasks {
		titles[t.ID] = t.Title
	}

	simTasks := tasks

	switch scenario.Type {
	case contract.ScenarioAddCommitment:
		grid = applyCommitment(grid, scenario)

	case contract.ScenarioRemoveHours:
		reduceBy := domain.Float64FromPtrWithDefault(0.0, scenario.ReduceHoursBy)
		rules.DailyMaxHours = max(0.0, rules.DailyMaxHours-reduceBy)
		rules.WeekendMaxHours = max(0.0, rules.WeekendMaxHours-reduceBy)
		if rules.DailyMaxHours <= 0 {
			warnings = append(warnings, "Reducing hours leaves zero daily capacity — plan will be empty.")
		}

	case contract.ScenarioAddTask:
		hypothetical := buildHypotheticalTask(scenario, tasks, planStart)
		simTasks = append(append([]*domain.Task(nil), tasks...), hypothetical)
		titles[hypothetical.ID] = hypothetical.Title

	case contract.ScenarioChangeDeadline:
		simTasks = applyDeadlineChange(tasks, scenario, &warnings)

	default:
		warnings = append(warnings, fmt.Sprintf("unknown scenario type %q — simulating with unchanged inputs", scenario.Type))
	}

	newBlocks := GeneratePlan(simTasks, &grid, &rules, pinned, planStart)
	diff := ComputeDiff(currentBlocks, newBlocks, titles)

	return contract.SimulationResult{
		Scenario: scenario,
		Diff:     diff,
		Warnings: warnings,
	}
}

// applyCommitment zeroes availability for the committed hours on the
// given weekdays. The grid is a value copy; the caller's grid is
// untouched.
func applyCommitment(grid domain.WeekGrid, scenario contract.Scenario) domain.WeekGrid {
	startHour := domain.IntFromPtrWithDefault(0, scenario.CommitmentStartHour)
	endHour := domain.IntFromPtrWithDefault(24, scenario.CommitmentEndHour)

	for _, day := range scenario.CommitmentDays {
		if day < 0 || day > 6 {
			continue
		}
		grid.SetRange(day, startHour, endHour, false)
	}
	return grid
}

// buildHypotheticalTask creates a non-persisted task for the
// simulation. The id is negative so it can never collide with a real
// task id.
func buildHypotheticalTask(scenario contract.Scenario, existing []*domain.Task, planStart time.Time) *domain.Task {
	minID := int64(0)
	for _, t := range existing {
		if t.ID < minID {
			minID = t.ID
		}
	}

	estimated := domain.Float64FromPtrWithDefault(2.0, scenario.TaskEstimatedHours)
	due := planStart.AddDate(0, 0, 14)
	if scenario.TaskDueDate != nil {
		due = *scenario.TaskDueDate
	}
	focus := domain.FocusMedium
	if scenario.TaskFocusLoad != nil && domain.ValidFocusLoads[*scenario.TaskFocusLoad] {
		focus = domain.FocusLoad(*scenario.TaskFocusLoad)
	}
	title := "Hypothetical Task"
	if scenario.TaskTitle != nil && *scenario.TaskTitle != "" {
		title = *scenario.TaskTitle
	}

	return &domain.Task{
		ID:              minID - 1,
		Title:           title,
		EstimatedHours:  &estimated,
		DueDate:         due,
		FocusLoad:       focus,
		Difficulty:      domain.IntFromPtrWithDefault(3, scenario.TaskDifficulty),
		Priority:        domain.PriorityMedium,
		CourseID:        scenario.TaskCourseID,
		Status:          domain.TaskActive,
		Splittable:      true,
		MinBlockMinutes: 30,
		MaxBlockMinutes: 120,
	}
}

// applyDeadlineChange returns a task list with one deadline replaced on
// a detached copy. A missing target degrades to a warning and the
// simulation proceeds with unchanged inputs.
func applyDeadlineChange(tasks []*domain.Task, scenario contract.Scenario, warnings *[]string) []*domain.Task {
	if scenario.TargetTaskID == nil || scenario.NewDeadline == nil {
		*warnings = append(*warnings, "change_deadline requires target_task_id and new_deadline.")
		return tasks
	}

	modified := make([]*domain.Task, 0, len(tasks))
	found := false
	for _, t := range tasks {
		if t.ID == *scenario.TargetTaskID {
			found = true
			clone := *t
			clone.DueDate = *scenario.NewDeadline
			modified = append(modified, &clone)
		} else {
			modified = append(modified, t)
		}
	}

	if !found {
		*warnings = append(*warnings, fmt.Sprintf("Task %d not found among active tasks.", *scenario.TargetTaskID))
	}
	return modified
}
