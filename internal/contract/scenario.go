package contract

import "time"

type ScenarioType string

const (
	ScenarioAddCommitment  ScenarioType = "add_commitment"
	ScenarioRemoveHours    ScenarioType = "remove_hours"
	ScenarioAddTask        ScenarioType = "add_task"
	ScenarioChangeDeadline ScenarioType = "change_deadline"
)

// Scenario is a single hypothetical change to explore. Exactly one
// scenario type applies per simulation; fields for the other types are
// ignored.
type Scenario struct {
	Type ScenarioType `json:"scenario_type"`

	// add_commitment: block out specific hours on days of the week
	// (0 = Monday .. 6 = Sunday).
	CommitmentDays      []int `json:"commitment_days,omitempty"`
	CommitmentStartHour *int  `json:"commitment_start_hour,omitempty"`
	CommitmentEndHour   *int  `json:"commitment_end_hour,omitempty"`

	// remove_hours: subtract from the daily and weekend caps.
	ReduceHoursBy *float64 `json:"reduce_hours_by,omitempty"`

	// add_task: hypothetical task details.
	TaskTitle          *string    `json:"task_title,omitempty"`
	TaskEstimatedHours *float64   `json:"task_estimated_hours,omitempty"`
	TaskDueDate        *time.Time `json:"task_due_date,omitempty"`
	TaskFocusLoad      *string    `json:"task_focus_load,omitempty"`
	TaskDifficulty     *int       `json:"task_difficulty,omitempty"`
	TaskCourseID       *int64     `json:"task_course_id,omitempty"`

	// change_deadline: existing task id + new deadline.
	TargetTaskID *int64     `json:"target_task_id,omitempty"`
	NewDeadline  *time.Time `json:"new_deadline,omitempty"`
}

// SimulationResult is the outcome of a what-if run. Warnings are
// non-fatal; the simulation always completes best-effort.
type SimulationResult struct {
	Scenario Scenario `json:"scenario"`
	Diff     PlanDiff `json:"diff"`
	Warnings []string `json:"warnings"`
}
