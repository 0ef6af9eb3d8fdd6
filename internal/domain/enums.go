package domain

type TaskStatus string

const (
	TaskActive    TaskStatus = "active"
	TaskCompleted TaskStatus = "completed"
	TaskArchived  TaskStatus = "archived"
)

type TaskType string

const (
	TypeAssignment TaskType = "assignment"
	TypeExam       TaskType = "exam"
	TypeReading    TaskType = "reading"
	TypeProject    TaskType = "project"
	TypeOther      TaskType = "other"
)

type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

type FocusLoad string

const (
	FocusLight  FocusLoad = "light"
	FocusMedium FocusLoad = "medium"
	FocusDeep   FocusLoad = "deep"
)

type EnergyProfileType string

const (
	ProfileMorningPerson EnergyProfileType = "morning_person"
	ProfileNightOwl      EnergyProfileType = "night_owl"
	ProfileBalanced      EnergyProfileType = "balanced"
	ProfileCustom        EnergyProfileType = "custom"
)

// Plan version triggers recorded in history. Rollback triggers are
// generated as "rollback_to_v<N>" and are not enumerated here.
const (
	TriggerManualReplan = "manual_replan"
	TriggerDragMove     = "drag_move"
	TriggerNewTask      = "new_task"
)

// ValidPriorities is the canonical set of accepted priority strings.
var ValidPriorities = map[string]bool{
	"critical": true, "high": true, "medium": true, "low": true,
}

// ValidFocusLoads is the canonical set of accepted focus load strings.
var ValidFocusLoads = map[string]bool{
	"light": true, "medium": true, "deep": true,
}

// ValidTaskTypes is the canonical set of accepted task type strings.
var ValidTaskTypes = map[string]bool{
	"assignment": true, "exam": true, "reading": true,
	"project": true, "other": true,
}
