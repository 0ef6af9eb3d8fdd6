package service

import (
	"context"
	"time"

	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/domain"
)

type CourseService interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, userID string, id int64) (*domain.Course, error)
	List(ctx context.Context, userID string) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, userID string, id int64) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID string, id int64) (*domain.Task, error)
	List(ctx context.Context, userID string, statuses ...domain.TaskStatus) ([]*domain.Task, error)
	Update(ctx context.Context, userID string, id int64, update domain.TaskUpdate) (*domain.Task, error)
	Complete(ctx context.Context, userID string, id int64) (*domain.Task, error)
	Delete(ctx context.Context, userID string, id int64) error
}

type AvailabilityService interface {
	Get(ctx context.Context, userID string) (*domain.WeekGrid, *domain.SchedulingRules, error)
	SetRange(ctx context.Context, userID string, day, startHour, endHour int, available bool) error
	SetGrid(ctx context.Context, userID string, grid *domain.WeekGrid) error
	UpdateRules(ctx context.Context, userID string, rules *domain.SchedulingRules) error
}

// PlanPreview is a proposed plan held in memory until the user confirms
// or abandons it. Nothing is persisted while it exists.
type PlanPreview struct {
	Blocks    []*domain.StudyBlock
	Diff      contract.PlanDiff
	CreatedAt time.Time
	ExpiresAt time.Time
}

// ConfirmResult reports what a confirmed replan changed.
type ConfirmResult struct {
	VersionNumber int
	Diff          contract.PlanDiff
	BlockCount    int
}

type ScheduleService interface {
	// GeneratePreview runs the engine over the user's live inputs and
	// caches the proposal; the persisted plan is untouched.
	GeneratePreview(ctx context.Context, userID string) (*PlanPreview, error)
	// ConfirmPlan applies the cached preview atomically: snapshot the
	// old plan as a new version, replace unpinned blocks.
	ConfirmPlan(ctx context.Context, userID, trigger string) (*ConfirmResult, error)
	ListBlocks(ctx context.Context, userID string) ([]*domain.StudyBlock, error)
	// MoveBlock reschedules one block by hand and pins it so later
	// replans leave it alone.
	MoveBlock(ctx context.Context, userID string, blockID int64, newStart time.Time) (*domain.StudyBlock, error)
}

type VersionService interface {
	List(ctx context.Context, userID string) ([]*domain.PlanVersion, error)
	GetByNumber(ctx context.Context, userID string, number int) (*domain.PlanVersion, error)
	// Rollback restores the block set of an older version as a brand
	// new version; history is never rewritten.
	Rollback(ctx context.Context, userID string, number int) (*domain.PlanVersion, error)
}

type WhatIfService interface {
	Simulate(ctx context.Context, userID string, scenario contract.Scenario) (*contract.SimulationResult, error)
}

type FreeTimeService interface {
	FindMutualFreeSlots(ctx context.Context, userIDs []string, minDurationMinutes int) ([]contract.FreeSlot, error)
}

type ReviewService interface {
	// RecordReview grades one review session and advances the task's
	// spaced-repetition state.
	RecordReview(ctx context.Context, userID string, taskID int64, quality int) (*domain.ReviewState, error)
	// PlanReviews projects review sessions for an exam task from today
	// until its due date.
	PlanReviews(ctx context.Context, userID string, taskID int64) ([]contract.ReviewBlock, error)
}

// BlockEnergy annotates one block with its energy fit.
type BlockEnergy struct {
	Block *domain.StudyBlock
	Score float64
}

type EnergyService interface {
	GetProfile(ctx context.Context, userID string) (*domain.EnergyProfile, error)
	SetProfile(ctx context.Context, userID string, p *domain.EnergyProfile) error
	// AnnotateBlocks scores each block's start hour against the user's
	// profile and the owning task's focus load. Scores are advisory;
	// the engine never consults them.
	AnnotateBlocks(ctx context.Context, userID string, blocks []*domain.StudyBlock) ([]BlockEnergy, error)
}
