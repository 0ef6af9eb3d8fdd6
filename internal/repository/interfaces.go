package repository

import (
	"context"

	"github.com/studyweave/studyweave/internal/domain"
)

// All repositories scope every query by user id; a row belonging to a
// different user is indistinguishable from a missing row.

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, userID string, id int64) (*domain.Course, error)
	List(ctx context.Context, userID string) ([]*domain.Course, error)
	Update(ctx context.Context, c *domain.Course) error
	Delete(ctx context.Context, userID string, id int64) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, userID string, id int64) (*domain.Task, error)
	List(ctx context.Context, userID string, statuses ...domain.TaskStatus) ([]*domain.Task, error)
	ListActive(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, userID string, id int64) error
}

type BlockRepo interface {
	Create(ctx context.Context, b *domain.StudyBlock) error
	GetByID(ctx context.Context, userID string, id int64) (*domain.StudyBlock, error)
	List(ctx context.Context, userID string) ([]*domain.StudyBlock, error)
	ListPinned(ctx context.Context, userID string) ([]*domain.StudyBlock, error)
	Update(ctx context.Context, b *domain.StudyBlock) error
	DeleteUnpinned(ctx context.Context, userID string) error
	DeleteAll(ctx context.Context, userID string) error
}

type PlanVersionRepo interface {
	Create(ctx context.Context, v *domain.PlanVersion) error
	GetByNumber(ctx context.Context, userID string, number int) (*domain.PlanVersion, error)
	List(ctx context.Context, userID string) ([]*domain.PlanVersion, error)
	MaxVersionNumber(ctx context.Context, userID string) (int, error)
}

// AvailabilityRepo stores one grid+rules pair per user. Get on a user
// with no saved row returns defaults, not ErrNotFound.
type AvailabilityRepo interface {
	Get(ctx context.Context, userID string) (*domain.WeekGrid, *domain.SchedulingRules, error)
	Upsert(ctx context.Context, userID string, grid *domain.WeekGrid, rules *domain.SchedulingRules) error
}

// EnergyProfileRepo stores one profile per user. Get on a user with no
// saved row returns a balanced profile with no stored scores.
type EnergyProfileRepo interface {
	Get(ctx context.Context, userID string) (*domain.EnergyProfile, error)
	Upsert(ctx context.Context, userID string, p *domain.EnergyProfile) error
}

type ReviewStateRepo interface {
	Get(ctx context.Context, userID string, taskID int64) (*domain.ReviewState, error)
	Upsert(ctx context.Context, s *domain.ReviewState) error
}
