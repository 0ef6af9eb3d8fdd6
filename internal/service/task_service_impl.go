package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
)

type taskService struct {
	tasks   repository.TaskRepo
	courses repository.CourseRepo
}

func NewTaskService(tasks repository.TaskRepo, courses repository.CourseRepo) TaskService {
	return &taskService{tasks: tasks, courses: courses}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.Title == "" {
		return fmt.Errorf("task title is required")
	}
	if t.DueDate.IsZero() {
		return fmt.Errorf("task due date is required")
	}
	if t.Status == "" {
		t.Status = domain.TaskActive
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	if t.Type == "" {
		t.Type = domain.TypeAssignment
	}
	if t.FocusLoad == "" {
		t.FocusLoad = domain.FocusMedium
	}
	if t.Difficulty == 0 {
		t.Difficulty = 3
	}
	if t.Difficulty < 1 || t.Difficulty > 5 {
		return fmt.Errorf("difficulty must be between 1 and 5, got %d", t.Difficulty)
	}
	if t.MinBlockMinutes == 0 {
		t.MinBlockMinutes = 30
	}
	if t.MaxBlockMinutes == 0 {
		t.MaxBlockMinutes = 120
	}
	if t.MinBlockMinutes > t.MaxBlockMinutes {
		return fmt.Errorf("min block minutes %d exceeds max %d", t.MinBlockMinutes, t.MaxBlockMinutes)
	}

	// A referenced course must exist and belong to the same user.
	if t.CourseID != nil {
		if _, err := s.courses.GetByID(ctx, t.UserID, *t.CourseID); err != nil {
			return fmt.Errorf("resolving course: %w", err)
		}
	}

	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, userID string, id int64) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, userID, id)
}

func (s *taskService) List(ctx context.Context, userID string, statuses ...domain.TaskStatus) ([]*domain.Task, error) {
	return s.tasks.List(ctx, userID, statuses...)
}

func (s *taskService) Update(ctx context.Context, userID string, id int64, update domain.TaskUpdate) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if update.CourseID != nil {
		if _, err := s.courses.GetByID(ctx, userID, *update.CourseID); err != nil {
			return nil, fmt.Errorf("resolving course: %w", err)
		}
	}

	t.Apply(update, time.Now().UTC())
	if t.Difficulty < 1 || t.Difficulty > 5 {
		return nil, fmt.Errorf("difficulty must be between 1 and 5, got %d", t.Difficulty)
	}
	if t.MinBlockMinutes > t.MaxBlockMinutes {
		return nil, fmt.Errorf("min block minutes %d exceeds max %d", t.MinBlockMinutes, t.MaxBlockMinutes)
	}

	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Complete(ctx context.Context, userID string, id int64) (*domain.Task, error) {
	t, err := s.tasks.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	t.Complete(time.Now().UTC())
	if err := s.tasks.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *taskService) Delete(ctx context.Context, userID string, id int64) error {
	return s.tasks.Delete(ctx, userID, id)
}

type courseService struct {
	courses repository.CourseRepo
}

func NewCourseService(courses repository.CourseRepo) CourseService {
	return &courseService{courses: courses}
}

func (s *courseService) Create(ctx context.Context, c *domain.Course) error {
	if c.Name == "" {
		return fmt.Errorf("course name is required")
	}
	return s.courses.Create(ctx, c)
}

func (s *courseService) GetByID(ctx context.Context, userID string, id int64) (*domain.Course, error) {
	return s.courses.GetByID(ctx, userID, id)
}

func (s *courseService) List(ctx context.Context, userID string) ([]*domain.Course, error) {
	return s.courses.List(ctx, userID)
}

func (s *courseService) Update(ctx context.Context, c *domain.Course) error {
	if c.Name == "" {
		return fmt.Errorf("course name is required")
	}
	return s.courses.Update(ctx, c)
}

func (s *courseService) Delete(ctx context.Context, userID string, id int64) error {
	return s.courses.Delete(ctx, userID, id)
}
