package service

import (
	"context"
	"fmt"

	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
)

type availabilityService struct {
	availability repository.AvailabilityRepo
}

func NewAvailabilityService(availability repository.AvailabilityRepo) AvailabilityService {
	return &availabilityService{availability: availability}
}

func (s *availabilityService) Get(ctx context.Context, userID string) (*domain.WeekGrid, *domain.SchedulingRules, error) {
	return s.availability.Get(ctx, userID)
}

func (s *availabilityService) SetRange(ctx context.Context, userID string, day, startHour, endHour int, available bool) error {
	if day < 0 || day > 6 {
		return fmt.Errorf("day must be 0 (Monday) to 6 (Sunday), got %d", day)
	}
	if startHour < 0 || endHour > 24 || startHour >= endHour {
		return fmt.Errorf("invalid hour range %d-%d", startHour, endHour)
	}

	grid, rules, err := s.availability.Get(ctx, userID)
	if err != nil {
		return err
	}
	grid.SetRange(day, startHour, endHour, available)
	return s.availability.Upsert(ctx, userID, grid, rules)
}

func (s *availabilityService) SetGrid(ctx context.Context, userID string, grid *domain.WeekGrid) error {
	_, rules, err := s.availability.Get(ctx, userID)
	if err != nil {
		return err
	}
	return s.availability.Upsert(ctx, userID, grid, rules)
}

func (s *availabilityService) UpdateRules(ctx context.Context, userID string, rules *domain.SchedulingRules) error {
	if err := rules.Validate(); err != nil {
		return err
	}
	grid, _, err := s.availability.Get(ctx, userID)
	if err != nil {
		return err
	}
	return s.availability.Upsert(ctx, userID, grid, rules)
}
