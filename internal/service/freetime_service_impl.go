package service

import (
	"context"
	"fmt"

	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/scheduler"
)

type freeTimeService struct {
	availability repository.AvailabilityRepo
}

func NewFreeTimeService(availability repository.AvailabilityRepo) FreeTimeService {
	return &freeTimeService{availability: availability}
}

func (s *freeTimeService) FindMutualFreeSlots(ctx context.Context, userIDs []string, minDurationMinutes int) ([]contract.FreeSlot, error) {
	if len(userIDs) < 2 {
		return nil, fmt.Errorf("need at least two users, got %d", len(userIDs))
	}
	if minDurationMinutes <= 0 {
		minDurationMinutes = 30
	}

	users := make([]scheduler.UserAvailability, 0, len(userIDs))
	for _, id := range userIDs {
		grid, rules, err := s.availability.Get(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading availability for %s: %w", id, err)
		}
		users = append(users, scheduler.UserAvailability{Grid: *grid, Rules: *rules})
	}

	return scheduler.FindMutualFreeSlots(users, minDurationMinutes), nil
}
