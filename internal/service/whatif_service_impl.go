package service

import (
	"context"
	"fmt"
	"time"

	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/scheduler"
)

type whatIfService struct {
	tasks        repository.TaskRepo
	blocks       repository.BlockRepo
	availability repository.AvailabilityRepo

	now func() time.Time
}

func NewWhatIfService(
	tasks repository.TaskRepo,
	blocks repository.BlockRepo,
	availability repository.AvailabilityRepo,
) WhatIfService {
	return &whatIfService{
		tasks:        tasks,
		blocks:       blocks,
		availability: availability,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// Simulate answers a hypothetical against the user's live inputs. It
// never writes: the engine runs on detached copies only.
func (s *whatIfService) Simulate(ctx context.Context, userID string, scenario contract.Scenario) (*contract.SimulationResult, error) {
	active, err := s.tasks.ListActive(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	grid, rules, err := s.availability.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading availability: %w", err)
	}
	current, err := s.blocks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading blocks: %w", err)
	}

	pinned := pinnedAsEngineBlocks(current)
	result := scheduler.Simulate(active, *grid, *rules, pinned, current, scenario, s.now())
	return &result, nil
}
