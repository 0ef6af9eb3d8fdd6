package service

import (
	"context"
	"fmt"

	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/scheduler"
)

type energyService struct {
	tasks    repository.TaskRepo
	profiles repository.EnergyProfileRepo
}

func NewEnergyService(tasks repository.TaskRepo, profiles repository.EnergyProfileRepo) EnergyService {
	return &energyService{tasks: tasks, profiles: profiles}
}

// GetProfile returns the user's profile with hourly scores resolved:
// preset types get their preset curve, custom keeps the stored one.
func (s *energyService) GetProfile(ctx context.Context, userID string) (*domain.EnergyProfile, error) {
	p, err := s.profiles.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p.Type != domain.ProfileCustom {
		if preset, ok := scheduler.PresetProfiles()[p.Type]; ok {
			p.HourlyScores = preset.HourlyScores
		}
	}
	return p, nil
}

func (s *energyService) SetProfile(ctx context.Context, userID string, p *domain.EnergyProfile) error {
	switch p.Type {
	case domain.ProfileMorningPerson, domain.ProfileNightOwl, domain.ProfileBalanced:
		// Preset curves are derived, not stored.
		p.HourlyScores = [24]float64{}
	case domain.ProfileCustom:
		for h, score := range p.HourlyScores {
			if score < 0 || score > 1 {
				return fmt.Errorf("hourly score for %02d:00 must be 0-1, got %g", h, score)
			}
		}
	default:
		return fmt.Errorf("unknown profile type %q", p.Type)
	}
	return s.profiles.Upsert(ctx, userID, p)
}

func (s *energyService) AnnotateBlocks(ctx context.Context, userID string, blocks []*domain.StudyBlock) ([]BlockEnergy, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	focusByTask := make(map[int64]domain.FocusLoad)
	all, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading tasks: %w", err)
	}
	for _, t := range all {
		focusByTask[t.ID] = t.FocusLoad
	}

	annotated := make([]BlockEnergy, 0, len(blocks))
	for _, b := range blocks {
		focus := focusByTask[b.TaskID]
		if focus == "" {
			focus = domain.FocusMedium
		}
		annotated = append(annotated, BlockEnergy{
			Block: b,
			Score: scheduler.ScoreSlot(b.Start.Hour(), focus, *profile),
		})
	}
	return annotated, nil
}
