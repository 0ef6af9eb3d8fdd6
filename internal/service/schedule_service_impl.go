package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/studyweave/studyweave/internal/contract"
	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
	"github.com/studyweave/studyweave/internal/scheduler"
)

// ErrNoPendingPreview is returned by ConfirmPlan when no preview was
// generated, or the previous one expired.
var ErrNoPendingPreview = fmt.Errorf("no pending plan preview")

type scheduleService struct {
	tasks        repository.TaskRepo
	blocks       repository.BlockRepo
	availability repository.AvailabilityRepo
	uow          db.UnitOfWork
	previews     *PreviewStore
	logger       *zap.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewScheduleService(
	tasks repository.TaskRepo,
	blocks repository.BlockRepo,
	availability repository.AvailabilityRepo,
	uow db.UnitOfWork,
	previews *PreviewStore,
	logger *zap.Logger,
) ScheduleService {
	return &scheduleService{
		tasks:        tasks,
		blocks:       blocks,
		availability: availability,
		uow:          uow,
		previews:     previews,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

func (s *scheduleService) GeneratePreview(ctx context.Context, userID string) (*PlanPreview, error) {
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
	proposed := scheduler.GeneratePlan(active, grid, rules, pinned, s.now())

	titles, err := s.taskTitles(ctx, userID)
	if err != nil {
		return nil, err
	}
	diff := scheduler.ComputeDiff(current, proposed, titles)

	preview := &PlanPreview{
		Blocks: engineBlocksToDomain(proposed, userID),
		Diff:   diff,
	}
	s.previews.Put(userID, preview)

	s.logger.Info("plan preview generated",
		zap.String("user_id", userID),
		zap.Int("tasks", len(active)),
		zap.Int("blocks", len(proposed)),
		zap.Int("added", diff.Added),
		zap.Int("moved", diff.Moved),
		zap.Int("deleted", diff.Deleted))

	return preview, nil
}

func (s *scheduleService) ConfirmPlan(ctx context.Context, userID, trigger string) (*ConfirmResult, error) {
	preview, ok := s.previews.Get(userID)
	if !ok {
		return nil, ErrNoPendingPreview
	}
	trigger = domain.CoalesceStr(trigger, domain.TriggerManualReplan)

	var result ConfirmResult
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBlocks := repository.NewSQLiteBlockRepo(tx)
		txVersions := repository.NewSQLitePlanVersionRepo(tx)

		current, err := txBlocks.List(ctx, userID)
		if err != nil {
			return err
		}

		maxNumber, err := txVersions.MaxVersionNumber(ctx, userID)
		if err != nil {
			return err
		}
		version := &domain.PlanVersion{
			UserID:        userID,
			VersionNumber: maxNumber + 1,
			Trigger:       trigger,
			Snapshot:      domain.SnapshotBlocks(current),
			DiffSummary:   preview.Diff.Summary(),
		}
		if err := txVersions.Create(ctx, version); err != nil {
			return err
		}

		if err := txBlocks.DeleteUnpinned(ctx, userID); err != nil {
			return err
		}

		inserted := 0
		for _, b := range preview.Blocks {
			// Pinned blocks survived the delete; the engine echoes them
			// back and they must not be duplicated.
			if b.IsPinned {
				continue
			}
			nb := *b
			nb.PlanVersionID = &version.ID
			if err := txBlocks.Create(ctx, &nb); err != nil {
				return err
			}
			inserted++
		}

		result = ConfirmResult{
			VersionNumber: version.VersionNumber,
			Diff:          preview.Diff,
			BlockCount:    inserted,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.previews.Delete(userID)

	s.logger.Info("plan confirmed",
		zap.String("user_id", userID),
		zap.String("trigger", trigger),
		zap.Int("version", result.VersionNumber),
		zap.Int("blocks", result.BlockCount))

	return &result, nil
}

func (s *scheduleService) ListBlocks(ctx context.Context, userID string) ([]*domain.StudyBlock, error) {
	return s.blocks.List(ctx, userID)
}

func (s *scheduleService) MoveBlock(ctx context.Context, userID string, blockID int64, newStart time.Time) (*domain.StudyBlock, error) {
	var moved *domain.StudyBlock
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBlocks := repository.NewSQLiteBlockRepo(tx)
		txVersions := repository.NewSQLitePlanVersionRepo(tx)

		b, err := txBlocks.GetByID(ctx, userID, blockID)
		if err != nil {
			return err
		}

		duration := b.End.Sub(b.Start)
		b.Start = newStart.UTC()
		b.End = b.Start.Add(duration)
		b.IsPinned = true
		if err := txBlocks.Update(ctx, b); err != nil {
			return err
		}

		current, err := txBlocks.List(ctx, userID)
		if err != nil {
			return err
		}
		maxNumber, err := txVersions.MaxVersionNumber(ctx, userID)
		if err != nil {
			return err
		}
		version := &domain.PlanVersion{
			UserID:        userID,
			VersionNumber: maxNumber + 1,
			Trigger:       domain.TriggerDragMove,
			Snapshot:      domain.SnapshotBlocks(current),
			DiffSummary:   contract.PlanDiff{Moved: 1}.Summary(),
		}
		if err := txVersions.Create(ctx, version); err != nil {
			return err
		}

		moved = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("block moved",
		zap.String("user_id", userID),
		zap.Int64("block_id", blockID),
		zap.Time("new_start", moved.Start))

	return moved, nil
}

// taskTitles maps every task id, whatever its status, to its title so
// diffs can label blocks of completed tasks.
func (s *scheduleService) taskTitles(ctx context.Context, userID string) (map[int64]string, error) {
	all, err := s.tasks.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading task titles: %w", err)
	}
	titles := make(map[int64]string, len(all))
	for _, t := range all {
		titles[t.ID] = t.Title
	}
	return titles, nil
}

func pinnedAsEngineBlocks(blocks []*domain.StudyBlock) []scheduler.Block {
	var pinned []scheduler.Block
	for _, b := range blocks {
		if b.IsPinned {
			pinned = append(pinned, scheduler.Block{
				TaskID:     b.TaskID,
				Start:      b.Start,
				End:        b.End,
				BlockIndex: b.BlockIndex,
				Pinned:     true,
			})
		}
	}
	return pinned
}

func engineBlocksToDomain(blocks []scheduler.Block, userID string) []*domain.StudyBlock {
	out := make([]*domain.StudyBlock, 0, len(blocks))
	for _, b := range blocks {
		out = append(out, &domain.StudyBlock{
			UserID:     userID,
			TaskID:     b.TaskID,
			Start:      b.Start,
			End:        b.End,
			BlockIndex: b.BlockIndex,
			IsPinned:   b.Pinned,
		})
	}
	return out
}
