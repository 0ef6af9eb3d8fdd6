package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
	"github.com/studyweave/studyweave/internal/repository"
)

type versionService struct {
	versions repository.PlanVersionRepo
	uow      db.UnitOfWork
	logger   *zap.Logger
}

func NewVersionService(versions repository.PlanVersionRepo, uow db.UnitOfWork, logger *zap.Logger) VersionService {
	return &versionService{versions: versions, uow: uow, logger: logger}
}

func (s *versionService) List(ctx context.Context, userID string) ([]*domain.PlanVersion, error) {
	return s.versions.List(ctx, userID)
}

func (s *versionService) GetByNumber(ctx context.Context, userID string, number int) (*domain.PlanVersion, error) {
	return s.versions.GetByNumber(ctx, userID, number)
}

// Rollback recreates the block set captured by version `number` as a
// brand new version. The whole current plan, pinned blocks included, is
// replaced by the snapshot.
func (s *versionService) Rollback(ctx context.Context, userID string, number int) (*domain.PlanVersion, error) {
	var created *domain.PlanVersion
	var restored int
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txBlocks := repository.NewSQLiteBlockRepo(tx)
		txVersions := repository.NewSQLitePlanVersionRepo(tx)

		target, err := txVersions.GetByNumber(ctx, userID, number)
		if err != nil {
			return err
		}

		maxNumber, err := txVersions.MaxVersionNumber(ctx, userID)
		if err != nil {
			return err
		}

		// The new version snapshots the plan being replaced, so the
		// rollback itself can be rolled back.
		current, err := txBlocks.List(ctx, userID)
		if err != nil {
			return err
		}
		version := &domain.PlanVersion{
			UserID:        userID,
			VersionNumber: maxNumber + 1,
			Trigger:       fmt.Sprintf("rollback_to_v%d", number),
			Snapshot:      domain.SnapshotBlocks(current),
			DiffSummary:   fmt.Sprintf("Restored %d blocks from version %d", len(target.Snapshot), number),
		}
		if err := txVersions.Create(ctx, version); err != nil {
			return err
		}

		if err := txBlocks.DeleteAll(ctx, userID); err != nil {
			return err
		}
		for _, snap := range target.Snapshot {
			b := &domain.StudyBlock{
				UserID:        userID,
				TaskID:        snap.TaskID,
				PlanVersionID: &version.ID,
				Start:         snap.Start,
				End:           snap.End,
				BlockIndex:    snap.BlockIndex,
				IsPinned:      snap.IsPinned,
			}
			if err := txBlocks.Create(ctx, b); err != nil {
				return err
			}
		}

		created = version
		restored = len(target.Snapshot)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("plan rolled back",
		zap.String("user_id", userID),
		zap.Int("restored_version", number),
		zap.Int("new_version", created.VersionNumber),
		zap.Int("blocks", restored))

	return created, nil
}
