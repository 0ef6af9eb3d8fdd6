package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
)

const blockColumns = `id, user_id, task_id, plan_version_id, start_time, end_time,
		block_index, is_pinned, created_at, updated_at`

// SQLiteBlockRepo implements BlockRepo on a SQLite connection or
// transaction.
type SQLiteBlockRepo struct {
	db db.DBTX
}

// NewSQLiteBlockRepo creates a new SQLiteBlockRepo.
func NewSQLiteBlockRepo(db db.DBTX) *SQLiteBlockRepo {
	return &SQLiteBlockRepo{db: db}
}

func (r *SQLiteBlockRepo) Create(ctx context.Context, b *domain.StudyBlock) error {
	now := nowUTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO study_blocks (user_id, task_id, plan_version_id, start_time, end_time,
			block_index, is_pinned, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		b.UserID,
		b.TaskID,
		nullableInt64ToValue(b.PlanVersionID),
		formatTime(b.Start),
		formatTime(b.End),
		b.BlockIndex,
		boolToInt(b.IsPinned),
		formatTime(b.CreatedAt),
		formatTime(b.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting study block: %w", err)
	}
	b.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading study block id: %w", err)
	}
	return nil
}

func (r *SQLiteBlockRepo) GetByID(ctx context.Context, userID string, id int64) (*domain.StudyBlock, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+blockColumns+` FROM study_blocks WHERE id = ? AND user_id = ?`, id, userID)
	b, err := scanBlock(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("study block %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return b, nil
}

func (r *SQLiteBlockRepo) List(ctx context.Context, userID string) ([]*domain.StudyBlock, error) {
	return r.list(ctx,
		`SELECT `+blockColumns+` FROM study_blocks WHERE user_id = ? ORDER BY start_time, id`,
		userID)
}

func (r *SQLiteBlockRepo) ListPinned(ctx context.Context, userID string) ([]*domain.StudyBlock, error) {
	return r.list(ctx,
		`SELECT `+blockColumns+` FROM study_blocks WHERE user_id = ? AND is_pinned = 1 ORDER BY start_time, id`,
		userID)
}

func (r *SQLiteBlockRepo) list(ctx context.Context, query string, args ...any) ([]*domain.StudyBlock, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing study blocks: %w", err)
	}
	defer rows.Close()

	var blocks []*domain.StudyBlock
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning study block: %w", err)
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating study blocks: %w", err)
	}
	return blocks, nil
}

func (r *SQLiteBlockRepo) Update(ctx context.Context, b *domain.StudyBlock) error {
	b.UpdatedAt = nowUTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE study_blocks SET task_id = ?, plan_version_id = ?, start_time = ?, end_time = ?,
			block_index = ?, is_pinned = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		b.TaskID,
		nullableInt64ToValue(b.PlanVersionID),
		formatTime(b.Start),
		formatTime(b.End),
		b.BlockIndex,
		boolToInt(b.IsPinned),
		formatTime(b.UpdatedAt),
		b.ID,
		b.UserID,
	)
	if err != nil {
		return fmt.Errorf("updating study block: %w", err)
	}
	return requireRowAffected(res, "study block", b.ID)
}

// DeleteUnpinned clears every block a replan is allowed to replace.
func (r *SQLiteBlockRepo) DeleteUnpinned(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM study_blocks WHERE user_id = ? AND is_pinned = 0`, userID); err != nil {
		return fmt.Errorf("deleting unpinned blocks: %w", err)
	}
	return nil
}

// DeleteAll clears the user's whole plan; rollback rebuilds it from a
// version snapshot afterwards.
func (r *SQLiteBlockRepo) DeleteAll(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM study_blocks WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting blocks: %w", err)
	}
	return nil
}

func scanBlock(row rowScanner) (*domain.StudyBlock, error) {
	var b domain.StudyBlock
	var versionID sql.NullInt64
	var pinnedInt int
	var startStr, endStr, createdStr, updatedStr string

	err := row.Scan(
		&b.ID, &b.UserID, &b.TaskID, &versionID, &startStr, &endStr,
		&b.BlockIndex, &pinnedInt, &createdStr, &updatedStr,
	)
	if err != nil {
		return nil, err
	}

	if versionID.Valid {
		b.PlanVersionID = &versionID.Int64
	}
	b.IsPinned = intToBool(pinnedInt)

	if b.Start, err = parseTime(startStr, "start_time"); err != nil {
		return nil, err
	}
	if b.End, err = parseTime(endStr, "end_time"); err != nil {
		return nil, err
	}
	if b.CreatedAt, err = parseTime(createdStr, "created_at"); err != nil {
		return nil, err
	}
	if b.UpdatedAt, err = parseTime(updatedStr, "updated_at"); err != nil {
		return nil, err
	}
	return &b, nil
}
