package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
)

const versionColumns = `id, user_id, version_number, trigger_reason, snapshot, diff_summary, created_at`

// SQLitePlanVersionRepo implements PlanVersionRepo on a SQLite
// connection or transaction. Versions are append-only; there is no
// update or delete.
type SQLitePlanVersionRepo struct {
	db db.DBTX
}

// NewSQLitePlanVersionRepo creates a new SQLitePlanVersionRepo.
func NewSQLitePlanVersionRepo(db db.DBTX) *SQLitePlanVersionRepo {
	return &SQLitePlanVersionRepo{db: db}
}

func (r *SQLitePlanVersionRepo) Create(ctx context.Context, v *domain.PlanVersion) error {
	v.CreatedAt = nowUTC()

	snapshot, err := json.Marshal(v.Snapshot)
	if err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO plan_versions (user_id, version_number, trigger_reason, snapshot, diff_summary, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		v.UserID, v.VersionNumber, v.Trigger, string(snapshot), v.DiffSummary, formatTime(v.CreatedAt))
	if err != nil {
		return fmt.Errorf("inserting plan version: %w", err)
	}
	v.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading plan version id: %w", err)
	}
	return nil
}

func (r *SQLitePlanVersionRepo) GetByNumber(ctx context.Context, userID string, number int) (*domain.PlanVersion, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+versionColumns+` FROM plan_versions WHERE user_id = ? AND version_number = ?`,
		userID, number)
	v, err := scanPlanVersion(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plan version %d: %w", number, ErrNotFound)
		}
		return nil, err
	}
	return v, nil
}

// List returns the user's versions newest first.
func (r *SQLitePlanVersionRepo) List(ctx context.Context, userID string) ([]*domain.PlanVersion, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+versionColumns+` FROM plan_versions WHERE user_id = ? ORDER BY version_number DESC`,
		userID)
	if err != nil {
		return nil, fmt.Errorf("listing plan versions: %w", err)
	}
	defer rows.Close()

	var versions []*domain.PlanVersion
	for rows.Next() {
		v, err := scanPlanVersion(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning plan version: %w", err)
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plan versions: %w", err)
	}
	return versions, nil
}

// MaxVersionNumber returns 0 for a user with no versions yet.
func (r *SQLitePlanVersionRepo) MaxVersionNumber(ctx context.Context, userID string) (int, error) {
	var maxNumber int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(MAX(version_number), 0) FROM plan_versions WHERE user_id = ?`,
		userID).Scan(&maxNumber)
	if err != nil {
		return 0, fmt.Errorf("reading max version number: %w", err)
	}
	return maxNumber, nil
}

func scanPlanVersion(row rowScanner) (*domain.PlanVersion, error) {
	var v domain.PlanVersion
	var snapshotStr, createdStr string

	err := row.Scan(&v.ID, &v.UserID, &v.VersionNumber, &v.Trigger, &snapshotStr, &v.DiffSummary, &createdStr)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(snapshotStr), &v.Snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if v.CreatedAt, err = parseTime(createdStr, "created_at"); err != nil {
		return nil, err
	}
	return &v, nil
}
