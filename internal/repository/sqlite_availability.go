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

// SQLiteAvailabilityRepo implements AvailabilityRepo on a SQLite
// connection or transaction. The grid and rules are stored as JSON
// text in a single row per user.
type SQLiteAvailabilityRepo struct {
	db db.DBTX
}

// NewSQLiteAvailabilityRepo creates a new SQLiteAvailabilityRepo.
func NewSQLiteAvailabilityRepo(db db.DBTX) *SQLiteAvailabilityRepo {
	return &SQLiteAvailabilityRepo{db: db}
}

// Get returns the user's grid and rules. A user who never saved either
// gets an all-unavailable grid and the default rules.
func (r *SQLiteAvailabilityRepo) Get(ctx context.Context, userID string) (*domain.WeekGrid, *domain.SchedulingRules, error) {
	var gridStr, rulesStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT grid, rules FROM availability WHERE user_id = ?`, userID).
		Scan(&gridStr, &rulesStr)
	if errors.Is(err, sql.ErrNoRows) {
		rules := domain.DefaultSchedulingRules()
		return &domain.WeekGrid{}, &rules, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("loading availability: %w", err)
	}

	var grid domain.WeekGrid
	if err := json.Unmarshal([]byte(gridStr), &grid.Days); err != nil {
		return nil, nil, fmt.Errorf("decoding grid: %w", err)
	}
	var rules domain.SchedulingRules
	if err := json.Unmarshal([]byte(rulesStr), &rules); err != nil {
		return nil, nil, fmt.Errorf("decoding rules: %w", err)
	}
	return &grid, &rules, nil
}

func (r *SQLiteAvailabilityRepo) Upsert(ctx context.Context, userID string, grid *domain.WeekGrid, rules *domain.SchedulingRules) error {
	gridJSON, err := json.Marshal(grid.Days)
	if err != nil {
		return fmt.Errorf("encoding grid: %w", err)
	}
	rulesJSON, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO availability (user_id, grid, rules, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE
		SET grid = excluded.grid, rules = excluded.rules, updated_at = excluded.updated_at`,
		userID, string(gridJSON), string(rulesJSON), formatTime(nowUTC()))
	if err != nil {
		return fmt.Errorf("upserting availability: %w", err)
	}
	return nil
}
