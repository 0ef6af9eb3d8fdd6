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

// SQLiteEnergyProfileRepo implements EnergyProfileRepo on a SQLite
// connection or transaction.
type SQLiteEnergyProfileRepo struct {
	db db.DBTX
}

// NewSQLiteEnergyProfileRepo creates a new SQLiteEnergyProfileRepo.
func NewSQLiteEnergyProfileRepo(db db.DBTX) *SQLiteEnergyProfileRepo {
	return &SQLiteEnergyProfileRepo{db: db}
}

// Get returns the user's energy profile. A user who never saved one
// gets a balanced profile with no stored hourly scores; callers resolve
// preset curves themselves.
func (r *SQLiteEnergyProfileRepo) Get(ctx context.Context, userID string) (*domain.EnergyProfile, error) {
	var typeStr, scoresStr string
	err := r.db.QueryRowContext(ctx,
		`SELECT profile_type, hourly_scores FROM energy_profiles WHERE user_id = ?`, userID).
		Scan(&typeStr, &scoresStr)
	if errors.Is(err, sql.ErrNoRows) {
		return &domain.EnergyProfile{Type: domain.ProfileBalanced}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading energy profile: %w", err)
	}

	p := &domain.EnergyProfile{Type: domain.EnergyProfileType(typeStr)}
	if scoresStr != "" && scoresStr != "[]" {
		var scores []float64
		if err := json.Unmarshal([]byte(scoresStr), &scores); err != nil {
			return nil, fmt.Errorf("decoding hourly scores: %w", err)
		}
		if len(scores) != 24 {
			return nil, fmt.Errorf("hourly scores: expected 24 values, got %d", len(scores))
		}
		copy(p.HourlyScores[:], scores)
	}
	return p, nil
}

func (r *SQLiteEnergyProfileRepo) Upsert(ctx context.Context, userID string, p *domain.EnergyProfile) error {
	scores, err := json.Marshal(p.HourlyScores[:])
	if err != nil {
		return fmt.Errorf("encoding hourly scores: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO energy_profiles (user_id, profile_type, hourly_scores, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE
		SET profile_type = excluded.profile_type,
			hourly_scores = excluded.hourly_scores,
			updated_at = excluded.updated_at`,
		userID, string(p.Type), string(scores), formatTime(nowUTC()))
	if err != nil {
		return fmt.Errorf("upserting energy profile: %w", err)
	}
	return nil
}
