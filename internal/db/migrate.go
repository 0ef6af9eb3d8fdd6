package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and the
// full list is replayed on every startup; ALTER TABLE duplicates are
// tolerated so older databases pick up later columns.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS courses (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id    TEXT NOT NULL,
		name       TEXT NOT NULL,
		code       TEXT NOT NULL DEFAULT '',
		color      TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_courses_user ON courses(user_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id                INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id           TEXT NOT NULL,
		course_id         INTEGER REFERENCES courses(id) ON DELETE SET NULL,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		due_date          TEXT NOT NULL,
		estimated_hours   REAL,
		difficulty        INTEGER NOT NULL DEFAULT 3
		                  CHECK(difficulty BETWEEN 1 AND 5),
		priority          TEXT NOT NULL DEFAULT 'medium'
		                  CHECK(priority IN ('critical','high','medium','low')),
		type              TEXT NOT NULL DEFAULT 'assignment',
		focus_load        TEXT NOT NULL DEFAULT 'medium'
		                  CHECK(focus_load IN ('light','medium','deep')),
		status            TEXT NOT NULL DEFAULT 'active'
		                  CHECK(status IN ('active','completed','archived')),
		splittable        INTEGER NOT NULL DEFAULT 1,
		min_block_minutes INTEGER NOT NULL DEFAULT 30,
		max_block_minutes INTEGER NOT NULL DEFAULT 120,
		completed_at      TEXT,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_tasks_user ON tasks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date)`,

	`CREATE TABLE IF NOT EXISTS plan_versions (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id        TEXT NOT NULL,
		version_number INTEGER NOT NULL,
		trigger_reason TEXT NOT NULL,
		snapshot       TEXT NOT NULL DEFAULT '[]',
		diff_summary   TEXT NOT NULL DEFAULT '',
		created_at     TEXT NOT NULL
	)`,

	`CREATE UNIQUE INDEX IF NOT EXISTS idx_plan_versions_user_number
		ON plan_versions(user_id, version_number)`,

	`CREATE TABLE IF NOT EXISTS study_blocks (
		id              INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id         TEXT NOT NULL,
		task_id         INTEGER NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		plan_version_id INTEGER REFERENCES plan_versions(id) ON DELETE SET NULL,
		start_time      TEXT NOT NULL,
		end_time        TEXT NOT NULL,
		block_index     INTEGER NOT NULL DEFAULT 0,
		is_pinned       INTEGER NOT NULL DEFAULT 0,
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_blocks_user ON study_blocks(user_id)`,
	`CREATE INDEX IF NOT EXISTS idx_study_blocks_task ON study_blocks(task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_study_blocks_start ON study_blocks(start_time)`,

	// One row per user; the grid is 7x96 booleans and the rules a small
	// settings struct, both stored as JSON text.
	`CREATE TABLE IF NOT EXISTS availability (
		user_id    TEXT PRIMARY KEY,
		grid       TEXT NOT NULL,
		rules      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS energy_profiles (
		user_id       TEXT PRIMARY KEY,
		profile_type  TEXT NOT NULL DEFAULT 'balanced'
		              CHECK(profile_type IN ('morning_person','night_owl','balanced','custom')),
		hourly_scores TEXT NOT NULL DEFAULT '[]',
		updated_at    TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS review_states (
		task_id     INTEGER PRIMARY KEY REFERENCES tasks(id) ON DELETE CASCADE,
		user_id     TEXT NOT NULL,
		repetitions INTEGER NOT NULL DEFAULT 0,
		easiness    REAL NOT NULL DEFAULT 2.5,
		interval    INTEGER NOT NULL DEFAULT 1,
		last_review TEXT,
		next_review TEXT,
		updated_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_review_states_user ON review_states(user_id)`,
}
