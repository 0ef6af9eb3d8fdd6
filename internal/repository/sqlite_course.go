package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/studyweave/studyweave/internal/db"
	"github.com/studyweave/studyweave/internal/domain"
)

const courseColumns = `id, user_id, name, code, color, created_at, updated_at`

// SQLiteCourseRepo implements CourseRepo on a SQLite connection or
// transaction.
type SQLiteCourseRepo struct {
	db db.DBTX
}

// NewSQLiteCourseRepo creates a new SQLiteCourseRepo.
func NewSQLiteCourseRepo(db db.DBTX) *SQLiteCourseRepo {
	return &SQLiteCourseRepo{db: db}
}

func (r *SQLiteCourseRepo) Create(ctx context.Context, c *domain.Course) error {
	now := nowUTC()
	c.CreatedAt = now
	c.UpdatedAt = now

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO courses (user_id, name, code, color, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.UserID, c.Name, c.Code, c.Color, formatTime(c.CreatedAt), formatTime(c.UpdatedAt))
	if err != nil {
		return fmt.Errorf("inserting course: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading course id: %w", err)
	}
	return nil
}

func (r *SQLiteCourseRepo) GetByID(ctx context.Context, userID string, id int64) (*domain.Course, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE id = ? AND user_id = ?`, id, userID)
	c, err := scanCourse(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("course %d: %w", id, ErrNotFound)
		}
		return nil, err
	}
	return c, nil
}

func (r *SQLiteCourseRepo) List(ctx context.Context, userID string) ([]*domain.Course, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+courseColumns+` FROM courses WHERE user_id = ? ORDER BY name, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*domain.Course
	for rows.Next() {
		c, err := scanCourse(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}
	return courses, nil
}

func (r *SQLiteCourseRepo) Update(ctx context.Context, c *domain.Course) error {
	c.UpdatedAt = nowUTC()
	res, err := r.db.ExecContext(ctx,
		`UPDATE courses SET name = ?, code = ?, color = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`,
		c.Name, c.Code, c.Color, formatTime(c.UpdatedAt), c.ID, c.UserID)
	if err != nil {
		return fmt.Errorf("updating course: %w", err)
	}
	return requireRowAffected(res, "course", c.ID)
}

func (r *SQLiteCourseRepo) Delete(ctx context.Context, userID string, id int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM courses WHERE id = ? AND user_id = ?`, id, userID)
	if err != nil {
		return fmt.Errorf("deleting course: %w", err)
	}
	return requireRowAffected(res, "course", id)
}

func scanCourse(row rowScanner) (*domain.Course, error) {
	var c domain.Course
	var createdStr, updatedStr string
	if err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Code, &c.Color, &createdStr, &updatedStr); err != nil {
		return nil, err
	}
	var err error
	if c.CreatedAt, err = parseTime(createdStr, "created_at"); err != nil {
		return nil, err
	}
	if c.UpdatedAt, err = parseTime(updatedStr, "updated_at"); err != nil {
		return nil, err
	}
	return &c, nil
}
