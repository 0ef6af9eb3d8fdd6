package domain

import "time"

type Course struct {
	ID        int64
	UserID    string
	Name      string
	Code      string
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
