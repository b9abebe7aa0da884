package models

import "time"

// Teacher represents an instructor record. Branch is the subject area the
// teacher covers, Level the school level they are scheduled at.
type Teacher struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Branch    string    `db:"branch" json:"branch"`
	Level     Level     `db:"level" json:"level"`
	Active    bool      `db:"active" json:"active"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// TeacherFilter captures filtering options for listing teachers.
type TeacherFilter struct {
	Search    string
	Branch    string
	Level     string
	Active    *bool
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
