package models

import "time"

// Subject represents a taught subject with its weekly hour quota. A subject
// is valid for teachers and classes sharing its level; compatible teachers
// share its branch.
type Subject struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Branch      string    `db:"branch" json:"branch"`
	Level       Level     `db:"level" json:"level"`
	WeeklyHours int       `db:"weekly_hours" json:"weeklyHours"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// SubjectFilter captures supported filters for listing subjects.
type SubjectFilter struct {
	Branch    string
	Level     string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
