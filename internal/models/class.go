package models

import "time"

// Class represents a homeroom section, e.g. "3A" at İlkokul.
type Class struct {
	ID        string    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Level     Level     `db:"level" json:"level"`
	TeacherID *string   `db:"teacher_id" json:"teacherId,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ClassDetail extends Class with the homeroom teacher's name when assigned.
type ClassDetail struct {
	Class
	TeacherName *string `db:"teacher_name" json:"teacherName,omitempty"`
}

// ClassFilter defines filter criteria for listing classes.
type ClassFilter struct {
	Level     string
	Search    string
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
