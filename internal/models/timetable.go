package models

import "time"

// Timetable is one teacher's persisted weekly schedule. TeacherID is unique
// per row; the grid is stored as JSONB in the legacy wire encoding.
type Timetable struct {
	ID        string    `db:"id" json:"id"`
	TeacherID string    `db:"teacher_id" json:"teacherId"`
	Schedule  Grid      `db:"-" json:"schedule"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
