package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/jmoiron/sqlx/types"

	"github.com/okulsys/ders-programi-api/internal/models"
)

// timetableRow is the storage shape of a timetable; the grid travels as JSONB
// in the legacy wire encoding.
type timetableRow struct {
	ID        string         `db:"id"`
	TeacherID string         `db:"teacher_id"`
	Schedule  types.JSONText `db:"schedule"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (row timetableRow) toModel() (models.Timetable, error) {
	tt := models.Timetable{
		ID:        row.ID,
		TeacherID: row.TeacherID,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
	if len(row.Schedule) > 0 {
		if err := json.Unmarshal(row.Schedule, &tt.Schedule); err != nil {
			return tt, fmt.Errorf("decode timetable %s grid: %w", row.ID, err)
		}
	}
	return tt, nil
}

// TimetableRepository persists per-teacher weekly timetables.
type TimetableRepository struct {
	db *sqlx.DB
}

// NewTimetableRepository constructs a TimetableRepository.
func NewTimetableRepository(db *sqlx.DB) *TimetableRepository {
	return &TimetableRepository{db: db}
}

func (r *TimetableRepository) exec(exec sqlx.ExtContext) sqlx.ExtContext {
	if exec != nil {
		return exec
	}
	return r.db
}

// BeginTxx opens a transaction for multi-timetable writes.
func (r *TimetableRepository) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	return r.db.BeginTxx(ctx, opts)
}

// ListAll returns every stored timetable with decoded grids.
func (r *TimetableRepository) ListAll(ctx context.Context) ([]models.Timetable, error) {
	const query = `SELECT id, teacher_id, schedule, created_at, updated_at FROM timetables ORDER BY created_at`
	var rows []timetableRow
	if err := r.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list timetables: %w", err)
	}

	timetables := make([]models.Timetable, 0, len(rows))
	for _, row := range rows {
		tt, err := row.toModel()
		if err != nil {
			return nil, err
		}
		timetables = append(timetables, tt)
	}
	return timetables, nil
}

// FindByTeacher returns the timetable owned by a teacher, sql.ErrNoRows when
// none is stored yet.
func (r *TimetableRepository) FindByTeacher(ctx context.Context, teacherID string) (*models.Timetable, error) {
	const query = `SELECT id, teacher_id, schedule, created_at, updated_at FROM timetables WHERE teacher_id = $1`
	var row timetableRow
	if err := r.db.GetContext(ctx, &row, query, teacherID); err != nil {
		return nil, err
	}
	tt, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &tt, nil
}

// Upsert stores a teacher's timetable, replacing any existing grid. teacher_id
// carries a unique constraint so one teacher owns exactly one timetable.
func (r *TimetableRepository) Upsert(ctx context.Context, exec sqlx.ExtContext, tt *models.Timetable) error {
	if tt.TeacherID == "" {
		return fmt.Errorf("teacher_id is required")
	}
	if tt.ID == "" {
		tt.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if tt.CreatedAt.IsZero() {
		tt.CreatedAt = now
	}
	tt.UpdatedAt = now

	raw, err := json.Marshal(tt.Schedule)
	if err != nil {
		return fmt.Errorf("encode timetable grid: %w", err)
	}

	row := timetableRow{
		ID:        tt.ID,
		TeacherID: tt.TeacherID,
		Schedule:  types.JSONText(raw),
		CreatedAt: tt.CreatedAt,
		UpdatedAt: tt.UpdatedAt,
	}

	const query = `
INSERT INTO timetables (id, teacher_id, schedule, created_at, updated_at)
VALUES (:id, :teacher_id, :schedule, :created_at, :updated_at)
ON CONFLICT (teacher_id) DO UPDATE SET schedule = EXCLUDED.schedule, updated_at = EXCLUDED.updated_at`
	if _, err := sqlx.NamedExecContext(ctx, r.exec(exec), query, row); err != nil {
		return fmt.Errorf("upsert timetable: %w", err)
	}
	return nil
}

// DeleteByTeacher removes a single teacher's timetable.
func (r *TimetableRepository) DeleteByTeacher(ctx context.Context, teacherID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM timetables WHERE teacher_id = $1`, teacherID)
	if err != nil {
		return fmt.Errorf("delete timetable: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("timetable rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// DeleteByTeachers removes all timetables owned by the given teachers in one
// statement, inside the caller's transaction when provided.
func (r *TimetableRepository) DeleteByTeachers(ctx context.Context, exec sqlx.ExtContext, teacherIDs []string) error {
	if len(teacherIDs) == 0 {
		return nil
	}
	query, args, err := sqlx.In(`DELETE FROM timetables WHERE teacher_id IN (?)`, teacherIDs)
	if err != nil {
		return fmt.Errorf("build timetable bulk delete: %w", err)
	}
	target := r.exec(exec)
	query = target.Rebind(query)
	if _, err := target.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("bulk delete timetables: %w", err)
	}
	return nil
}
