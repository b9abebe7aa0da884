package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulsys/ders-programi-api/internal/models"
)

func timetableRows(t *testing.T, tt models.Timetable) *sqlmock.Rows {
	raw, err := json.Marshal(tt.Schedule)
	require.NoError(t, err)
	return sqlmock.NewRows([]string{"id", "teacher_id", "schedule", "created_at", "updated_at"}).
		AddRow(tt.ID, tt.TeacherID, raw, time.Now(), time.Now())
}

func TestTimetableRepositoryFindByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	grid := models.NewGrid()
	grid.Set("Pazartesi", "1", models.NewAssignedSlot("s1", "c1", ""))
	stored := models.Timetable{ID: "tt1", TeacherID: "t1", Schedule: grid}

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, teacher_id, schedule, created_at, updated_at FROM timetables WHERE teacher_id = $1")).
		WithArgs("t1").
		WillReturnRows(timetableRows(t, stored))

	tt, err := repo.FindByTeacher(context.Background(), "t1")
	require.NoError(t, err)
	slot := tt.Schedule.Slot("Pazartesi", "1")
	assert.Equal(t, "s1", slot.SubjectID)
	assert.Equal(t, "c1", slot.ClassID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryFindByTeacherNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM timetables WHERE teacher_id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByTeacher(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	mock.ExpectExec("INSERT INTO timetables .*ON CONFLICT \\(teacher_id\\) DO UPDATE").
		WithArgs(sqlmock.AnyArg(), "t1", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	tt := &models.Timetable{TeacherID: "t1", Schedule: models.NewGrid()}
	require.NoError(t, repo.Upsert(context.Background(), nil, tt))
	assert.NotEmpty(t, tt.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryUpsertRequiresTeacher(t *testing.T) {
	db, _, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	err := repo.Upsert(context.Background(), nil, &models.Timetable{Schedule: models.NewGrid()})
	assert.Error(t, err)
}

func TestTimetableRepositoryUpsertInTx(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO timetables").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	tx, err := repo.BeginTxx(context.Background(), nil)
	require.NoError(t, err)
	require.NoError(t, repo.Upsert(context.Background(), tx, &models.Timetable{TeacherID: "t1", Schedule: models.NewGrid()}))
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryDeleteByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM timetables WHERE teacher_id = $1")).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.DeleteByTeacher(context.Background(), "t1"))

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM timetables WHERE teacher_id = $1")).
		WithArgs("t2").
		WillReturnResult(sqlmock.NewResult(0, 0))
	err := repo.DeleteByTeacher(context.Background(), "t2")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTimetableRepositoryDeleteByTeachers(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTimetableRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM timetables WHERE teacher_id IN (?, ?)")).
		WithArgs("t1", "t2").
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.DeleteByTeachers(context.Background(), nil, []string{"t1", "t2"}))

	require.NoError(t, repo.DeleteByTeachers(context.Background(), nil, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
