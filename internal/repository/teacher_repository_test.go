package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulsys/ders-programi-api/internal/models"
)

func newRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestTeacherRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "branch", "level", "active", "created_at", "updated_at"}).
		AddRow("t1", "Ayşe Yılmaz", "Matematik", "İlkokul", true, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, branch, level, active, created_at, updated_at FROM teachers WHERE 1=1 ORDER BY created_at DESC LIMIT 20 OFFSET 0")).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM teachers WHERE 1=1")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	list, total, err := repo.List(context.Background(), models.TeacherFilter{})
	require.NoError(t, err)
	assert.Len(t, list, 1)
	assert.Equal(t, 1, total)
	assert.Equal(t, "Ayşe Yılmaz", list[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryListFilters(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	active := true
	mock.ExpectQuery(regexp.QuoteMeta("FROM teachers WHERE 1=1 AND active = $1 AND branch = $2 ORDER BY name ASC LIMIT 10 OFFSET 10")).
		WithArgs(true, "Matematik").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "branch", "level", "active", "created_at", "updated_at"}))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM teachers WHERE 1=1 AND active = $1 AND branch = $2")).
		WithArgs(true, "Matematik").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	_, total, err := repo.List(context.Background(), models.TeacherFilter{
		Active:    &active,
		Branch:    "Matematik",
		SortBy:    "name",
		SortOrder: "asc",
		Page:      2,
		PageSize:  10,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, branch, level, active, created_at, updated_at FROM teachers WHERE id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryCreateAndUpdate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectExec("INSERT INTO teachers").
		WithArgs(sqlmock.AnyArg(), "Ayşe Yılmaz", "Matematik", "İlkokul", true, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	teacher := &models.Teacher{Name: "Ayşe Yılmaz", Branch: "Matematik", Level: models.LevelIlkokul, Active: true}
	require.NoError(t, repo.Create(context.Background(), teacher))
	assert.NotEmpty(t, teacher.ID)

	mock.ExpectExec("UPDATE teachers SET").
		WithArgs("Ayşe Yılmaz", "Türkçe", "İlkokul", true, sqlmock.AnyArg(), teacher.ID).
		WillReturnResult(sqlmock.NewResult(1, 1))

	teacher.Branch = "Türkçe"
	require.NoError(t, repo.Update(context.Background(), teacher))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryExistsByName(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM teachers WHERE LOWER(name) = LOWER($1) LIMIT 1")).
		WithArgs("Ayşe Yılmaz").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	exists, err := repo.ExistsByName(context.Background(), "Ayşe Yılmaz", "")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM teachers WHERE LOWER(name) = LOWER($1) AND id <> $2 LIMIT 1")).
		WithArgs("Ayşe Yılmaz", "t1").
		WillReturnError(sql.ErrNoRows)

	exists, err = repo.ExistsByName(context.Background(), "Ayşe Yılmaz", "t1")
	require.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTeacherRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewTeacherRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM teachers WHERE id = $1")).
		WithArgs("t1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Delete(context.Background(), "t1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
