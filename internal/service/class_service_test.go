package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/okulsys/ders-programi-api/internal/dto"
	"github.com/okulsys/ders-programi-api/internal/models"
)

type mockClassRepo struct {
	items      map[string]*models.Class
	nameIndex  map[string]string
	listResult []models.Class
	listTotal  int
	deleted    []string
}

func (m *mockClassRepo) List(ctx context.Context, filter models.ClassFilter) ([]models.Class, int, error) {
	return m.listResult, m.listTotal, nil
}

func (m *mockClassRepo) ListAll(ctx context.Context) ([]models.Class, error) {
	return m.listResult, nil
}

func (m *mockClassRepo) FindByID(ctx context.Context, id string) (*models.Class, error) {
	if class, ok := m.items[id]; ok {
		cp := *class
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockClassRepo) FindDetailByID(ctx context.Context, id string) (*models.ClassDetail, error) {
	if class, ok := m.items[id]; ok {
		return &models.ClassDetail{Class: *class}, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockClassRepo) ExistsByName(ctx context.Context, name, excludeID string) (bool, error) {
	if owner, ok := m.nameIndex[name]; ok {
		if excludeID == "" || owner != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockClassRepo) Create(ctx context.Context, class *models.Class) error {
	if m.items == nil {
		m.items = make(map[string]*models.Class)
	}
	if class.ID == "" {
		class.ID = "generated"
	}
	cp := *class
	m.items[class.ID] = &cp
	return nil
}

func (m *mockClassRepo) Update(ctx context.Context, class *models.Class) error {
	cp := *class
	m.items[class.ID] = &cp
	return nil
}

func (m *mockClassRepo) Delete(ctx context.Context, id string) error {
	m.deleted = append(m.deleted, id)
	delete(m.items, id)
	return nil
}

type mockTeacherLookup struct {
	items map[string]*models.Teacher
}

func (m *mockTeacherLookup) FindByID(ctx context.Context, id string) (*models.Teacher, error) {
	if teacher, ok := m.items[id]; ok {
		cp := *teacher
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func TestClassServiceCreate(t *testing.T) {
	repo := &mockClassRepo{}
	service := NewClassService(repo, &mockTeacherLookup{}, validator.New(), zap.NewNop())

	class, err := service.Create(context.Background(), dto.CreateClassRequest{
		Name:  "3A",
		Level: "İlkokul",
	})
	require.NoError(t, err)
	assert.Equal(t, "3A", class.Name)
	assert.Equal(t, models.LevelIlkokul, class.Level)
	assert.Nil(t, class.TeacherID)
}

func TestClassServiceCreateUnknownHomeroomTeacher(t *testing.T) {
	repo := &mockClassRepo{}
	service := NewClassService(repo, &mockTeacherLookup{}, validator.New(), zap.NewNop())

	teacherID := "aaaaaaaa-aaaa-4aaa-8aaa-aaaaaaaaaaaa"
	_, err := service.Create(context.Background(), dto.CreateClassRequest{
		Name:      "3A",
		Level:     "İlkokul",
		TeacherID: &teacherID,
	})
	require.Error(t, err)
	assert.Empty(t, repo.items)
}

func TestClassServiceCreateDuplicateName(t *testing.T) {
	repo := &mockClassRepo{nameIndex: map[string]string{"3A": "other"}}
	service := NewClassService(repo, &mockTeacherLookup{}, validator.New(), zap.NewNop())

	_, err := service.Create(context.Background(), dto.CreateClassRequest{
		Name:  "3A",
		Level: "İlkokul",
	})
	require.Error(t, err)
}

func TestClassServiceUpdatePartial(t *testing.T) {
	repo := &mockClassRepo{
		items: map[string]*models.Class{
			"c1": {ID: "c1", Name: "3A", Level: models.LevelIlkokul},
		},
	}
	service := NewClassService(repo, &mockTeacherLookup{}, validator.New(), zap.NewNop())

	name := "3B"
	updated, err := service.Update(context.Background(), "c1", dto.UpdateClassRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "3B", updated.Name)
	assert.Equal(t, models.LevelIlkokul, updated.Level)
}

func TestClassServiceGetNotFound(t *testing.T) {
	service := NewClassService(&mockClassRepo{}, &mockTeacherLookup{}, validator.New(), zap.NewNop())

	_, err := service.Get(context.Background(), "missing")
	require.Error(t, err)
}

func TestClassServiceDelete(t *testing.T) {
	repo := &mockClassRepo{
		items: map[string]*models.Class{
			"c1": {ID: "c1", Name: "3A", Level: models.LevelIlkokul},
		},
	}
	service := NewClassService(repo, &mockTeacherLookup{}, validator.New(), zap.NewNop())

	require.NoError(t, service.Delete(context.Background(), "c1"))
	assert.Equal(t, []string{"c1"}, repo.deleted)
}
