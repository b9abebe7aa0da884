package service

import (
	"context"
	"database/sql"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulsys/ders-programi-api/internal/dto"
	"github.com/okulsys/ders-programi-api/internal/models"
	appErrors "github.com/okulsys/ders-programi-api/pkg/errors"
)

type classRepository interface {
	List(ctx context.Context, filter models.ClassFilter) ([]models.Class, int, error)
	ListAll(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
	FindDetailByID(ctx context.Context, id string) (*models.ClassDetail, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, class *models.Class) error
	Update(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id string) error
}

type classTeacherLookup interface {
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
}

// ClassService orchestrates class roster operations.
type ClassService struct {
	repo      classRepository
	teachers  classTeacherLookup
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs a ClassService.
func NewClassService(repo classRepository, teachers classTeacherLookup, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, teachers: teachers, validator: validate, logger: logger}
}

// List returns classes plus pagination data.
func (s *ClassService) List(ctx context.Context, query dto.ListClassesQuery) ([]models.Class, *models.Pagination, error) {
	filter := models.ClassFilter{
		Search:    strings.TrimSpace(query.Search),
		Level:     strings.TrimSpace(query.Level),
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}
	classes, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size <= 0 {
		size = 20
	}
	pagination := &models.Pagination{Page: page, PageSize: size, TotalCount: total}
	return classes, pagination, nil
}

// ListAll returns the full class roster ordered by name.
func (s *ClassService) ListAll(ctx context.Context) ([]models.Class, error) {
	classes, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	return classes, nil
}

// Get returns a class with its homeroom teacher name resolved.
func (s *ClassService) Get(ctx context.Context, id string) (*models.ClassDetail, error) {
	detail, err := s.repo.FindDetailByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	return detail, nil
}

// Create registers a new class record.
func (s *ClassService) Create(ctx context.Context, req dto.CreateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}
	name := strings.TrimSpace(req.Name)
	if err := s.ensureUniqueName(ctx, name, ""); err != nil {
		return nil, err
	}
	if err := s.ensureTeacherExists(ctx, req.TeacherID); err != nil {
		return nil, err
	}

	class := &models.Class{
		Name:      name,
		Level:     models.Level(req.Level),
		TeacherID: req.TeacherID,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}
	return class, nil
}

// Update modifies an existing class. Omitted fields are left untouched.
func (s *ClassService) Update(ctx context.Context, id string, req dto.UpdateClassRequest) (*models.Class, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid class payload")
	}

	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name != class.Name {
			if err := s.ensureUniqueName(ctx, name, id); err != nil {
				return nil, err
			}
		}
		class.Name = name
	}
	if req.Level != nil {
		class.Level = models.Level(*req.Level)
	}
	if req.TeacherID != nil {
		if err := s.ensureTeacherExists(ctx, req.TeacherID); err != nil {
			return nil, err
		}
		class.TeacherID = req.TeacherID
	}

	if err := s.repo.Update(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update class")
	}
	return class, nil
}

// Delete removes a class record.
func (s *ClassService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	s.logger.Info("class deleted", zap.String("class_id", id))
	return nil
}

func (s *ClassService) ensureUniqueName(ctx context.Context, name, excludeID string) error {
	exists, err := s.repo.ExistsByName(ctx, name, excludeID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check class name uniqueness")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "class name already used")
	}
	return nil
}

func (s *ClassService) ensureTeacherExists(ctx context.Context, teacherID *string) error {
	if teacherID == nil || s.teachers == nil {
		return nil
	}
	if _, err := s.teachers.FindByID(ctx, *teacherID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrValidation, "homeroom teacher not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load homeroom teacher")
	}
	return nil
}
