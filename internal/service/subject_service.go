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

type subjectRepository interface {
	List(ctx context.Context, filter models.SubjectFilter) ([]models.Subject, int, error)
	ListAll(ctx context.Context) ([]models.Subject, error)
	FindByID(ctx context.Context, id string) (*models.Subject, error)
	ExistsByName(ctx context.Context, name string, level models.Level, excludeID string) (bool, error)
	Create(ctx context.Context, subject *models.Subject) error
	Update(ctx context.Context, subject *models.Subject) error
	Delete(ctx context.Context, id string) error
}

// SubjectService orchestrates subject roster operations.
type SubjectService struct {
	repo      subjectRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewSubjectService constructs a SubjectService.
func NewSubjectService(repo subjectRepository, validate *validator.Validate, logger *zap.Logger) *SubjectService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{repo: repo, validator: validate, logger: logger}
}

// List returns subjects plus pagination data.
func (s *SubjectService) List(ctx context.Context, query dto.ListSubjectsQuery) ([]models.Subject, *models.Pagination, error) {
	filter := models.SubjectFilter{
		Search:    strings.TrimSpace(query.Search),
		Branch:    strings.TrimSpace(query.Branch),
		Level:     strings.TrimSpace(query.Level),
		Page:      query.Page,
		PageSize:  query.PageSize,
		SortBy:    query.SortBy,
		SortOrder: query.SortOrder,
	}
	subjects, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
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
	return subjects, pagination, nil
}

// ListAll returns the full subject catalogue ordered by name.
func (s *SubjectService) ListAll(ctx context.Context) ([]models.Subject, error) {
	subjects, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	return subjects, nil
}

// Get returns a subject by id.
func (s *SubjectService) Get(ctx context.Context, id string) (*models.Subject, error) {
	subject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	return subject, nil
}

// Create registers a new subject record.
func (s *SubjectService) Create(ctx context.Context, req dto.CreateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}
	name := strings.TrimSpace(req.Name)
	level := models.Level(req.Level)
	if err := s.ensureUniqueName(ctx, name, level, ""); err != nil {
		return nil, err
	}

	subject := &models.Subject{
		Name:        name,
		Branch:      strings.TrimSpace(req.Branch),
		Level:       level,
		WeeklyHours: req.WeeklyHours,
	}
	if err := s.repo.Create(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create subject")
	}
	return subject, nil
}

// Update modifies an existing subject. Omitted fields are left untouched.
func (s *SubjectService) Update(ctx context.Context, id string, req dto.UpdateSubjectRequest) (*models.Subject, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid subject payload")
	}

	subject, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}

	name := subject.Name
	level := subject.Level
	if req.Name != nil {
		name = strings.TrimSpace(*req.Name)
	}
	if req.Level != nil {
		level = models.Level(*req.Level)
	}
	if name != subject.Name || level != subject.Level {
		if err := s.ensureUniqueName(ctx, name, level, id); err != nil {
			return nil, err
		}
	}
	subject.Name = name
	subject.Level = level
	if req.Branch != nil {
		subject.Branch = strings.TrimSpace(*req.Branch)
	}
	if req.WeeklyHours != nil {
		subject.WeeklyHours = *req.WeeklyHours
	}

	if err := s.repo.Update(ctx, subject); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update subject")
	}
	return subject, nil
}

// Delete removes a subject record.
func (s *SubjectService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "subject not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load subject")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete subject")
	}
	s.logger.Info("subject deleted", zap.String("subject_id", id))
	return nil
}

func (s *SubjectService) ensureUniqueName(ctx context.Context, name string, level models.Level, excludeID string) error {
	exists, err := s.repo.ExistsByName(ctx, name, level, excludeID)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check subject name uniqueness")
	}
	if exists {
		return appErrors.Clone(appErrors.ErrConflict, "subject name already used for level")
	}
	return nil
}
