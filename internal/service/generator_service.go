package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/okulsys/ders-programi-api/internal/dto"
	"github.com/okulsys/ders-programi-api/internal/models"
	"github.com/okulsys/ders-programi-api/internal/schedule"
	"github.com/okulsys/ders-programi-api/pkg/config"
	appErrors "github.com/okulsys/ders-programi-api/pkg/errors"
)

type generatorTimetableSink interface {
	SaveTeacherTimetable(ctx context.Context, teacherID string, req dto.SaveTimetableRequest) (*dto.SaveTimetableResponse, error)
}

// GeneratorService runs the auto-generation engine over the current roster
// and persists accepted results through the timetable save boundary.
type GeneratorService struct {
	teachers   rosterTeacherSource
	classes    rosterClassSource
	subjects   rosterSubjectSource
	timetables generatorTimetableSink
	cfg        config.SchedulerConfig
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewGeneratorService constructs a GeneratorService.
func NewGeneratorService(
	teachers rosterTeacherSource,
	classes rosterClassSource,
	subjects rosterSubjectSource,
	timetables generatorTimetableSink,
	cfg config.SchedulerConfig,
	validate *validator.Validate,
	logger *zap.Logger,
) *GeneratorService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &GeneratorService{
		teachers:   teachers,
		classes:    classes,
		subjects:   subjects,
		timetables: timetables,
		cfg:        cfg,
		validator:  validate,
		logger:     logger,
	}
}

// Generate runs one engine pass over the full roster. Nothing is persisted;
// callers review the result and commit it through Apply.
func (s *GeneratorService) Generate(ctx context.Context, req dto.GenerateTimetablesRequest) (*dto.GenerateTimetablesResponse, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "scheduler is disabled")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid generation payload")
	}

	opts := s.resolveOptions(req)
	if problems := opts.Validate(); len(problems) > 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, strings.Join(problems, "; "))
	}

	teachers, err := s.teachers.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list teachers")
	}
	classes, err := s.classes.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	subjects, err := s.subjects.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}

	engine := schedule.NewEngine(opts, s.logger)
	result := engine.Generate(ctx, activeTeachers(teachers), classes, subjects)

	return &dto.GenerateTimetablesResponse{
		Success:    result.Success,
		Schedules:  result.Schedules,
		Warnings:   result.Warnings,
		Conflicts:  result.Conflicts,
		Statistics: result.Statistics,
	}, nil
}

// Apply persists a reviewed generation result teacher by teacher. Each grid
// passes through the regular save validation, so a grid that conflicts with
// timetables saved since generation is rejected and reported as a warning.
func (s *GeneratorService) Apply(ctx context.Context, req dto.ApplyGenerationRequest) (*dto.ApplyGenerationResponse, error) {
	if !s.cfg.Enabled {
		return nil, appErrors.Clone(appErrors.ErrPreconditionFailed, "scheduler is disabled")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid apply payload")
	}

	resp := &dto.ApplyGenerationResponse{}
	for _, tt := range req.Schedules {
		if tt.TeacherID == "" {
			resp.Warnings = append(resp.Warnings, "schedule without teacher id skipped")
			continue
		}
		saved, err := s.timetables.SaveTeacherTimetable(ctx, tt.TeacherID, dto.SaveTimetableRequest{Schedule: tt.Schedule})
		if err != nil {
			if saved != nil && !saved.Validation.IsValid {
				resp.Warnings = append(resp.Warnings, saved.Validation.Errors...)
				continue
			}
			return nil, err
		}
		resp.Saved++
		resp.Warnings = append(resp.Warnings, saved.Validation.Warnings...)
	}

	s.logger.Info("generation applied",
		zap.Int("saved", resp.Saved),
		zap.Int("skipped", len(req.Schedules)-resp.Saved))
	return resp, nil
}

// resolveOptions merges per-request overrides over the configured defaults.
func (s *GeneratorService) resolveOptions(req dto.GenerateTimetablesRequest) schedule.Options {
	opts := schedule.DefaultOptions()
	if s.cfg.MaxDailyHours > 0 {
		opts.MaxDailyHours = s.cfg.MaxDailyHours
	}
	if s.cfg.Mode != "" {
		opts.Mode = schedule.GenerationMode(s.cfg.Mode)
	}
	opts.AvoidConsecutive = s.cfg.AvoidConsecutive
	opts.PrioritizeCore = s.cfg.PrioritizeCore
	opts.RespectTimeSlots = s.cfg.RespectTimeSlots
	opts.PreferMorningHours = s.cfg.PreferMorningHours

	if req.MaxDailyHours != nil {
		opts.MaxDailyHours = *req.MaxDailyHours
	}
	if req.Mode != nil {
		opts.Mode = schedule.GenerationMode(*req.Mode)
	}
	if req.AvoidConsecutive != nil {
		opts.AvoidConsecutive = *req.AvoidConsecutive
	}
	if req.PrioritizeCore != nil {
		opts.PrioritizeCore = *req.PrioritizeCore
	}
	if req.RespectTimeSlots != nil {
		opts.RespectTimeSlots = *req.RespectTimeSlots
	}
	if req.PreferMorningHours != nil {
		opts.PreferMorningHours = *req.PreferMorningHours
	}
	return opts
}

func activeTeachers(teachers []models.Teacher) []models.Teacher {
	out := make([]models.Teacher, 0, len(teachers))
	for _, t := range teachers {
		if t.Active {
			out = append(out, t)
		}
	}
	return out
}
