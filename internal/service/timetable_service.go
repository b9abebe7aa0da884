package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/okulsys/ders-programi-api/internal/dto"
	"github.com/okulsys/ders-programi-api/internal/models"
	"github.com/okulsys/ders-programi-api/internal/schedule"
	"github.com/okulsys/ders-programi-api/pkg/config"
	appErrors "github.com/okulsys/ders-programi-api/pkg/errors"
	"github.com/okulsys/ders-programi-api/pkg/export"
)

type timetableRepository interface {
	BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error)
	ListAll(ctx context.Context) ([]models.Timetable, error)
	FindByTeacher(ctx context.Context, teacherID string) (*models.Timetable, error)
	Upsert(ctx context.Context, exec sqlx.ExtContext, tt *models.Timetable) error
	DeleteByTeacher(ctx context.Context, teacherID string) error
	DeleteByTeachers(ctx context.Context, exec sqlx.ExtContext, teacherIDs []string) error
}

type rosterTeacherSource interface {
	ListAll(ctx context.Context) ([]models.Teacher, error)
	FindByID(ctx context.Context, id string) (*models.Teacher, error)
}

type rosterClassSource interface {
	ListAll(ctx context.Context) ([]models.Class, error)
	FindByID(ctx context.Context, id string) (*models.Class, error)
}

type rosterSubjectSource interface {
	ListAll(ctx context.Context) ([]models.Subject, error)
}

// TimetableService owns timetable persistence and the conflict boundary:
// every write passes through full schedule validation before it is stored.
type TimetableService struct {
	repo       timetableRepository
	teachers   rosterTeacherSource
	classes    rosterClassSource
	subjects   rosterSubjectSource
	cache      *CacheService
	projection config.ProjectionConfig
	timePlan   schedule.TimePlan
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewTimetableService constructs a TimetableService. The cache may be nil,
// in which case class view projections are computed on every request.
func NewTimetableService(
	repo timetableRepository,
	teachers rosterTeacherSource,
	classes rosterClassSource,
	subjects rosterSubjectSource,
	cache *CacheService,
	projection config.ProjectionConfig,
	validate *validator.Validate,
	logger *zap.Logger,
) *TimetableService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TimetableService{
		repo:       repo,
		teachers:   teachers,
		classes:    classes,
		subjects:   subjects,
		cache:      cache,
		projection: projection,
		timePlan:   schedule.DefaultTimePlan,
		validator:  validate,
		logger:     logger,
	}
}

// ListAll returns every stored timetable.
func (s *TimetableService) ListAll(ctx context.Context) ([]models.Timetable, error) {
	timetables, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timetables")
	}
	return timetables, nil
}

// GetTeacherTimetable returns the stored grid for a teacher with fixed rows
// merged in. A teacher without a stored timetable gets a fresh grid holding
// only the fixed periods of their level; nothing is persisted for it.
func (s *TimetableService) GetTeacherTimetable(ctx context.Context, teacherID string) (*models.Timetable, error) {
	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	tt, err := s.repo.FindByTeacher(ctx, teacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return &models.Timetable{TeacherID: teacherID, Schedule: schedule.InitializeGrid(teacher.Level)}, nil
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	tt.Schedule = schedule.MergeFixedPeriods(tt.Schedule, teacher.Level)
	return tt, nil
}

// SaveTeacherTimetable validates the candidate grid against every other
// stored timetable and persists it only when no conflict remains. The
// validation result is returned either way so callers can show warnings.
func (s *TimetableService) SaveTeacherTimetable(ctx context.Context, teacherID string, req dto.SaveTimetableRequest) (*dto.SaveTimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	if _, err := s.teachers.FindByID(ctx, teacherID); err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := schedule.ValidateSchedule(schedule.ModeTeacher, req.Schedule, teacherID, snap.timetables, snap.teachers, snap.classes, snap.subjects)
	if !result.IsValid {
		return &dto.SaveTimetableResponse{Validation: result},
			appErrors.Clone(appErrors.ErrPreconditionFailed, "timetable has conflicts")
	}

	tt := &models.Timetable{TeacherID: teacherID, Schedule: req.Schedule}
	if err := s.repo.Upsert(ctx, nil, tt); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
	}

	affected := classIDsInGrid(req.Schedule)
	if prev := findTimetable(snap.timetables, teacherID); prev != nil {
		affected = append(affected, classIDsInGrid(prev.Schedule)...)
	}
	s.invalidateClassViews(ctx, affected)

	s.logger.Info("teacher timetable saved",
		zap.String("teacher_id", teacherID),
		zap.Int("warnings", len(result.Warnings)))
	return &dto.SaveTimetableResponse{Timetable: tt, Validation: result}, nil
}

// SaveClassTimetable commits a class-mode grid by rewriting the stored
// teacher timetables: the class's old assignments are stripped everywhere,
// then each assigned cell is written into the owning teacher's grid. All
// affected timetables are persisted in one transaction.
func (s *TimetableService) SaveClassTimetable(ctx context.Context, classID string, req dto.SaveTimetableRequest) (*dto.SaveTimetableResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid timetable payload")
	}
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	result := schedule.ValidateSchedule(schedule.ModeClass, req.Schedule, classID, snap.timetables, snap.teachers, snap.classes, snap.subjects)
	if !result.IsValid {
		return &dto.SaveTimetableResponse{Validation: result},
			appErrors.Clone(appErrors.ErrPreconditionFailed, "timetable has conflicts")
	}

	byTeacher := make(map[string]*models.Timetable, len(snap.timetables))
	for i := range snap.timetables {
		tt := snap.timetables[i]
		tt.Schedule = tt.Schedule.Clone()
		byTeacher[tt.TeacherID] = &tt
	}

	dirty := make(map[string]bool)
	for teacherID, tt := range byTeacher {
		for _, day := range models.Days {
			for _, period := range models.Periods {
				slot := tt.Schedule.Slot(day, period)
				if slot.IsAssigned() && slot.ClassID == classID {
					tt.Schedule.Clear(day, period)
					dirty[teacherID] = true
				}
			}
		}
	}

	for _, day := range models.Days {
		for _, period := range models.Periods {
			slot := req.Schedule.Slot(day, period)
			if !slot.IsAssigned() || slot.TeacherID == "" {
				continue
			}
			tt, ok := byTeacher[slot.TeacherID]
			if !ok {
				teacher := findTeacherByID(snap.teachers, slot.TeacherID)
				if teacher == nil {
					return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown teacher in schedule: %s", slot.TeacherID))
				}
				tt = &models.Timetable{TeacherID: slot.TeacherID, Schedule: models.NewGrid()}
				byTeacher[slot.TeacherID] = tt
			}
			tt.Schedule.Set(day, period, models.NewAssignedSlot(slot.SubjectID, classID, ""))
			dirty[slot.TeacherID] = true
		}
	}

	tx, err := s.repo.BeginTxx(ctx, nil)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open transaction")
	}
	defer tx.Rollback()

	for teacherID := range dirty {
		if err := s.repo.Upsert(ctx, tx, byTeacher[teacherID]); err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
		}
	}
	if err := tx.Commit(); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit timetables")
	}

	s.invalidateClassViews(ctx, []string{classID})
	s.logger.Info("class timetable saved",
		zap.String("class_id", classID),
		zap.Int("teachers_updated", len(dirty)))

	view := schedule.ProjectClassView(classID, flattenTimetables(byTeacher), class.Level)
	return &dto.SaveTimetableResponse{
		Timetable:  &models.Timetable{Schedule: view},
		Validation: result,
	}, nil
}

// CheckSlot runs the interactive single-slot conflict probe.
func (s *TimetableService) CheckSlot(ctx context.Context, query dto.CheckSlotQuery) (schedule.ConflictCheck, error) {
	if err := s.validator.Struct(query); err != nil {
		return schedule.ConflictCheck{}, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid slot query")
	}
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return schedule.ConflictCheck{}, err
	}
	check := schedule.CheckSlotConflict(
		schedule.Mode(query.Mode),
		models.Day(query.Day),
		models.Period(query.Period),
		query.TargetID,
		query.CurrentEntityID,
		snap.timetables,
		snap.teachers,
		snap.classes,
	)
	return check, nil
}

// GetClassView projects one class's weekly grid out of every stored teacher
// timetable. Results are cached per class when the projection cache is on.
func (s *TimetableService) GetClassView(ctx context.Context, classID string) (*dto.ClassViewResponse, error) {
	class, err := s.classes.FindByID(ctx, classID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}

	cacheKey := classViewCacheKey(classID)
	var cached dto.ClassViewResponse
	if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	timetables, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timetables")
	}

	view := &dto.ClassViewResponse{
		ClassID:  classID,
		Level:    class.Level,
		Schedule: schedule.ProjectClassView(classID, timetables, class.Level),
	}
	s.cache.Set(ctx, cacheKey, view, s.projection.CacheTTL) //nolint:errcheck
	return view, nil
}

// GetTimePlan returns the clock-time table for one level.
func (s *TimetableService) GetTimePlan(level models.Level) (*dto.TimePlanResponse, error) {
	if level != "" && !level.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown level: %s", level))
	}
	if level == "" {
		level = models.LevelIlkokul
	}
	return &dto.TimePlanResponse{Level: level, Periods: s.timePlan.Periods(level)}, nil
}

// Fixed period display labels used on exports.
var fixedSlotLabels = map[models.FixedKind]string{
	models.FixedPrep:               "Hazırlık",
	models.FixedBreakfast:          "Kahvaltı",
	models.FixedLunch:              "Öğle Yemeği",
	models.FixedAfternoonBreakfast: "İkindi Kahvaltısı",
}

// ExportTeacherTimetable renders one teacher's weekly grid as CSV, with
// subject and class names resolved and fixed periods labelled.
func (s *TimetableService) ExportTeacherTimetable(ctx context.Context, teacherID string) ([]byte, string, error) {
	teacher, err := s.teachers.FindByID(ctx, teacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, "", appErrors.Clone(appErrors.ErrNotFound, "teacher not found")
		}
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load teacher")
	}

	grid := models.NewGrid()
	if tt, err := s.repo.FindByTeacher(ctx, teacherID); err == nil {
		grid = tt.Schedule
	} else if err != sql.ErrNoRows {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	grid = schedule.MergeFixedPeriods(grid, teacher.Level)

	classes, err := s.classes.ListAll(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}
	subjects, err := s.subjects.ListAll(ctx)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list subjects")
	}
	classNames := make(map[string]string, len(classes))
	for _, class := range classes {
		classNames[class.ID] = class.Name
	}
	subjectNames := make(map[string]string, len(subjects))
	for _, subject := range subjects {
		subjectNames[subject.ID] = subject.Name
	}

	headers := []string{"Saat"}
	for _, day := range models.Days {
		headers = append(headers, string(day))
	}

	dataset := export.Dataset{Headers: headers}
	for _, period := range models.GridPeriods {
		row := map[string]string{"Saat": s.periodLabel(period, teacher.Level)}
		for _, day := range models.Days {
			slot := grid.Slot(day, period)
			switch {
			case slot.IsFixed():
				row[string(day)] = fixedSlotLabels[slot.Fixed]
			case slot.IsAssigned():
				cell := subjectNames[slot.SubjectID]
				if cell == "" {
					cell = slot.SubjectID
				}
				if name, ok := classNames[slot.ClassID]; ok {
					cell = fmt.Sprintf("%s (%s)", cell, name)
				}
				row[string(day)] = cell
			}
		}
		dataset.Rows = append(dataset.Rows, row)
	}

	raw, err := export.NewCSVExporter().Render(dataset)
	if err != nil {
		return nil, "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render csv")
	}
	filename := fmt.Sprintf("ders-programi-%s.csv", teacherID)
	return raw, filename, nil
}

// periodLabel renders a grid row label with the clock-time range when the
// time plan knows it.
func (s *TimetableService) periodLabel(period models.Period, level models.Level) string {
	for _, tp := range s.timePlan.Periods(level) {
		if tp.Period == period {
			return schedule.FormatTimeRange(tp.StartTime, tp.EndTime)
		}
	}
	return string(period)
}

// DeleteTeacherTimetable removes the stored timetable of one teacher.
func (s *TimetableService) DeleteTeacherTimetable(ctx context.Context, teacherID string) error {
	prev, err := s.repo.FindByTeacher(ctx, teacherID)
	if err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "timetable not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load timetable")
	}
	if err := s.repo.DeleteByTeacher(ctx, teacherID); err != nil {
		if err == sql.ErrNoRows {
			return appErrors.Clone(appErrors.ErrNotFound, "timetable not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete timetable")
	}
	s.invalidateClassViews(ctx, classIDsInGrid(prev.Schedule))
	return nil
}

// BulkDelete removes timetables by teacher scope or clears one or more
// classes out of every stored timetable.
func (s *TimetableService) BulkDelete(ctx context.Context, req dto.BulkDeleteTimetablesRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid bulk delete payload")
	}
	if len(req.TeacherIDs) == 0 && len(req.ClassIDs) == 0 {
		return appErrors.Clone(appErrors.ErrValidation, "teacherIds or classIds required")
	}

	if len(req.TeacherIDs) > 0 {
		tx, err := s.repo.BeginTxx(ctx, nil)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open transaction")
		}
		defer tx.Rollback()
		if err := s.repo.DeleteByTeachers(ctx, tx, req.TeacherIDs); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete timetables")
		}
		if err := tx.Commit(); err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit deletion")
		}
		s.cache.Invalidate(ctx, "classview:*") //nolint:errcheck
	}

	if len(req.ClassIDs) > 0 {
		if err := s.stripClasses(ctx, req.ClassIDs); err != nil {
			return err
		}
	}
	return nil
}

// stripClasses clears every assignment of the given classes from all stored
// timetables inside one transaction.
func (s *TimetableService) stripClasses(ctx context.Context, classIDs []string) error {
	timetables, err := s.repo.ListAll(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timetables")
	}
	targets := make(map[string]bool, len(classIDs))
	for _, id := range classIDs {
		targets[id] = true
	}

	tx, err := s.repo.BeginTxx(ctx, nil)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to open transaction")
	}
	defer tx.Rollback()

	for i := range timetables {
		tt := &timetables[i]
		changed := false
		for _, day := range models.Days {
			for _, period := range models.Periods {
				slot := tt.Schedule.Slot(day, period)
				if slot.IsAssigned() && targets[slot.ClassID] {
					tt.Schedule.Clear(day, period)
					changed = true
				}
			}
		}
		if changed {
			if err := s.repo.Upsert(ctx, tx, tt); err != nil {
				return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save timetable")
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to commit deletion")
	}
	s.invalidateClassViews(ctx, classIDs)
	return nil
}

type rosterSnapshot struct {
	timetables []models.Timetable
	teachers   []models.Teacher
	classes    []models.Class
	subjects   []models.Subject
}

func (s *TimetableService) loadSnapshot(ctx context.Context) (*rosterSnapshot, error) {
	timetables, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list timetables")
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
	return &rosterSnapshot{timetables: timetables, teachers: teachers, classes: classes, subjects: subjects}, nil
}

func (s *TimetableService) invalidateClassViews(ctx context.Context, classIDs []string) {
	if !s.cache.Enabled() {
		return
	}
	seen := make(map[string]bool, len(classIDs))
	for _, id := range classIDs {
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		s.cache.Invalidate(ctx, classViewCacheKey(id)) //nolint:errcheck
	}
}

func classViewCacheKey(classID string) string {
	return "classview:" + classID
}

func classIDsInGrid(grid models.Grid) []string {
	var ids []string
	for _, day := range models.Days {
		for _, period := range models.Periods {
			slot := grid.Slot(day, period)
			if slot.IsAssigned() && slot.ClassID != "" {
				ids = append(ids, slot.ClassID)
			}
		}
	}
	return ids
}

func findTimetable(timetables []models.Timetable, teacherID string) *models.Timetable {
	for i := range timetables {
		if timetables[i].TeacherID == teacherID {
			return &timetables[i]
		}
	}
	return nil
}

func findTeacherByID(teachers []models.Teacher, id string) *models.Teacher {
	for i := range teachers {
		if teachers[i].ID == id {
			return &teachers[i]
		}
	}
	return nil
}

func flattenTimetables(byTeacher map[string]*models.Timetable) []models.Timetable {
	out := make([]models.Timetable, 0, len(byTeacher))
	for _, tt := range byTeacher {
		out = append(out, *tt)
	}
	return out
}
