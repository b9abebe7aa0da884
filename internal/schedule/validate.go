package schedule

import (
	"fmt"

	"github.com/okulsys/ders-programi-api/internal/models"
)

// Weekly and daily workload caps, counted over assigned slots only.
const (
	MaxWeeklyHours = 30
	MaxDailyHours  = 9
)

// ValidationResult is the outcome of validating a whole candidate grid.
// Errors block saving; warnings are surfaced but never affect validity.
type ValidationResult struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateSchedule validates a candidate grid before it is committed: per-slot
// conflicts against the latest persisted snapshot, workload caps, and level
// and branch compatibility. Conflicts and cap violations are blocking errors;
// compatibility mismatches are warnings. Both lists are deduplicated keeping
// first-seen order.
func ValidateSchedule(
	mode Mode,
	grid models.Grid,
	selectedID string,
	timetables []models.Timetable,
	teachers []models.Teacher,
	classes []models.Class,
	subjects []models.Subject,
) ValidationResult {
	var errors, warnings []string

	if weekly := WeeklyHours(grid, mode); weekly > MaxWeeklyHours {
		errors = append(errors, "Haftalık ders saati 30'u geçemez")
	}
	for _, day := range models.Days {
		if daily := DailyHours(grid, day, mode); daily > MaxDailyHours {
			errors = append(errors, fmt.Sprintf("%s günü için günlük ders saati 9'u geçemez (şu an: %d)", day, daily))
		}
	}

	for _, day := range models.Days {
		for _, period := range models.Periods {
			slot := grid.Slot(day, period)
			if !slot.IsAssigned() {
				continue
			}

			switch {
			case mode == ModeTeacher && slot.ClassID != "":
				check := CheckSlotConflict(ModeTeacher, day, period, slot.ClassID, selectedID, timetables, teachers, classes)
				if check.HasConflict {
					errors = append(errors, check.Message)
				}
			case mode == ModeClass && slot.TeacherID != "":
				check := CheckSlotConflict(ModeClass, day, period, slot.TeacherID, selectedID, timetables, teachers, classes)
				if check.HasConflict {
					errors = append(errors, check.Message)
				}
			}

			warnings = append(warnings, compatibilityWarnings(slot, teachers, classes, subjects)...)
		}
	}

	errors = dedupe(errors)
	warnings = dedupe(warnings)
	return ValidationResult{IsValid: len(errors) == 0, Errors: errors, Warnings: warnings}
}

// compatibilityWarnings reports level and branch mismatches for a slot that
// references both a teacher and a class, or both a teacher and a subject.
func compatibilityWarnings(slot models.Slot, teachers []models.Teacher, classes []models.Class, subjects []models.Subject) []string {
	var warnings []string

	if slot.TeacherID != "" && slot.ClassID != "" {
		teacher := findTeacher(teachers, slot.TeacherID)
		class := findClass(classes, slot.ClassID)
		if teacher != nil && class != nil && teacher.Level != class.Level {
			warnings = append(warnings, fmt.Sprintf("%s (%s) ile %s (%s) seviye uyumsuzluğu",
				teacher.Name, teacher.Level, class.Name, class.Level))
		}
	}

	if slot.TeacherID != "" && slot.SubjectID != "" {
		teacher := findTeacher(teachers, slot.TeacherID)
		subject := findSubject(subjects, slot.SubjectID)
		if teacher != nil && subject != nil && teacher.Branch != subject.Branch {
			warnings = append(warnings, fmt.Sprintf("%s (%s) ile %s (%s) branş uyumsuzluğu",
				teacher.Name, teacher.Branch, subject.Name, subject.Branch))
		}
	}

	return warnings
}

func findTeacher(teachers []models.Teacher, id string) *models.Teacher {
	for i := range teachers {
		if teachers[i].ID == id {
			return &teachers[i]
		}
	}
	return nil
}

func findClass(classes []models.Class, id string) *models.Class {
	for i := range classes {
		if classes[i].ID == id {
			return &classes[i]
		}
	}
	return nil
}

func findSubject(subjects []models.Subject, id string) *models.Subject {
	for i := range subjects {
		if subjects[i].ID == id {
			return &subjects[i]
		}
	}
	return nil
}

// dedupe removes duplicates preserving first-seen order.
func dedupe(items []string) []string {
	if len(items) == 0 {
		return items
	}
	seen := make(map[string]struct{}, len(items))
	out := items[:0]
	for _, item := range items {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
