package schedule

import (
	"fmt"

	"github.com/okulsys/ders-programi-api/internal/models"
)

const (
	unknownClassName   = "Bilinmeyen Sınıf"
	unknownTeacherName = "Bilinmeyen Öğretmen"
	anotherTeacherName = "başka bir öğretmen"
)

// ConflictCheck is the outcome of a single-slot double-booking check.
type ConflictCheck struct {
	HasConflict bool   `json:"hasConflict"`
	Message     string `json:"message"`
}

func classTeacherConflict(className, teacherName string, day models.Day, period models.Period) string {
	return fmt.Sprintf("%s sınıfı %s günü %s. ders saatinde %s ile çakışıyor", className, day, period, teacherName)
}

func teacherClassConflict(teacherName, className string, day models.Day, period models.Period) string {
	return fmt.Sprintf("%s öğretmeni %s günü %s. ders saatinde %s sınıfı ile çakışıyor", teacherName, day, period, className)
}

func teacherNameByID(teachers []models.Teacher, id, fallback string) string {
	for _, t := range teachers {
		if t.ID == id {
			return t.Name
		}
	}
	return fallback
}

func classNameByID(classes []models.Class, id string) string {
	for _, c := range classes {
		if c.ID == id {
			return c.Name
		}
	}
	return unknownClassName
}

// CheckSlotConflict checks one (day, period) cell for a double booking
// against the full set of persisted timetables.
//
// In teacher mode targetID is the class being placed and currentEntityID the
// editing teacher: a conflict exists when any other teacher's grid already
// commits that class at the same cell. In class mode targetID is the teacher
// being placed and currentEntityID the class: a conflict exists when that
// teacher's grid already commits a different class there. Fixed slots and an
// empty targetID never conflict; the current entity's own timetable is
// excluded.
func CheckSlotConflict(
	mode Mode,
	day models.Day,
	period models.Period,
	targetID string,
	currentEntityID string,
	timetables []models.Timetable,
	teachers []models.Teacher,
	classes []models.Class,
) ConflictCheck {
	if targetID == "" {
		return ConflictCheck{}
	}

	if mode == ModeTeacher {
		for _, tt := range timetables {
			if tt.TeacherID == currentEntityID {
				continue
			}
			slot := tt.Schedule.Slot(day, period)
			if !slot.IsAssigned() || slot.ClassID != targetID {
				continue
			}
			name := teacherNameByID(teachers, tt.TeacherID, anotherTeacherName)
			return ConflictCheck{
				HasConflict: true,
				Message:     classTeacherConflict(classNameByID(classes, targetID), name, day, period),
			}
		}
		return ConflictCheck{}
	}

	for _, tt := range timetables {
		if tt.TeacherID != targetID {
			continue
		}
		slot := tt.Schedule.Slot(day, period)
		if slot.IsAssigned() && slot.ClassID != "" && slot.ClassID != currentEntityID {
			return ConflictCheck{
				HasConflict: true,
				Message: teacherClassConflict(
					teacherNameByID(teachers, targetID, unknownTeacherName),
					classNameByID(classes, slot.ClassID),
					day, period,
				),
			}
		}
		break
	}
	return ConflictCheck{}
}
