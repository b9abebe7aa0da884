package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulsys/ders-programi-api/internal/models"
)

func ilkokulTeacher(id, name, branch string) models.Teacher {
	return models.Teacher{ID: id, Name: name, Branch: branch, Level: models.LevelIlkokul, Active: true}
}

func timetableWith(teacherID string, day models.Day, period models.Period, subjectID, classID string) models.Timetable {
	grid := InitializeGrid(models.LevelIlkokul)
	grid.Set(day, period, models.NewAssignedSlot(subjectID, classID, ""))
	return models.Timetable{ID: "tt-" + teacherID, TeacherID: teacherID, Schedule: grid}
}

func TestCheckSlotConflictTeacherModeIsSymmetric(t *testing.T) {
	teachers := []models.Teacher{
		ilkokulTeacher("t1", "A. Yılmaz", "Matematik"),
		ilkokulTeacher("t2", "B. Demir", "Matematik"),
	}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	timetables := []models.Timetable{
		timetableWith("t1", "Pazartesi", "3", "subj-math", "c-3a"),
		timetableWith("t2", "Pazartesi", "3", "subj-math", "c-3a"),
	}

	fromT1 := CheckSlotConflict(ModeTeacher, "Pazartesi", "3", "c-3a", "t1", timetables, teachers, classes)
	require.True(t, fromT1.HasConflict)
	assert.Contains(t, fromT1.Message, "B. Demir")

	fromT2 := CheckSlotConflict(ModeTeacher, "Pazartesi", "3", "c-3a", "t2", timetables, teachers, classes)
	require.True(t, fromT2.HasConflict)
	assert.Contains(t, fromT2.Message, "A. Yılmaz")
}

func TestCheckSlotConflictIgnoresOwnTimetable(t *testing.T) {
	teachers := []models.Teacher{ilkokulTeacher("t1", "A. Yılmaz", "Matematik")}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	timetables := []models.Timetable{timetableWith("t1", "Pazartesi", "2", "subj-math", "c-3a")}

	check := CheckSlotConflict(ModeTeacher, "Pazartesi", "2", "c-3a", "t1", timetables, teachers, classes)
	assert.False(t, check.HasConflict)
	assert.Empty(t, check.Message)
}

func TestCheckSlotConflictEmptyTargetClearsSlot(t *testing.T) {
	check := CheckSlotConflict(ModeTeacher, "Pazartesi", "2", "", "t1", nil, nil, nil)
	assert.False(t, check.HasConflict)
}

func TestCheckSlotConflictSkipsFixedSlots(t *testing.T) {
	// Every teacher carries the identical lunch sentinel; it must never
	// register as a class commitment.
	teachers := []models.Teacher{
		ilkokulTeacher("t1", "A. Yılmaz", "Matematik"),
		ilkokulTeacher("t2", "B. Demir", "Türkçe"),
	}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	timetables := []models.Timetable{
		{ID: "tt-t1", TeacherID: "t1", Schedule: InitializeGrid(models.LevelIlkokul)},
		{ID: "tt-t2", TeacherID: "t2", Schedule: InitializeGrid(models.LevelIlkokul)},
	}

	check := CheckSlotConflict(ModeClass, "Pazartesi", "5", "t2", "c-3a", timetables, teachers, classes)
	assert.False(t, check.HasConflict)
}

func TestCheckSlotConflictClassModeNamesCommittedClass(t *testing.T) {
	teachers := []models.Teacher{ilkokulTeacher("t1", "A. Yılmaz", "Matematik")}
	classes := []models.Class{
		{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul},
		{ID: "c-4b", Name: "4B", Level: models.LevelIlkokul},
	}
	timetables := []models.Timetable{timetableWith("t1", "Çarşamba", "4", "subj-math", "c-4b")}

	check := CheckSlotConflict(ModeClass, "Çarşamba", "4", "t1", "c-3a", timetables, teachers, classes)
	require.True(t, check.HasConflict)
	assert.Contains(t, check.Message, "A. Yılmaz")
	assert.Contains(t, check.Message, "4B")
}

func TestCheckSlotConflictUnknownNamesFallBack(t *testing.T) {
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	timetables := []models.Timetable{timetableWith("ghost", "Pazartesi", "1", "subj-math", "c-3a")}

	check := CheckSlotConflict(ModeTeacher, "Pazartesi", "1", "c-3a", "t1", timetables, nil, classes)
	require.True(t, check.HasConflict)
	assert.Contains(t, check.Message, "başka bir öğretmen")
}

func TestScenarioPlacementConflictThenResolution(t *testing.T) {
	teachers := []models.Teacher{
		ilkokulTeacher("t-yilmaz", "A. Yılmaz", "Matematik"),
		ilkokulTeacher("t-demir", "B. Demir", "Matematik"),
	}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	subjects := []models.Subject{{ID: "subj-math", Name: "Matematik", Branch: "Matematik", Level: models.LevelIlkokul, WeeklyHours: 4}}

	yilmaz := timetableWith("t-yilmaz", "Pazartesi", "2", "subj-math", "c-3a")
	timetables := []models.Timetable{yilmaz}

	check := CheckSlotConflict(ModeTeacher, "Pazartesi", "2", "c-3a", "t-demir", timetables, teachers, classes)
	require.True(t, check.HasConflict)
	assert.Contains(t, check.Message, "A. Yılmaz")

	// Move the original assignment to period 3 and re-validate the grid.
	moved := yilmaz.Schedule.Clone()
	moved.Clear("Pazartesi", "2")
	moved.Set("Pazartesi", "3", models.NewAssignedSlot("subj-math", "c-3a", ""))
	timetables[0].Schedule = moved

	result := ValidateSchedule(ModeTeacher, moved, "t-yilmaz", timetables, teachers, classes, subjects)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Errors)
}
