package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulsys/ders-programi-api/internal/models"
)

func TestGenerateEmptyInput(t *testing.T) {
	engine := NewEngine(DefaultOptions(), nil)
	result := engine.Generate(context.Background(), nil, nil, nil)

	assert.Empty(t, result.Schedules)
	assert.Empty(t, result.Conflicts)
	assert.Zero(t, result.Statistics.TeachersAssigned)
	assert.Zero(t, result.Statistics.ClassesAssigned)
}

func TestGeneratePlacesFullDemand(t *testing.T) {
	teachers := []models.Teacher{{ID: "t1", Name: "A. Yılmaz", Branch: "Matematik", Level: models.LevelIlkokul}}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	subjects := []models.Subject{{ID: "subj-math", Name: "Matematik", Branch: "Matematik", Level: models.LevelIlkokul, WeeklyHours: 4}}

	engine := NewEngine(DefaultOptions(), nil)
	result := engine.Generate(context.Background(), teachers, classes, subjects)

	require.True(t, result.Success, "warnings: %v", result.Warnings)
	require.Len(t, result.Schedules, 1)
	assert.Equal(t, 4, WeeklyHours(result.Schedules[0].Schedule, ModeTeacher))
	assert.Empty(t, result.Conflicts)
	assert.Equal(t, 1, result.Statistics.TeachersAssigned)
	assert.Equal(t, 1, result.Statistics.ClassesAssigned)
}

func TestGenerateNeverDoubleBooksClass(t *testing.T) {
	teachers := []models.Teacher{
		{ID: "t1", Name: "A. Yılmaz", Branch: "Matematik", Level: models.LevelIlkokul},
		{ID: "t2", Name: "B. Demir", Branch: "Türkçe", Level: models.LevelIlkokul},
	}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	subjects := []models.Subject{
		{ID: "subj-math", Name: "Matematik", Branch: "Matematik", Level: models.LevelIlkokul, WeeklyHours: 6},
		{ID: "subj-turkce", Name: "Türkçe", Branch: "Türkçe", Level: models.LevelIlkokul, WeeklyHours: 8},
	}

	engine := NewEngine(DefaultOptions(), nil)
	result := engine.Generate(context.Background(), teachers, classes, subjects)

	require.True(t, result.Success, "warnings: %v", result.Warnings)
	assert.Empty(t, result.Conflicts)

	for _, day := range models.Days {
		for _, period := range models.Periods {
			n := 0
			for _, tt := range result.Schedules {
				if slot := tt.Schedule.Slot(day, period); slot.IsAssigned() && slot.ClassID == "c-3a" {
					n++
				}
			}
			assert.LessOrEqual(t, n, 1, "%s %s booked %d times", day, period, n)
		}
	}
}

func TestGenerateReportsShortfallAsWarning(t *testing.T) {
	teachers := []models.Teacher{{ID: "t1", Name: "A. Yılmaz", Branch: "Matematik", Level: models.LevelIlkokul}}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	// 50 demanded hours cannot fit into the week.
	subjects := []models.Subject{{ID: "subj-math", Name: "Matematik", Branch: "Matematik", Level: models.LevelIlkokul, WeeklyHours: 50}}

	engine := NewEngine(DefaultOptions(), nil)
	result := engine.Generate(context.Background(), teachers, classes, subjects)

	assert.False(t, result.Success)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "Matematik")
	assert.NotEmpty(t, result.Schedules, "partial result still returned")
}

func TestGenerateHonoursDailyCap(t *testing.T) {
	teachers := []models.Teacher{{ID: "t1", Name: "A. Yılmaz", Branch: "Matematik", Level: models.LevelIlkokul}}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	subjects := []models.Subject{{ID: "subj-math", Name: "Matematik", Branch: "Matematik", Level: models.LevelIlkokul, WeeklyHours: 10}}

	opts := DefaultOptions()
	opts.MaxDailyHours = 2
	opts.AvoidConsecutive = false
	engine := NewEngine(opts, nil)
	result := engine.Generate(context.Background(), teachers, classes, subjects)

	require.Len(t, result.Schedules, 1)
	for _, day := range models.Days {
		assert.LessOrEqual(t, DailyHours(result.Schedules[0].Schedule, day, ModeTeacher), 2)
	}
}

func TestGenerateAvoidConsecutiveSkipsNeighbours(t *testing.T) {
	teachers := []models.Teacher{{ID: "t1", Name: "A. Yılmaz", Branch: "Matematik", Level: models.LevelIlkokul}}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	subjects := []models.Subject{{ID: "subj-math", Name: "Matematik", Branch: "Matematik", Level: models.LevelIlkokul, WeeklyHours: 5}}

	opts := DefaultOptions()
	opts.Mode = ModeCompact
	opts.AvoidConsecutive = true
	engine := NewEngine(opts, nil)
	result := engine.Generate(context.Background(), teachers, classes, subjects)

	grid := result.Schedules[0].Schedule
	for _, day := range models.Days {
		for i := 0; i < len(models.Periods)-1; i++ {
			a := grid.Slot(day, models.Periods[i])
			b := grid.Slot(day, models.Periods[i+1])
			if a.IsAssigned() && b.IsAssigned() {
				assert.NotEqual(t, a.SubjectID, b.SubjectID, "%s periods %s/%s", day, models.Periods[i], models.Periods[i+1])
			}
		}
	}
}

func TestGenerateSkipsIncompatibleLevels(t *testing.T) {
	teachers := []models.Teacher{{ID: "t1", Name: "A. Yılmaz", Branch: "Matematik", Level: models.LevelOrtaokul}}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	subjects := []models.Subject{{ID: "subj-math", Name: "Matematik", Branch: "Matematik", Level: models.LevelOrtaokul, WeeklyHours: 4}}

	engine := NewEngine(DefaultOptions(), nil)
	result := engine.Generate(context.Background(), teachers, classes, subjects)

	// No class matches the teacher's level, so nothing is placed.
	assert.Equal(t, 0, WeeklyHours(result.Schedules[0].Schedule, ModeTeacher))
	assert.Zero(t, result.Statistics.ClassesAssigned)
}

func TestGenerateCancelledContextReturnsPartialResult(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	teachers := []models.Teacher{{ID: "t1", Name: "A. Yılmaz", Branch: "Matematik", Level: models.LevelIlkokul}}
	engine := NewEngine(DefaultOptions(), nil)
	result := engine.Generate(ctx, teachers, nil, nil)

	assert.False(t, result.Success)
	require.NotEmpty(t, result.Warnings)
	assert.Contains(t, result.Warnings[0], "iptal")
}

func TestOptionsValidate(t *testing.T) {
	assert.Empty(t, DefaultOptions().Validate())

	bad := DefaultOptions()
	bad.MaxDailyHours = 0
	bad.Mode = "fastest"
	problems := bad.Validate()
	require.Len(t, problems, 2)
	assert.Contains(t, problems[0], "Günlük maksimum ders saati")
	assert.Contains(t, problems[1], "Bilinmeyen dağıtım modu")
}

func TestGenerateDoesNotMutateInputs(t *testing.T) {
	teachers := []models.Teacher{{ID: "t1", Name: "A. Yılmaz", Branch: "Matematik", Level: models.LevelIlkokul}}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	subjects := []models.Subject{{ID: "subj-math", Name: "Matematik", Branch: "Matematik", Level: models.LevelIlkokul, WeeklyHours: 2}}

	engine := NewEngine(DefaultOptions(), nil)
	_ = engine.Generate(context.Background(), teachers, classes, subjects)

	assert.Equal(t, "Matematik", teachers[0].Branch)
	assert.Equal(t, 2, subjects[0].WeeklyHours)
	assert.Equal(t, models.LevelIlkokul, classes[0].Level)
}
