package schedule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulsys/ders-programi-api/internal/models"
)

// fillAssignments places n assignments across the week, at most 9 per day so
// only the weekly cap is exercised.
func fillAssignments(grid models.Grid, n int) {
	placed := 0
	for _, day := range models.Days {
		perDay := 0
		for _, period := range models.Periods {
			if placed >= n || perDay >= 9 {
				break
			}
			if !grid.Slot(day, period).IsEmpty() {
				continue
			}
			placed++
			perDay++
			grid.Set(day, period, models.NewAssignedSlot("subj-1", fmt.Sprintf("class-%d", placed), ""))
		}
	}
}

func TestValidateScheduleWeeklyCap(t *testing.T) {
	over := models.NewGrid()
	fillAssignments(over, 31)
	result := ValidateSchedule(ModeTeacher, over, "t1", nil, nil, nil, nil)
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Haftalık ders saati 30'u geçemez")

	at := models.NewGrid()
	fillAssignments(at, 30)
	result = ValidateSchedule(ModeTeacher, at, "t1", nil, nil, nil, nil)
	assert.NotContains(t, result.Errors, "Haftalık ders saati 30'u geçemez")
}

func TestValidateScheduleDailyCapNamesDay(t *testing.T) {
	grid := models.NewGrid()
	for i, period := range models.Periods {
		grid.Set("Perşembe", period, models.NewAssignedSlot("subj-1", fmt.Sprintf("class-%d", i), ""))
	}

	result := ValidateSchedule(ModeTeacher, grid, "t1", nil, nil, nil, nil)
	require.False(t, result.IsValid)
	assert.Contains(t, result.Errors, "Perşembe günü için günlük ders saati 9'u geçemez (şu an: 10)")

	grid.Clear("Perşembe", "10")
	result = ValidateSchedule(ModeTeacher, grid, "t1", nil, nil, nil, nil)
	assert.True(t, result.IsValid)
}

func TestValidateScheduleFixedSlotsDoNotCount(t *testing.T) {
	grid := InitializeGrid(models.LevelIlkokul)
	for _, period := range []models.Period{"1", "2", "3", "4", "6", "7", "8", "9", "10"} {
		grid.Set("Pazartesi", period, models.NewAssignedSlot("subj-1", "class-1", ""))
	}

	// 9 assignments plus the fixed lunch must still pass the daily cap.
	result := ValidateSchedule(ModeTeacher, grid, "t1", nil, nil, nil, nil)
	assert.True(t, result.IsValid)
}

func TestValidateScheduleCompatibilityWarnings(t *testing.T) {
	teachers := []models.Teacher{{ID: "t1", Name: "C. Kaya", Branch: "Matematik", Level: models.LevelOrtaokul}}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}
	subjects := []models.Subject{{ID: "subj-muzik", Name: "Müzik", Branch: "Müzik", Level: models.LevelIlkokul, WeeklyHours: 2}}

	grid := models.NewGrid()
	grid.Set("Pazartesi", "1", models.NewAssignedSlot("subj-muzik", "c-3a", "t1"))

	result := ValidateSchedule(ModeClass, grid, "c-3a", nil, teachers, classes, subjects)
	assert.True(t, result.IsValid, "warnings never block saving")
	assert.Contains(t, result.Warnings, "C. Kaya (Ortaokul) ile 3A (İlkokul) seviye uyumsuzluğu")
	assert.Contains(t, result.Warnings, "C. Kaya (Matematik) ile Müzik (Müzik) branş uyumsuzluğu")
}

func TestValidateScheduleDeduplicatesMessages(t *testing.T) {
	teachers := []models.Teacher{{ID: "t1", Name: "C. Kaya", Branch: "Matematik", Level: models.LevelOrtaokul}}
	classes := []models.Class{{ID: "c-3a", Name: "3A", Level: models.LevelIlkokul}}

	grid := models.NewGrid()
	grid.Set("Pazartesi", "1", models.NewAssignedSlot("", "c-3a", "t1"))
	grid.Set("Salı", "2", models.NewAssignedSlot("", "c-3a", "t1"))

	result := ValidateSchedule(ModeClass, grid, "c-3a", nil, teachers, classes, nil)
	warning := "C. Kaya (Ortaokul) ile 3A (İlkokul) seviye uyumsuzluğu"
	count := 0
	for _, w := range result.Warnings {
		if w == warning {
			count++
		}
	}
	assert.Equal(t, 1, count, "identical warnings collapse to one")
}
