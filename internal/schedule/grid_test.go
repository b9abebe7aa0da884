package schedule

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okulsys/ders-programi-api/internal/models"
)

func TestInitializeGridPlacesFixedPeriodsOnEveryDay(t *testing.T) {
	cases := []struct {
		level models.Level
		prep  models.FixedKind
		lunch models.Period
	}{
		{models.LevelAnaokulu, models.FixedBreakfast, "5"},
		{models.LevelIlkokul, models.FixedBreakfast, "5"},
		{models.LevelOrtaokul, models.FixedPrep, "6"},
	}

	for _, tc := range cases {
		grid := InitializeGrid(tc.level)
		for _, day := range models.Days {
			prep := grid.Slot(day, models.PeriodPrep)
			require.True(t, prep.IsFixed(), "%s %s prep row", tc.level, day)
			assert.Equal(t, tc.prep, prep.Fixed)

			lunch := grid.Slot(day, tc.lunch)
			require.True(t, lunch.IsFixed(), "%s %s lunch", tc.level, day)
			assert.Equal(t, models.FixedLunch, lunch.Fixed)

			snack := grid.Slot(day, models.PeriodAfternoonBreakfast)
			require.True(t, snack.IsFixed(), "%s %s afternoon breakfast", tc.level, day)
			assert.Equal(t, models.FixedAfternoonBreakfast, snack.Fixed)
		}
	}
}

func TestInitializeGridKeepsLegacyWireEncoding(t *testing.T) {
	grid := InitializeGrid(models.LevelIlkokul)

	raw, err := json.Marshal(grid.Slot("Pazartesi", "5"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"subjectId":"fixed-lunch","classId":"fixed-period"}`, string(raw))

	var decoded models.Slot
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.True(t, decoded.IsFixed())
	assert.Equal(t, models.FixedLunch, decoded.Fixed)
}

func TestMergeFixedPeriodsIsIdempotent(t *testing.T) {
	grid := models.NewGrid()
	grid.Set("Salı", "2", models.NewAssignedSlot("subj-1", "class-1", ""))

	once := MergeFixedPeriods(grid, models.LevelOrtaokul)
	twice := MergeFixedPeriods(once, models.LevelOrtaokul)

	assert.Equal(t, once, twice)
	assert.True(t, once.Slot("Salı", "6").IsFixed())
	assert.Equal(t, "class-1", once.Slot("Salı", "2").ClassID, "existing assignment survives")
}

func TestMergeFixedPeriodsDoesNotMutateInput(t *testing.T) {
	grid := models.NewGrid()
	_ = MergeFixedPeriods(grid, models.LevelIlkokul)
	assert.True(t, grid.Slot("Pazartesi", models.PeriodPrep).IsEmpty())
}

func TestMergeFixedPeriodsNeverOverwritesAssignments(t *testing.T) {
	grid := models.NewGrid()
	grid.Set("Cuma", "5", models.NewAssignedSlot("subj-1", "class-1", ""))

	merged := MergeFixedPeriods(grid, models.LevelIlkokul)
	assert.Equal(t, "class-1", merged.Slot("Cuma", "5").ClassID)
}

func TestWorkloadCountsSkipFixedSlots(t *testing.T) {
	grid := InitializeGrid(models.LevelIlkokul)
	grid.Set("Pazartesi", "1", models.NewAssignedSlot("subj-1", "class-1", ""))
	grid.Set("Pazartesi", "2", models.NewAssignedSlot("subj-1", "class-2", ""))
	grid.Set("Salı", "1", models.NewAssignedSlot("subj-2", "class-1", ""))

	assert.Equal(t, 3, WeeklyHours(grid, ModeTeacher))
	assert.Equal(t, 2, DailyHours(grid, "Pazartesi", ModeTeacher))
	assert.Equal(t, 0, DailyHours(grid, "Cuma", ModeTeacher))
}

func TestCollectFillStatsCountsFixedAsFilled(t *testing.T) {
	grid := InitializeGrid(models.LevelIlkokul)
	grid.Set("Pazartesi", "1", models.NewAssignedSlot("subj-1", "class-1", ""))

	stats := CollectFillStats([]models.Grid{grid})
	assert.Equal(t, len(models.Days)*len(models.GridPeriods), stats.TotalSlots)
	// 3 fixed rows per day plus the single assignment.
	assert.Equal(t, 3*len(models.Days)+1, stats.FilledSlots)
	assert.Equal(t, stats.TotalSlots-stats.FilledSlots, stats.EmptySlots)
	assert.InDelta(t, float64(stats.FilledSlots)/float64(stats.TotalSlots)*100, stats.FillRate, 0.001)
}
