package schedule

import "github.com/okulsys/ders-programi-api/internal/models"

// Mode selects whose timetable a grid edit or check is viewed from.
type Mode string

const (
	ModeTeacher Mode = "teacher"
	ModeClass   Mode = "class"
)

// LunchPeriod returns the teaching-grid period reserved for lunch at the
// given level.
func LunchPeriod(level models.Level) models.Period {
	if level == models.LevelOrtaokul {
		return "6"
	}
	return "5"
}

// prepSlot is the fixed content of the "prep" row: Ortaokul opens with a
// preparation block, the other levels with breakfast.
func prepSlot(level models.Level) models.Slot {
	if level == models.LevelOrtaokul {
		return models.NewFixedSlot(models.FixedPrep)
	}
	return models.NewFixedSlot(models.FixedBreakfast)
}

// InitializeGrid builds an empty weekly grid with the level's fixed periods
// already in place on every day.
func InitializeGrid(level models.Level) models.Grid {
	g := models.NewGrid()
	lunch := LunchPeriod(level)
	for _, day := range models.Days {
		g.Set(day, models.PeriodPrep, prepSlot(level))
		g.Set(day, lunch, models.NewFixedSlot(models.FixedLunch))
		g.Set(day, models.PeriodAfternoonBreakfast, models.NewFixedSlot(models.FixedAfternoonBreakfast))
	}
	return g
}

// MergeFixedPeriods returns a copy of the grid with any missing fixed slots
// for the level filled in. Populated cells are never overwritten, so the
// operation is idempotent and safe to run over user assignments.
func MergeFixedPeriods(grid models.Grid, level models.Level) models.Grid {
	merged := grid.Clone()
	if merged == nil {
		merged = models.NewGrid()
	}
	lunch := LunchPeriod(level)
	for _, day := range models.Days {
		if merged.Slot(day, models.PeriodPrep).IsEmpty() {
			merged.Set(day, models.PeriodPrep, prepSlot(level))
		}
		if merged.Slot(day, lunch).IsEmpty() {
			merged.Set(day, lunch, models.NewFixedSlot(models.FixedLunch))
		}
		if merged.Slot(day, models.PeriodAfternoonBreakfast).IsEmpty() {
			merged.Set(day, models.PeriodAfternoonBreakfast, models.NewFixedSlot(models.FixedAfternoonBreakfast))
		}
	}
	return merged
}

// countsForWorkload reports whether a slot adds to the workload totals in the
// given mode. Fixed slots never count; a teacher-mode grid counts cells that
// commit a class, a class-mode grid cells that commit a teacher.
func countsForWorkload(slot models.Slot, mode Mode) bool {
	if !slot.IsAssigned() {
		return false
	}
	if mode == ModeClass {
		return slot.TeacherID != ""
	}
	return slot.ClassID != ""
}

// WeeklyHours counts the assigned (non-fixed) slots across the whole grid.
func WeeklyHours(grid models.Grid, mode Mode) int {
	total := 0
	for _, day := range models.Days {
		total += DailyHours(grid, day, mode)
	}
	return total
}

// DailyHours counts the assigned (non-fixed) slots on one day.
func DailyHours(grid models.Grid, day models.Day, mode Mode) int {
	count := 0
	for _, period := range models.Periods {
		if countsForWorkload(grid.Slot(day, period), mode) {
			count++
		}
	}
	return count
}

// FillStats summarizes how full a set of timetables is. Fixed slots count as
// filled, matching how the generation results report fill rate.
type FillStats struct {
	TotalSlots  int     `json:"totalSlots"`
	FilledSlots int     `json:"filledSlots"`
	EmptySlots  int     `json:"emptySlots"`
	FillRate    float64 `json:"fillRate"`
}

// CollectFillStats computes fill statistics over the full grid domain of the
// given grids, fixed rows included. A cell is filled when it commits a class,
// so fixed periods count toward the fill rate.
func CollectFillStats(grids []models.Grid) FillStats {
	var stats FillStats
	for _, grid := range grids {
		for _, day := range models.Days {
			for _, period := range models.GridPeriods {
				stats.TotalSlots++
				slot := grid.Slot(day, period)
				if slot.IsFixed() || (slot.IsAssigned() && slot.ClassID != "") {
					stats.FilledSlots++
				}
			}
		}
	}
	stats.EmptySlots = stats.TotalSlots - stats.FilledSlots
	if stats.TotalSlots > 0 {
		stats.FillRate = float64(stats.FilledSlots) / float64(stats.TotalSlots) * 100
	}
	return stats
}
