package schedule

import (
	"fmt"
	"time"

	"github.com/okulsys/ders-programi-api/internal/models"
)

// BreakType classifies a break row in a level's time table.
type BreakType string

const (
	BreakPrep      BreakType = "prep"
	BreakBreakfast BreakType = "breakfast"
	BreakLunch     BreakType = "lunch"
)

// TimePeriod is one row of a level's clock-time table: either a teaching
// period or a break between periods.
type TimePeriod struct {
	Period        models.Period `json:"period"`
	StartTime     string        `json:"startTime"`
	EndTime       string        `json:"endTime"`
	IsBreak       bool          `json:"isBreak,omitempty"`
	BreakType     BreakType     `json:"breakType,omitempty"`
	BreakDuration int           `json:"breakDuration,omitempty"`
}

// TimePlan maps each level to its ordered clock-time table. It is static
// configuration built once at init; callers must not mutate the slices.
type TimePlan map[models.Level][]TimePeriod

// DefaultTimePlan holds the institutional period/time tables. Display and PDF
// output depend on these exact clock times, so the rows are reproduced in
// full, breaks included.
var DefaultTimePlan = NewTimePlan()

// NewTimePlan builds the level-keyed time table configuration.
func NewTimePlan() TimePlan {
	return TimePlan{
		models.LevelIlkokul:  primarySchoolTimePeriods(),
		models.LevelOrtaokul: middleSchoolTimePeriods(),
		models.LevelAnaokulu: kindergartenTimePeriods(),
	}
}

// İlkokul runs ten 35-minute periods with a morning breakfast block and
// lunch after period 5.
func primarySchoolTimePeriods() []TimePeriod {
	return []TimePeriod{
		{Period: "breakfast1", StartTime: "08:30", EndTime: "08:50", IsBreak: true, BreakType: BreakBreakfast, BreakDuration: 20},
		{Period: "1", StartTime: "08:50", EndTime: "09:25"},
		{Period: "break1", StartTime: "09:25", EndTime: "09:35", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "2", StartTime: "09:35", EndTime: "10:10"},
		{Period: "break2", StartTime: "10:10", EndTime: "10:20", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "3", StartTime: "10:20", EndTime: "10:55"},
		{Period: "break3", StartTime: "10:55", EndTime: "11:05", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "4", StartTime: "11:05", EndTime: "11:40"},
		{Period: "break4", StartTime: "11:40", EndTime: "11:50", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "5", StartTime: "11:50", EndTime: "12:25"},
		{Period: "lunch", StartTime: "12:25", EndTime: "12:30", IsBreak: true, BreakType: BreakLunch, BreakDuration: 5},
		{Period: "6", StartTime: "12:30", EndTime: "13:05"},
		{Period: "break5", StartTime: "13:05", EndTime: "13:15", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "7", StartTime: "13:15", EndTime: "13:50"},
		{Period: "break6", StartTime: "13:50", EndTime: "14:00", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "8", StartTime: "14:00", EndTime: "14:35"},
		{Period: "breakfast2", StartTime: "14:35", EndTime: "14:45", IsBreak: true, BreakType: BreakBreakfast, BreakDuration: 10},
		{Period: "9", StartTime: "14:45", EndTime: "15:20"},
		{Period: "break7", StartTime: "15:20", EndTime: "15:25", IsBreak: true, BreakType: BreakPrep, BreakDuration: 5},
		{Period: "10", StartTime: "15:25", EndTime: "16:00"},
	}
}

// Ortaokul opens with a 10-minute prep block instead of breakfast and keeps
// breakfast after period 1.
func middleSchoolTimePeriods() []TimePeriod {
	return []TimePeriod{
		{Period: "prep", StartTime: "08:30", EndTime: "08:40", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "1", StartTime: "08:40", EndTime: "09:15"},
		{Period: "breakfast", StartTime: "09:15", EndTime: "09:35", IsBreak: true, BreakType: BreakBreakfast, BreakDuration: 20},
		{Period: "2", StartTime: "09:35", EndTime: "10:10"},
		{Period: "break1", StartTime: "10:10", EndTime: "10:20", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "3", StartTime: "10:20", EndTime: "10:55"},
		{Period: "break2", StartTime: "10:55", EndTime: "11:05", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "4", StartTime: "11:05", EndTime: "11:40"},
		{Period: "break3", StartTime: "11:40", EndTime: "11:50", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "5", StartTime: "11:50", EndTime: "12:25"},
		{Period: "break4", StartTime: "12:25", EndTime: "12:30", IsBreak: true, BreakType: BreakPrep, BreakDuration: 5},
		{Period: "6", StartTime: "12:30", EndTime: "13:05"},
		{Period: "break5", StartTime: "13:05", EndTime: "13:15", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "7", StartTime: "13:15", EndTime: "13:50"},
		{Period: "break6", StartTime: "13:50", EndTime: "14:00", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "8", StartTime: "14:00", EndTime: "14:35"},
		{Period: "breakfast2", StartTime: "14:35", EndTime: "14:45", IsBreak: true, BreakType: BreakBreakfast, BreakDuration: 10},
		{Period: "9", StartTime: "14:45", EndTime: "15:20"},
		{Period: "break7", StartTime: "15:20", EndTime: "15:25", IsBreak: true, BreakType: BreakPrep, BreakDuration: 5},
		{Period: "10", StartTime: "15:25", EndTime: "16:00"},
	}
}

// Anaokulu follows the İlkokul rhythm.
func kindergartenTimePeriods() []TimePeriod {
	return []TimePeriod{
		{Period: "breakfast1", StartTime: "08:30", EndTime: "08:50", IsBreak: true, BreakType: BreakBreakfast, BreakDuration: 20},
		{Period: "1", StartTime: "08:50", EndTime: "09:25"},
		{Period: "break1", StartTime: "09:25", EndTime: "09:35", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "2", StartTime: "09:35", EndTime: "10:10"},
		{Period: "break2", StartTime: "10:10", EndTime: "10:20", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "3", StartTime: "10:20", EndTime: "10:55"},
		{Period: "break3", StartTime: "10:55", EndTime: "11:05", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "4", StartTime: "11:05", EndTime: "11:40"},
		{Period: "break4", StartTime: "11:40", EndTime: "11:50", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "5", StartTime: "11:50", EndTime: "12:25"},
		{Period: "lunch", StartTime: "12:25", EndTime: "12:30", IsBreak: true, BreakType: BreakLunch, BreakDuration: 5},
		{Period: "6", StartTime: "12:30", EndTime: "13:05"},
		{Period: "break5", StartTime: "13:05", EndTime: "13:15", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "7", StartTime: "13:15", EndTime: "13:50"},
		{Period: "break6", StartTime: "13:50", EndTime: "14:00", IsBreak: true, BreakType: BreakPrep, BreakDuration: 10},
		{Period: "8", StartTime: "14:00", EndTime: "14:35"},
		{Period: "breakfast2", StartTime: "14:35", EndTime: "14:45", IsBreak: true, BreakType: BreakBreakfast, BreakDuration: 10},
		{Period: "9", StartTime: "14:45", EndTime: "15:20"},
		{Period: "break7", StartTime: "15:20", EndTime: "15:25", IsBreak: true, BreakType: BreakPrep, BreakDuration: 5},
		{Period: "10", StartTime: "15:25", EndTime: "16:00"},
	}
}

// Periods returns the ordered table for the level, falling back to the
// İlkokul table for an unknown or empty level.
func (p TimePlan) Periods(level models.Level) []TimePeriod {
	if rows, ok := p[level]; ok {
		return rows
	}
	return p[models.LevelIlkokul]
}

// TimeForPeriod resolves a teaching period to its clock times. Break rows are
// never matched.
func (p TimePlan) TimeForPeriod(period models.Period, level models.Level) (TimePeriod, bool) {
	for _, row := range p.Periods(level) {
		if row.Period == period && !row.IsBreak {
			return row, true
		}
	}
	return TimePeriod{}, false
}

// ActivePeriods returns only the teaching rows of a level's table.
func (p TimePlan) ActivePeriods(level models.Level) []TimePeriod {
	return p.filter(level, func(row TimePeriod) bool { return !row.IsBreak })
}

// BreakPeriods returns only the break rows of a level's table.
func (p TimePlan) BreakPeriods(level models.Level) []TimePeriod {
	return p.filter(level, func(row TimePeriod) bool { return row.IsBreak })
}

// BreakfastPeriods returns the breakfast breaks of a level's table.
func (p TimePlan) BreakfastPeriods(level models.Level) []TimePeriod {
	return p.filter(level, func(row TimePeriod) bool { return row.IsBreak && row.BreakType == BreakBreakfast })
}

// LunchPeriods returns the lunch breaks of a level's table.
func (p TimePlan) LunchPeriods(level models.Level) []TimePeriod {
	return p.filter(level, func(row TimePeriod) bool { return row.IsBreak && row.BreakType == BreakLunch })
}

// PrepPeriods returns the prep breaks of a level's table.
func (p TimePlan) PrepPeriods(level models.Level) []TimePeriod {
	return p.filter(level, func(row TimePeriod) bool { return row.IsBreak && row.BreakType == BreakPrep })
}

func (p TimePlan) filter(level models.Level, keep func(TimePeriod) bool) []TimePeriod {
	var result []TimePeriod
	for _, row := range p.Periods(level) {
		if keep(row) {
			result = append(result, row)
		}
	}
	return result
}

// PeriodDuration returns the length of a teaching period in minutes. Unknown
// periods report the standard 35 minutes.
func (p TimePlan) PeriodDuration(period models.Period, level models.Level) int {
	row, ok := p.TimeForPeriod(period, level)
	if !ok {
		return 35
	}
	start, err1 := time.Parse("15:04", row.StartTime)
	end, err2 := time.Parse("15:04", row.EndTime)
	if err1 != nil || err2 != nil {
		return 35
	}
	return int(end.Sub(start).Minutes())
}

// FormatTimeRange renders a start/end pair for display.
func FormatTimeRange(start, end string) string {
	return fmt.Sprintf("%s - %s", start, end)
}
