package models

// Level identifies one of the three school divisions. Each division has its
// own clock-time table and fixed-period placement.
type Level string

const (
	LevelAnaokulu Level = "Anaokulu"
	LevelIlkokul  Level = "İlkokul"
	LevelOrtaokul Level = "Ortaokul"
)

// Levels lists all known education levels in display order.
var Levels = []Level{LevelAnaokulu, LevelIlkokul, LevelOrtaokul}

// Valid reports whether the level is one of the known divisions.
func (l Level) Valid() bool {
	switch l {
	case LevelAnaokulu, LevelIlkokul, LevelOrtaokul:
		return true
	}
	return false
}

// Day is a localized weekday name. The teaching week runs Monday to Friday.
type Day string

// Days lists the teaching week in order.
var Days = []Day{"Pazartesi", "Salı", "Çarşamba", "Perşembe", "Cuma"}

// Period identifies a single row of the weekly grid. Teaching periods are
// "1".."10"; PeriodPrep and PeriodAfternoonBreakfast are the fixed non-numeric
// rows injected per level.
type Period string

const (
	PeriodPrep               Period = "prep"
	PeriodAfternoonBreakfast Period = "afternoon-breakfast"
)

// Periods lists the ten teaching periods in order, excluding the fixed rows.
var Periods = []Period{"1", "2", "3", "4", "5", "6", "7", "8", "9", "10"}

// GridPeriods lists every grid row in display order, fixed rows included.
var GridPeriods = []Period{
	PeriodPrep, "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", PeriodAfternoonBreakfast,
}
