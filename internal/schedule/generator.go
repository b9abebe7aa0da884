package schedule

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/okulsys/ders-programi-api/internal/models"
)

// GenerationMode selects the slot-filling order heuristic.
type GenerationMode string

const (
	ModeBalanced GenerationMode = "balanced"
	ModeCompact  GenerationMode = "compact"
	ModeSpread   GenerationMode = "spread"
)

// Options tunes the auto-generation run.
type Options struct {
	MaxDailyHours      int            `json:"maxDailyHours"`
	Mode               GenerationMode `json:"mode"`
	AvoidConsecutive   bool           `json:"avoidConsecutive"`
	PrioritizeCore     bool           `json:"prioritizeCore"`
	RespectTimeSlots   bool           `json:"respectTimeSlots"`
	PreferMorningHours bool           `json:"preferMorningHours"`
}

// DefaultOptions returns the options the generator runs with when the caller
// does not override anything.
func DefaultOptions() Options {
	return Options{
		MaxDailyHours:      8,
		Mode:               ModeBalanced,
		AvoidConsecutive:   true,
		PrioritizeCore:     true,
		RespectTimeSlots:   true,
		PreferMorningHours: true,
	}
}

// Validate returns human-readable problems with the options, empty when they
// are usable.
func (o Options) Validate() []string {
	var problems []string
	if o.MaxDailyHours < 1 || o.MaxDailyHours > MaxDailyHours {
		problems = append(problems, fmt.Sprintf("Günlük maksimum ders saati 1 ile %d arasında olmalıdır", MaxDailyHours))
	}
	switch o.Mode {
	case ModeBalanced, ModeCompact, ModeSpread:
	default:
		problems = append(problems, fmt.Sprintf("Bilinmeyen dağıtım modu: %s", o.Mode))
	}
	return problems
}

// Statistics summarizes a generation run.
type Statistics struct {
	TeachersAssigned int `json:"teachersAssigned"`
	ClassesAssigned  int `json:"classesAssigned"`
	FillStats
}

// Result is the outcome of a generation run. Schedules always carries the
// best-effort assignment, even when Success is false.
type Result struct {
	Success    bool               `json:"success"`
	Schedules  []models.Timetable `json:"schedules"`
	Warnings   []string           `json:"warnings"`
	Conflicts  []string           `json:"conflicts"`
	Statistics Statistics         `json:"statistics"`
}

// Core academic branches, placed before electives when PrioritizeCore is set.
var coreBranches = map[string]bool{
	"Türkçe":          true,
	"Matematik":       true,
	"Fen Bilimleri":   true,
	"Hayat Bilgisi":   true,
	"Sosyal Bilgiler": true,
}

// Engine runs the greedy constructive search. It never mutates its inputs
// and keeps no state between runs.
type Engine struct {
	opts   Options
	logger *zap.Logger
}

// NewEngine builds an engine with the given options. A nil logger is
// replaced with a no-op logger.
func NewEngine(opts Options, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{opts: opts, logger: logger}
}

// cell is one (day, period) coordinate in the visiting order.
type cell struct {
	day    models.Day
	period models.Period
}

// Generate fills per-teacher grids greedily. For each teacher, demand is the
// set of subjects matching the teacher's level and branch; for each class of
// the same level, it places the subject's weekly hours into free cells,
// skipping cells that would double-book the class, exceed the daily cap, or
// violate the adjacency option. Unsatisfiable demand becomes warnings, never
// an error; Success is true only when every demanded hour was placed.
// Cancelling the context stops the search and returns the partial result.
func (e *Engine) Generate(ctx context.Context, teachers []models.Teacher, classes []models.Class, subjects []models.Subject) Result {
	result := Result{Success: true}

	// classBusy[classID][day][period] marks cross-teacher class commitments
	// inside the emitted set.
	classBusy := make(map[string]map[models.Day]map[models.Period]bool)
	busy := func(classID string, day models.Day, period models.Period) bool {
		return classBusy[classID][day][period]
	}
	markBusy := func(classID string, day models.Day, period models.Period) {
		if classBusy[classID] == nil {
			classBusy[classID] = make(map[models.Day]map[models.Period]bool)
		}
		if classBusy[classID][day] == nil {
			classBusy[classID][day] = make(map[models.Period]bool)
		}
		classBusy[classID][day][period] = true
	}

	teachersAssigned := make(map[string]bool)
	classesAssigned := make(map[string]bool)
	var grids []models.Grid

	for _, teacher := range teachers {
		if err := ctx.Err(); err != nil {
			result.Success = false
			result.Warnings = append(result.Warnings, "Oluşturma iptal edildi, kısmi sonuç döndürüldü")
			break
		}

		grid := e.newTeacherGrid(teacher.Level)
		demand := e.demandFor(teacher, subjects)
		order := e.visitOrder()

		for _, subject := range demand {
			for _, class := range classes {
				if class.Level != teacher.Level {
					continue
				}
				placed := 0
				for _, c := range order {
					if placed >= subject.WeeklyHours {
						break
					}
					if !grid.Slot(c.day, c.period).IsEmpty() {
						continue
					}
					if busy(class.ID, c.day, c.period) {
						continue
					}
					if DailyHours(grid, c.day, ModeTeacher) >= e.opts.MaxDailyHours {
						continue
					}
					if e.opts.AvoidConsecutive && adjacentSameSubject(grid, c.day, c.period, subject.ID) {
						continue
					}
					grid.Set(c.day, c.period, models.NewAssignedSlot(subject.ID, class.ID, ""))
					markBusy(class.ID, c.day, c.period)
					teachersAssigned[teacher.ID] = true
					classesAssigned[class.ID] = true
					placed++
				}
				if placed < subject.WeeklyHours {
					result.Success = false
					result.Warnings = append(result.Warnings, fmt.Sprintf(
						"%s öğretmeni için %s sınıfına %s dersinden %d/%d saat yerleştirilebildi",
						teacher.Name, class.Name, subject.Name, placed, subject.WeeklyHours))
				}
			}
		}

		grids = append(grids, grid)
		result.Schedules = append(result.Schedules, models.Timetable{TeacherID: teacher.ID, Schedule: grid})
	}

	// Confirm the emitted set is conflict-free with the same detector the
	// editor uses.
	for _, tt := range result.Schedules {
		vr := ValidateSchedule(ModeTeacher, tt.Schedule, tt.TeacherID, result.Schedules, teachers, classes, subjects)
		result.Conflicts = append(result.Conflicts, vr.Errors...)
	}
	result.Conflicts = dedupe(result.Conflicts)
	if len(result.Conflicts) > 0 {
		result.Success = false
	}

	result.Statistics = Statistics{
		TeachersAssigned: len(teachersAssigned),
		ClassesAssigned:  len(classesAssigned),
		FillStats:        CollectFillStats(grids),
	}

	e.logger.Info("schedule generation finished",
		zap.Bool("success", result.Success),
		zap.Int("teachers_assigned", result.Statistics.TeachersAssigned),
		zap.Int("classes_assigned", result.Statistics.ClassesAssigned),
		zap.Int("warnings", len(result.Warnings)),
		zap.Int("conflicts", len(result.Conflicts)),
	)
	return result
}

// newTeacherGrid seeds a fresh grid. RespectTimeSlots keeps all fixed periods
// off limits; without it only the non-teaching rows stay fixed and the lunch
// period becomes fillable.
func (e *Engine) newTeacherGrid(level models.Level) models.Grid {
	if e.opts.RespectTimeSlots {
		return InitializeGrid(level)
	}
	g := models.NewGrid()
	for _, day := range models.Days {
		g.Set(day, models.PeriodPrep, prepSlot(level))
		g.Set(day, models.PeriodAfternoonBreakfast, models.NewFixedSlot(models.FixedAfternoonBreakfast))
	}
	return g
}

// demandFor selects and orders the subjects a teacher must cover.
func (e *Engine) demandFor(teacher models.Teacher, subjects []models.Subject) []models.Subject {
	var demand []models.Subject
	for _, s := range subjects {
		if s.Level == teacher.Level && s.Branch == teacher.Branch {
			demand = append(demand, s)
		}
	}
	if e.opts.PrioritizeCore {
		sort.SliceStable(demand, func(i, j int) bool {
			return coreBranches[demand[i].Branch] && !coreBranches[demand[j].Branch]
		})
	}
	return demand
}

// visitOrder builds the (day, period) sequence the mode prescribes. Balanced
// walks period-major so the week fills evenly, compact packs each day in turn,
// spread staggers periods across days.
func (e *Engine) visitOrder() []cell {
	periods := models.Periods
	var order []cell

	switch e.opts.Mode {
	case ModeCompact:
		for _, day := range models.Days {
			for _, period := range periods {
				order = append(order, cell{day, period})
			}
		}
	case ModeSpread:
		for offset := 0; offset < len(periods); offset++ {
			for di, day := range models.Days {
				period := periods[(offset+di*2)%len(periods)]
				order = append(order, cell{day, period})
			}
		}
	default: // balanced
		for _, period := range periods {
			for _, day := range models.Days {
				order = append(order, cell{day, period})
			}
		}
	}

	// Morning preference partitions the sequence so periods 1-5 are tried
	// before the afternoon block, keeping the mode's order within each half.
	if e.opts.PreferMorningHours {
		sort.SliceStable(order, func(i, j int) bool {
			return periodIndex(order[i].period) < 5 && periodIndex(order[j].period) >= 5
		})
	}
	return order
}

func periodIndex(period models.Period) int {
	for i, p := range models.Periods {
		if p == period {
			return i
		}
	}
	return len(models.Periods)
}

// adjacentSameSubject reports whether a neighboring teaching period on the
// same day already holds the subject.
func adjacentSameSubject(grid models.Grid, day models.Day, period models.Period, subjectID string) bool {
	idx := periodIndex(period)
	if idx > 0 {
		if prev := grid.Slot(day, models.Periods[idx-1]); prev.IsAssigned() && prev.SubjectID == subjectID {
			return true
		}
	}
	if idx < len(models.Periods)-1 {
		if next := grid.Slot(day, models.Periods[idx+1]); next.IsAssigned() && next.SubjectID == subjectID {
			return true
		}
	}
	return false
}
