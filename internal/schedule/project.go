package schedule

import "github.com/okulsys/ders-programi-api/internal/models"

// ProjectClassView derives a class's weekly grid from the per-teacher
// timetables. Every assigned slot naming the class is copied with the owning
// teacher resolved onto it, then the level's fixed periods are merged in.
// The projection is recomputed on demand and only as consistent as the
// timetables it reads.
func ProjectClassView(classID string, timetables []models.Timetable, level models.Level) models.Grid {
	view := models.NewGrid()
	for _, tt := range timetables {
		for _, day := range models.Days {
			for _, period := range models.Periods {
				slot := tt.Schedule.Slot(day, period)
				if !slot.IsAssigned() || slot.ClassID != classID {
					continue
				}
				view.Set(day, period, models.NewAssignedSlot(slot.SubjectID, classID, tt.TeacherID))
			}
		}
	}
	return MergeFixedPeriods(view, level)
}
