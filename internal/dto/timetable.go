package dto

import (
	"github.com/okulsys/ders-programi-api/internal/models"
	"github.com/okulsys/ders-programi-api/internal/schedule"
)

// SaveTimetableRequest carries a full candidate grid for a save commit.
type SaveTimetableRequest struct {
	Schedule models.Grid `json:"schedule" validate:"required"`
}

// SaveTimetableResponse returns the persisted timetable together with the
// validation outcome. Warnings are surfaced even when the save succeeded.
type SaveTimetableResponse struct {
	Timetable  *models.Timetable         `json:"timetable,omitempty"`
	Validation schedule.ValidationResult `json:"validation"`
}

// CheckSlotQuery is the interactive single-slot conflict probe.
type CheckSlotQuery struct {
	Mode            string `form:"mode" validate:"required,oneof=teacher class"`
	Day             string `form:"day" validate:"required"`
	Period          string `form:"period" validate:"required"`
	TargetID        string `form:"targetId"`
	CurrentEntityID string `form:"currentEntityId" validate:"required"`
}

// ClassViewResponse is the projected weekly grid of one class.
type ClassViewResponse struct {
	ClassID  string       `json:"classId"`
	Level    models.Level `json:"level"`
	Schedule models.Grid  `json:"schedule"`
}

// BulkDeleteTimetablesRequest removes timetables by teacher or class scope.
// Exactly one of the two lists should be populated.
type BulkDeleteTimetablesRequest struct {
	TeacherIDs []string `json:"teacherIds" validate:"omitempty,min=1,dive,required"`
	ClassIDs   []string `json:"classIds" validate:"omitempty,min=1,dive,required"`
}

// TimePlanResponse returns one level's clock-time table.
type TimePlanResponse struct {
	Level   models.Level          `json:"level"`
	Periods []schedule.TimePeriod `json:"periods"`
}
