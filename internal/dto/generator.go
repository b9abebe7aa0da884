package dto

import (
	"github.com/okulsys/ders-programi-api/internal/models"
	"github.com/okulsys/ders-programi-api/internal/schedule"
)

// GenerateTimetablesRequest tunes one auto-generation run. Omitted options
// fall back to the configured scheduler defaults.
type GenerateTimetablesRequest struct {
	MaxDailyHours      *int    `json:"maxDailyHours" validate:"omitempty,min=1,max=9"`
	Mode               *string `json:"mode" validate:"omitempty,oneof=balanced compact spread"`
	AvoidConsecutive   *bool   `json:"avoidConsecutive"`
	PrioritizeCore     *bool   `json:"prioritizeCore"`
	RespectTimeSlots   *bool   `json:"respectTimeSlots"`
	PreferMorningHours *bool   `json:"preferMorningHours"`
}

// GenerateTimetablesResponse returns the best-effort generation outcome.
type GenerateTimetablesResponse struct {
	Success    bool                `json:"success"`
	Schedules  []models.Timetable  `json:"schedules"`
	Warnings   []string            `json:"warnings"`
	Conflicts  []string            `json:"conflicts"`
	Statistics schedule.Statistics `json:"statistics"`
}

// ApplyGenerationRequest persists a previously generated set of timetables.
type ApplyGenerationRequest struct {
	Schedules []models.Timetable `json:"schedules" validate:"required,min=1,dive"`
}

// ApplyGenerationResponse reports how many timetables were written.
type ApplyGenerationResponse struct {
	Saved    int      `json:"saved"`
	Warnings []string `json:"warnings"`
}
