package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulsys/ders-programi-api/internal/dto"
	"github.com/okulsys/ders-programi-api/internal/models"
	"github.com/okulsys/ders-programi-api/internal/service"
	appErrors "github.com/okulsys/ders-programi-api/pkg/errors"
	"github.com/okulsys/ders-programi-api/pkg/response"
)

// TimetableHandler wires the timetable service to HTTP routes.
type TimetableHandler struct {
	timetables *service.TimetableService
	metrics    *service.MetricsService
}

// NewTimetableHandler constructs a new TimetableHandler. The metrics service
// may be nil.
func NewTimetableHandler(timetables *service.TimetableService, metrics *service.MetricsService) *TimetableHandler {
	return &TimetableHandler{timetables: timetables, metrics: metrics}
}

// List godoc
// @Summary List all stored timetables
// @Tags Timetables
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /timetables [get]
func (h *TimetableHandler) List(c *gin.Context) {
	timetables, err := h.timetables.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, timetables, nil)
}

// GetTeacher godoc
// @Summary Get one teacher's timetable with fixed periods merged in
// @Tags Timetables
// @Produce json
// @Param id path string true "Teacher ID"
// @Success 200 {object} response.Envelope
// @Router /timetables/teachers/{id} [get]
func (h *TimetableHandler) GetTeacher(c *gin.Context) {
	tt, err := h.timetables.GetTeacherTimetable(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tt, nil)
}

// SaveTeacher godoc
// @Summary Save one teacher's timetable
// @Description Persists the grid only when it passes full conflict validation.
// @Tags Timetables
// @Accept json
// @Produce json
// @Param id path string true "Teacher ID"
// @Param payload body dto.SaveTimetableRequest true "Timetable payload"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope "Validation failed with conflicts"
// @Router /timetables/teachers/{id} [put]
func (h *TimetableHandler) SaveTeacher(c *gin.Context) {
	var req dto.SaveTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid timetable payload"))
		return
	}
	resp, err := h.timetables.SaveTeacherTimetable(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if resp != nil {
			c.JSON(appErrors.ErrPreconditionFailed.Status, response.Envelope{Data: resp, Error: appErrors.FromError(err)})
			return
		}
		response.Error(c, err)
		return
	}
	h.metrics.RecordTimetableSave()
	response.JSON(c, http.StatusOK, resp, nil)
}

// SaveClass godoc
// @Summary Save one class's timetable
// @Description Rewrites the stored teacher timetables so they match the submitted class grid.
// @Tags Timetables
// @Accept json
// @Produce json
// @Param id path string true "Class ID"
// @Param payload body dto.SaveTimetableRequest true "Timetable payload"
// @Success 200 {object} response.Envelope
// @Failure 412 {object} response.Envelope "Validation failed with conflicts"
// @Router /timetables/classes/{id} [put]
func (h *TimetableHandler) SaveClass(c *gin.Context) {
	var req dto.SaveTimetableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid timetable payload"))
		return
	}
	resp, err := h.timetables.SaveClassTimetable(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if resp != nil {
			c.JSON(appErrors.ErrPreconditionFailed.Status, response.Envelope{Data: resp, Error: appErrors.FromError(err)})
			return
		}
		response.Error(c, err)
		return
	}
	h.metrics.RecordTimetableSave()
	response.JSON(c, http.StatusOK, resp, nil)
}

// CheckSlot godoc
// @Summary Check a single slot for conflicts
// @Tags Timetables
// @Produce json
// @Param mode query string true "Editing mode (teacher or class)"
// @Param day query string true "Day name"
// @Param period query string true "Period"
// @Param targetId query string false "Class or teacher being placed"
// @Param currentEntityId query string true "Entity whose grid is edited"
// @Success 200 {object} response.Envelope
// @Router /timetables/check-slot [get]
func (h *TimetableHandler) CheckSlot(c *gin.Context) {
	var query dto.CheckSlotQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid slot query"))
		return
	}
	check, err := h.timetables.CheckSlot(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, check, nil)
}

// ClassView godoc
// @Summary Get the projected weekly grid of one class
// @Tags Timetables
// @Produce json
// @Param id path string true "Class ID"
// @Success 200 {object} response.Envelope
// @Router /timetables/classes/{id} [get]
func (h *TimetableHandler) ClassView(c *gin.Context) {
	view, err := h.timetables.GetClassView(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, view, nil)
}

// TimePlan godoc
// @Summary Get the clock-time table for a level
// @Tags Timetables
// @Produce json
// @Param level query string false "Level (defaults to İlkokul)"
// @Success 200 {object} response.Envelope
// @Router /timetables/timeplan [get]
func (h *TimetableHandler) TimePlan(c *gin.Context) {
	plan, err := h.timetables.GetTimePlan(models.Level(c.Query("level")))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, plan, nil)
}

// ExportTeacher godoc
// @Summary Export one teacher's timetable as CSV
// @Tags Timetables
// @Produce text/csv
// @Param id path string true "Teacher ID"
// @Success 200 {string} string "CSV content"
// @Router /timetables/teachers/{id}/export [get]
func (h *TimetableHandler) ExportTeacher(c *gin.Context) {
	raw, filename, err := h.timetables.ExportTeacherTimetable(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", raw)
}

// DeleteTeacher godoc
// @Summary Delete one teacher's timetable
// @Tags Timetables
// @Param id path string true "Teacher ID"
// @Success 204
// @Router /timetables/teachers/{id} [delete]
func (h *TimetableHandler) DeleteTeacher(c *gin.Context) {
	if err := h.timetables.DeleteTeacherTimetable(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// BulkDelete godoc
// @Summary Delete timetables by teacher or class scope
// @Tags Timetables
// @Accept json
// @Param payload body dto.BulkDeleteTimetablesRequest true "Deletion scope"
// @Success 204
// @Router /timetables/bulk-delete [post]
func (h *TimetableHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteTimetablesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid bulk delete payload"))
		return
	}
	if err := h.timetables.BulkDelete(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
