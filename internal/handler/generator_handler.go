package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/okulsys/ders-programi-api/internal/dto"
	"github.com/okulsys/ders-programi-api/internal/service"
	appErrors "github.com/okulsys/ders-programi-api/pkg/errors"
	"github.com/okulsys/ders-programi-api/pkg/response"
)

// GeneratorHandler wires the auto-generation service to HTTP routes.
type GeneratorHandler struct {
	generator *service.GeneratorService
	metrics   *service.MetricsService
}

// NewGeneratorHandler constructs a new GeneratorHandler. The metrics service
// may be nil.
func NewGeneratorHandler(generator *service.GeneratorService, metrics *service.MetricsService) *GeneratorHandler {
	return &GeneratorHandler{generator: generator, metrics: metrics}
}

// Generate godoc
// @Summary Auto-generate timetables for the whole roster
// @Description Runs the greedy engine and returns a best-effort result. Nothing is persisted; review and commit via the apply endpoint.
// @Tags Generator
// @Accept json
// @Produce json
// @Param payload body dto.GenerateTimetablesRequest false "Option overrides"
// @Success 200 {object} response.Envelope
// @Router /generator/generate [post]
func (h *GeneratorHandler) Generate(c *gin.Context) {
	var req dto.GenerateTimetablesRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid generation payload"))
			return
		}
	}
	resp, err := h.generator.Generate(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.metrics.RecordGenerationRun(resp.Success)
	response.JSON(c, http.StatusOK, resp, nil)
}

// Apply godoc
// @Summary Persist a reviewed generation result
// @Tags Generator
// @Accept json
// @Produce json
// @Param payload body dto.ApplyGenerationRequest true "Schedules to persist"
// @Success 200 {object} response.Envelope
// @Router /generator/apply [post]
func (h *GeneratorHandler) Apply(c *gin.Context) {
	var req dto.ApplyGenerationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid apply payload"))
		return
	}
	resp, err := h.generator.Apply(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resp, nil)
}
