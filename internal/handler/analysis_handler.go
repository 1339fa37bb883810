package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/essaycoach/essaycoach-api/internal/dto"
	"github.com/essaycoach/essaycoach-api/internal/rubric"
	"github.com/essaycoach/essaycoach-api/internal/service"
	"github.com/essaycoach/essaycoach-api/internal/utils"
)

// AnalysisHandler exposes the essay analysis endpoints.
type AnalysisHandler struct {
	service   service.AnalysisService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAnalysisHandler constructs the handler.
func NewAnalysisHandler(service service.AnalysisService, validator *validator.Validate, logger zerolog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "analysis_handler").Logger(),
	}
}

// AnalyzeBasic handles POST /analyze-essay: one general feedback completion.
func (h *AnalysisHandler) AnalyzeBasic(c *fiber.Ctx) error {
	var payload dto.AnalyzeEssayRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.AnalyzeBasic(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err, payload.ExamType)
	}

	return utils.SendJSON(c, response)
}

// AnalyzeEnhanced handles POST /analyze-essay-enhanced: the full per-criterion pipeline.
func (h *AnalysisHandler) AnalyzeEnhanced(c *fiber.Ctx) error {
	var payload dto.AnalyzeEssayRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Analyze(c.Context(), payload)
	if err != nil {
		return h.handleError(c, err, payload.ExamType)
	}

	return utils.SendJSON(c, response)
}

// Get handles GET /api/v1/analyses/:id.
func (h *AnalysisHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "analysis id is required")
	}

	response, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAnalysisNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "analysis not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Str("analysis_id", id).Msg("failed to load analysis")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendJSON(c, response)
}

// List handles GET /api/v1/analyses.
func (h *AnalysisHandler) List(c *fiber.Ctx) error {
	summaries, err := h.service.List(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list analyses")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}

	return utils.SendJSON(c, summaries)
}

func (h *AnalysisHandler) handleError(c *fiber.Ctx, err error, examType string) error {
	switch {
	case isValidationError(err):
		return utils.SendError(c, fiber.StatusBadRequest, "essay content and exam type are required")
	case errors.Is(err, rubric.ErrUnknownExamType):
		return utils.SendError(c, fiber.StatusBadRequest, invalidExamTypeMessage(examType))
	default:
		status, message := upstreamStatus(err)
		requestLogger(h.logger, c).Error().Err(err).Msg("essay analysis failed")
		return utils.SendError(c, status, message)
	}
}
