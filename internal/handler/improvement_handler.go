package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/essaycoach/essaycoach-api/internal/dto"
	"github.com/essaycoach/essaycoach-api/internal/service"
	"github.com/essaycoach/essaycoach-api/internal/utils"
)

// ImprovementHandler exposes the improvement evaluation endpoint.
type ImprovementHandler struct {
	service   service.ImprovementService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewImprovementHandler constructs the handler.
func NewImprovementHandler(service service.ImprovementService, validator *validator.Validate, logger zerolog.Logger) *ImprovementHandler {
	return &ImprovementHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "improvement_handler").Logger(),
	}
}

// EvaluateImprovements handles POST /evaluate-improvements.
func (h *ImprovementHandler) EvaluateImprovements(c *fiber.Ctx) error {
	var payload dto.EvaluateImprovementsRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Evaluate(c.Context(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest,
				"All fields are required: originalEssay, editedEssay, criterionId, criterionName, todoItemTitle")
		}

		status, message := upstreamStatus(err)
		requestLogger(h.logger, c).Error().Err(err).Msg("improvement evaluation failed")
		return utils.SendErrorWithDetails(c, status, message, "failed to evaluate improvements")
	}

	return utils.SendJSON(c, response)
}
