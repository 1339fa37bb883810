package handler

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/essaycoach/essaycoach-api/internal/dto"
	"github.com/essaycoach/essaycoach-api/internal/service"
	"github.com/essaycoach/essaycoach-api/internal/utils"
)

// TodoHandler exposes todo status updates on stored analyses.
type TodoHandler struct {
	service   service.TodoService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewTodoHandler constructs the handler.
func NewTodoHandler(service service.TodoService, validator *validator.Validate, logger zerolog.Logger) *TodoHandler {
	return &TodoHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "todo_handler").Logger(),
	}
}

// UpdateStatus handles PATCH /api/v1/analyses/:id/todos/:todoId.
func (h *TodoHandler) UpdateStatus(c *fiber.Ctx) error {
	analysisID := c.Params("id")
	itemID := c.Params("todoId")
	if analysisID == "" || itemID == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "analysis id and todo id are required")
	}

	var payload dto.TodoStatusUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}
	if err := h.validator.Struct(payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "status must be one of pending, in_progress, completed")
	}

	item, err := h.service.UpdateStatus(c.Context(), analysisID, itemID, payload.Status)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidTodoStatus):
			return utils.SendError(c, fiber.StatusBadRequest, "status must be one of pending, in_progress, completed")
		case errors.Is(err, service.ErrTodoNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "todo item not found")
		default:
			requestLogger(h.logger, c).Error().Err(err).Str("analysis_id", analysisID).Msg("todo status update failed")
			return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
		}
	}

	return utils.SendJSON(c, item)
}
