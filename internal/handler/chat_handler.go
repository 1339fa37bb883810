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

// ChatHandler exposes the follow-up chat endpoint.
type ChatHandler struct {
	service   service.ChatService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewChatHandler constructs the handler.
func NewChatHandler(service service.ChatService, validator *validator.Validate, logger zerolog.Logger) *ChatHandler {
	return &ChatHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "chat_handler").Logger(),
	}
}

// ChatFeedback handles POST /chat-feedback.
func (h *ChatHandler) ChatFeedback(c *fiber.Ctx) error {
	var payload dto.ChatFeedbackRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	response, err := h.service.Reply(c.Context(), payload)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingMessages), isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "messages, exam type, and original essay are required")
		case errors.Is(err, rubric.ErrUnknownExamType):
			return utils.SendError(c, fiber.StatusBadRequest, invalidExamTypeMessage(payload.ExamType))
		default:
			status, message := upstreamStatus(err)
			requestLogger(h.logger, c).Error().Err(err).Msg("chat feedback failed")
			return utils.SendError(c, status, message)
		}
	}

	return utils.SendJSON(c, response)
}
