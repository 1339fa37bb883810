package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/essaycoach/essaycoach-api/internal/middleware"
	"github.com/essaycoach/essaycoach-api/internal/rubric"
	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

func requestLogger(base zerolog.Logger, c *fiber.Ctx) *zerolog.Logger {
	logger := base
	if c != nil {
		if correlation := middleware.GetCorrelationID(c); correlation != "" {
			logger = base.With().Str("correlation_id", correlation).Logger()
		}
	}
	return &logger
}

func invalidExamTypeMessage(examType string) string {
	return fmt.Sprintf("Invalid exam type: %s. Supported types: %s", examType, strings.Join(rubric.ValidTypes(), ", "))
}

func isValidationError(err error) bool {
	var validationErrors validator.ValidationErrors
	return errors.As(err, &validationErrors)
}

// upstreamStatus maps completion client failures onto the HTTP contract:
// missing configuration and remote errors are both 500s, but each missing
// variable gets its own message.
func upstreamStatus(err error) (int, string) {
	switch {
	case errors.Is(err, ai.ErrMissingAPIKey):
		return fiber.StatusInternalServerError, "completion API key not configured"
	case errors.Is(err, ai.ErrMissingBaseURL):
		return fiber.StatusInternalServerError, "completion base URL not configured"
	default:
		return fiber.StatusInternalServerError, err.Error()
	}
}
