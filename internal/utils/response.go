package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body returned for every failed request. Clients rely on
// the error field always being present and the body always being JSON.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SendJSON sends a success payload as-is with HTTP 200.
func SendJSON(c *fiber.Ctx, payload interface{}) error {
	return c.Status(fiber.StatusOK).JSON(payload)
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message})
}

// SendErrorWithDetails sends an error response carrying extra diagnostic text.
func SendErrorWithDetails(c *fiber.Ctx, status int, message, details string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{Error: message, Details: details})
}
