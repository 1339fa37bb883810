package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestHealthCheckReportsService(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/health", nil)

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "EssayCoach API", body["service"])
	require.Equal(t, "test", body["environment"])
}
