package handler_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func analyzedEssayTodoID(t *testing.T, app *fiber.App) (string, string) {
	t.Helper()

	resp, body := doJSON(t, app, http.MethodPost, "/analyze-essay-enhanced", map[string]any{
		"essay":    "Some essay text.",
		"examType": "ielts",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	analysisID, ok := body["id"].(string)
	require.True(t, ok)

	todos, ok := body["todoList"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, todos)

	first, ok := todos[0].(map[string]any)
	require.True(t, ok)
	todoID, ok := first["id"].(string)
	require.True(t, ok)

	return analysisID, todoID
}

func TestUpdateTodoStatusRejectsUnknownStatus(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})
	analysisID, todoID := analyzedEssayTodoID(t, app)

	resp, body := doJSON(t, app, http.MethodPatch, "/api/v1/analyses/"+analysisID+"/todos/"+todoID, map[string]any{
		"status": "done",
	})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "status must be one of pending, in_progress, completed", body["error"])
}

func TestUpdateTodoStatusReturnsNotFound(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})
	analysisID, _ := analyzedEssayTodoID(t, app)

	resp, body := doJSON(t, app, http.MethodPatch, "/api/v1/analyses/"+analysisID+"/todos/unknown-todo", map[string]any{
		"status": "completed",
	})

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "todo item not found", body["error"])
}

func TestUpdateTodoStatusMarksItemCompleted(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})
	analysisID, todoID := analyzedEssayTodoID(t, app)

	resp, body := doJSON(t, app, http.MethodPatch, "/api/v1/analyses/"+analysisID+"/todos/"+todoID, map[string]any{
		"status": "completed",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "completed", body["status"])
	require.NotEmpty(t, body["completedAt"])

	resp, fetched := doJSON(t, app, http.MethodGet, "/api/v1/analyses/"+analysisID, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	todos, ok := fetched["todoList"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, todos)

	first, ok := todos[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "completed", first["status"])
}
