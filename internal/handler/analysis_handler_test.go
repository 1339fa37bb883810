package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

func TestAnalyzeEssayRejectsMissingFields(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})

	resp, body := doJSON(t, app, http.MethodPost, "/analyze-essay", map[string]any{
		"examType": "ielts",
	})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "essay content and exam type are required", body["error"])
}

func TestAnalyzeEssayRejectsUnknownExamType(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})

	resp, body := doJSON(t, app, http.MethodPost, "/analyze-essay", map[string]any{
		"essay":    "Some essay text.",
		"examType": "sat",
	})

	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Invalid exam type: sat. Supported types: ielts, metu-epe, toefl", body["error"])
}

func TestAnalyzeEssayReturnsGeneralFeedback(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})

	resp, body := doJSON(t, app, http.MethodPost, "/analyze-essay", map[string]any{
		"essay":    "Universities should teach practical skills alongside theory.",
		"examType": "ielts",
		"title":    "Practical skills",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "General feedback.", body["feedback"])
	require.Equal(t, "ielts", body["examType"])
	require.NotEmpty(t, body["id"])
}

func TestAnalyzeEssayReportsMissingAPIKey(t *testing.T) {
	app := newTestApp(t, ai.NewClient(ai.ClientConfig{}))

	resp, body := doJSON(t, app, http.MethodPost, "/analyze-essay", map[string]any{
		"essay":    "Some essay text.",
		"examType": "ielts",
	})

	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "completion API key not configured", body["error"])
}

func TestAnalyzeEssayReportsMissingBaseURL(t *testing.T) {
	app := newTestApp(t, ai.NewClient(ai.ClientConfig{APIKey: "test-key"}))

	resp, body := doJSON(t, app, http.MethodPost, "/analyze-essay", map[string]any{
		"essay":    "Some essay text.",
		"examType": "ielts",
	})

	require.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	require.Equal(t, "completion base URL not configured", body["error"])
}

func TestAnalyzeEssayEnhancedReturnsFullAnalysis(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})

	resp, body := doJSON(t, app, http.MethodPost, "/analyze-essay-enhanced", map[string]any{
		"essay":    "Universities should teach practical skills alongside theory.",
		"examType": "ielts",
	})

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, float64(67), body["overallScore"])
	require.Equal(t, float64(100), body["maxScore"])
	require.Equal(t, "General feedback.", body["generalFeedback"])

	feedbacks, ok := body["criterionFeedbacks"].([]any)
	require.True(t, ok)
	require.Len(t, feedbacks, 4)

	first, ok := feedbacks[0].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "task-response", first["criterionId"])
	require.Equal(t, float64(6), first["score"])

	todos, ok := body["todoList"].([]any)
	require.True(t, ok)
	require.Len(t, todos, 4)
}

func TestGetAnalysisReturnsNotFound(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})

	resp, body := doJSON(t, app, http.MethodGet, "/api/v1/analyses/missing", nil)

	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "analysis not found", body["error"])
}

func TestAnalysesRoundTrip(t *testing.T) {
	app := newTestApp(t, &scriptedCompleter{})

	resp, created := doJSON(t, app, http.MethodPost, "/api/v1/analyze-essay-enhanced", map[string]any{
		"essay":    "Some essay text.",
		"examType": "toefl",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	id, ok := created["id"].(string)
	require.True(t, ok)
	require.NotEmpty(t, id)

	resp, fetched := doJSON(t, app, http.MethodGet, "/api/v1/analyses/"+id, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, id, fetched["id"])
	require.Equal(t, created["overallScore"], fetched["overallScore"])

	req := httptest.NewRequest(http.MethodGet, "/api/v1/analyses", nil)
	listResp, err := app.Test(req, 5000)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, listResp.StatusCode)

	raw, err := io.ReadAll(listResp.Body)
	require.NoError(t, err)

	var summaries []map[string]any
	require.NoError(t, json.Unmarshal(raw, &summaries))
	require.Len(t, summaries, 1)
	require.Equal(t, id, summaries[0]["id"])
	require.Equal(t, "toefl", summaries[0]["examType"])
}
