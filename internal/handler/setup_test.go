package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/essaycoach/essaycoach-api/internal/config"
	"github.com/essaycoach/essaycoach-api/internal/handler"
	"github.com/essaycoach/essaycoach-api/internal/models"
	"github.com/essaycoach/essaycoach-api/internal/repository"
	"github.com/essaycoach/essaycoach-api/internal/router"
	"github.com/essaycoach/essaycoach-api/internal/service"
	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

var testTuning = config.CompletionTuning{
	General:     ai.CallOptions{MaxTokens: 2000},
	Criterion:   ai.CallOptions{MaxTokens: 1000},
	Todo:        ai.CallOptions{MaxTokens: 800},
	Chat:        ai.CallOptions{MaxTokens: 900},
	Improvement: ai.CallOptions{MaxTokens: 600},
}

// scriptedCompleter answers each call kind with a canned response. Call kinds
// are told apart by their token budget, which is unique in the test tuning.
type scriptedCompleter struct {
	err error
}

func (s *scriptedCompleter) Complete(_ context.Context, _ []ai.Message, opts ai.CallOptions) (string, error) {
	if s.err != nil {
		return "", s.err
	}

	switch opts.MaxTokens {
	case testTuning.General.MaxTokens:
		return "General feedback.", nil
	case testTuning.Criterion.MaxTokens:
		return `{"score": 6, "maxScore": 9, "feedback": "Solid control.", "suggestions": ["Vary sentence openings."]}`, nil
	case testTuning.Todo.MaxTokens:
		return `[{"title": "Review linking words", "description": "Add transitions.", "priority": "high"}]`, nil
	case testTuning.Chat.MaxTokens:
		return "Try stronger topic sentences.", nil
	case testTuning.Improvement.MaxTokens:
		return `{"improvementScore": 8, "feedback": "Much clearer thesis.", "suggestions": ["Tighten the conclusion."]}`, nil
	}
	return "", errors.New("unexpected call options")
}

func newTestApp(t *testing.T, completer ai.Completer) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.EssayAnalysis{}, &models.CriterionFeedback{}, &models.TodoItem{}))

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.Nop()
	repo := repository.NewAnalysisRepository(db)

	analysisService := service.NewAnalysisService(repo, cache, completer, validate, logger, service.AnalysisConfig{
		CacheTTL: time.Minute,
		Tuning:   testTuning,
	})
	chatService := service.NewChatService(completer, validate, logger, testTuning.Chat)
	improvementService := service.NewImprovementService(completer, validate, logger, testTuning.Improvement)
	todoService := service.NewTodoService(repo, cache, logger)

	cfg := config.Config{AppName: "EssayCoach API", AppEnv: "test"}

	app := fiber.New()
	router.Register(app, cfg, router.Dependencies{
		AnalysisHandler:    handler.NewAnalysisHandler(analysisService, validate, logger),
		ChatHandler:        handler.NewChatHandler(chatService, validate, logger),
		ImprovementHandler: handler.NewImprovementHandler(improvementService, validate, logger),
		TodoHandler:        handler.NewTodoHandler(todoService, validate, logger),
	})

	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any) (*http.Response, map[string]any) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, 5000)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	decoded := map[string]any{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}
