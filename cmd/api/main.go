package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/essaycoach/essaycoach-api/internal/config"
	"github.com/essaycoach/essaycoach-api/internal/database"
	"github.com/essaycoach/essaycoach-api/internal/handler"
	"github.com/essaycoach/essaycoach-api/internal/middleware"
	"github.com/essaycoach/essaycoach-api/internal/models"
	"github.com/essaycoach/essaycoach-api/internal/repository"
	"github.com/essaycoach/essaycoach-api/internal/router"
	"github.com/essaycoach/essaycoach-api/internal/service"
	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.EssayAnalysis{}, &models.CriterionFeedback{}, &models.TodoItem{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	} else {
		logger.Warn().Msg("no redis url configured, analysis caching disabled")
	}

	completer := ai.NewClient(ai.ClientConfig{
		APIKey:  cfg.AIAPIKey,
		BaseURL: cfg.AIBaseURL,
		Model:   cfg.AIModel,
		Logger:  logger,
	})

	validate := validator.New(validator.WithRequiredStructEnabled())

	analysisRepo := repository.NewAnalysisRepository(db)

	analysisService := service.NewAnalysisService(analysisRepo, redisClient, completer, validate, logger, service.AnalysisConfig{
		MaxCriterionCalls: cfg.MaxCriterionCalls,
		CacheTTL:          cfg.AnalysisCacheTTL,
		Tuning:            cfg.Completion,
	})
	chatService := service.NewChatService(completer, validate, logger, cfg.Completion.Chat)
	improvementService := service.NewImprovementService(completer, validate, logger, cfg.Completion.Improvement)
	todoService := service.NewTodoService(analysisRepo, redisClient, logger)

	analysisHandler := handler.NewAnalysisHandler(analysisService, validate, logger)
	chatHandler := handler.NewChatHandler(chatService, validate, logger)
	improvementHandler := handler.NewImprovementHandler(improvementService, validate, logger)
	todoHandler := handler.NewTodoHandler(todoService, validate, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		AnalysisHandler:    analysisHandler,
		ChatHandler:        chatHandler,
		ImprovementHandler: improvementHandler,
		TodoHandler:        todoHandler,
		AnalysisLimiter:    middleware.RateLimit("analysis", cfg.RateLimitMax, cfg.RateLimitWindow),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
