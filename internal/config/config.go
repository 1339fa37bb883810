package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName           string
	AppEnv            string
	AppPort           string
	DatabaseURL       string
	RedisURL          string
	AnalysisCacheTTL  time.Duration
	AIAPIKey          string
	AIBaseURL         string
	AIModel           string
	MaxCriterionCalls int
	RateLimitMax      int
	RateLimitWindow   time.Duration
	Completion        CompletionTuning
}

// CompletionTuning collapses the per-call-kind model options into one place so
// token budgets and temperatures are tuned centrally rather than at call sites.
type CompletionTuning struct {
	General     ai.CallOptions
	Criterion   ai.CallOptions
	Todo        ai.CallOptions
	Chat        ai.CallOptions
	Improvement ai.CallOptions
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("ESSAYCOACH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "EssayCoach API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("analysis.cache_ttl", "15m")
	v.SetDefault("analysis.max_criterion_calls", 0)
	v.SetDefault("rate_limit.max", 10)
	v.SetDefault("rate_limit.window_ms", 60000)
	v.SetDefault("ai.base_url", ai.DefaultBaseURL)
	v.SetDefault("ai.model", ai.DefaultModel)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.general_max_tokens", 2000)
	v.SetDefault("ai.criterion_max_tokens", 1000)
	v.SetDefault("ai.todo_max_tokens", 800)
	v.SetDefault("ai.chat_max_tokens", 1000)
	v.SetDefault("ai.improvement_max_tokens", 600)

	ttlString := v.GetString("analysis.cache_ttl")
	if ttlString == "" {
		ttlString = "15m"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid analysis cache ttl: %w", err)
	}

	model := v.GetString("ai.model")
	temperature := float32(v.GetFloat64("ai.temperature"))
	options := func(maxTokensKey string) ai.CallOptions {
		return ai.CallOptions{
			Model:       model,
			Temperature: temperature,
			MaxTokens:   v.GetInt(maxTokensKey),
		}
	}

	cfg := Config{
		AppName:           v.GetString("app.name"),
		AppEnv:            v.GetString("app.env"),
		AppPort:           v.GetString("app.port"),
		DatabaseURL:       v.GetString("database.url"),
		RedisURL:          v.GetString("redis.url"),
		AnalysisCacheTTL:  ttl,
		AIAPIKey:          v.GetString("ai.api_key"),
		AIBaseURL:         v.GetString("ai.base_url"),
		AIModel:           model,
		MaxCriterionCalls: v.GetInt("analysis.max_criterion_calls"),
		RateLimitMax:      v.GetInt("rate_limit.max"),
		RateLimitWindow:   time.Duration(v.GetInt("rate_limit.window_ms")) * time.Millisecond,
		Completion: CompletionTuning{
			General:     options("ai.general_max_tokens"),
			Criterion:   options("ai.criterion_max_tokens"),
			Todo:        options("ai.todo_max_tokens"),
			Chat:        options("ai.chat_max_tokens"),
			Improvement: options("ai.improvement_max_tokens"),
		},
	}

	if cfg.MaxCriterionCalls < 0 {
		cfg.MaxCriterionCalls = 0
	}

	return cfg, nil
}
