package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultModel is used when no model identifier is configured.
const DefaultModel = "openai/gpt-4o-mini"

// DefaultBaseURL is the fallback completion endpoint.
const DefaultBaseURL = "https://models.github.ai/inference"

// ErrMissingAPIKey indicates the completion credential is not configured.
var ErrMissingAPIKey = errors.New("completion api key not configured")

// ErrMissingBaseURL indicates the completion endpoint URL is not configured.
var ErrMissingBaseURL = errors.New("completion base url not configured")

// ErrEmptyCompletion indicates the endpoint answered without usable content.
var ErrEmptyCompletion = errors.New("completion returned no content")

var (
	completionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "essaycoach",
		Subsystem: "ai",
		Name:      "completion_duration_seconds",
		Help:      "Duration of completion requests",
	}, []string{"model"})

	completionFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "essaycoach",
		Subsystem: "ai",
		Name:      "completion_failures_total",
		Help:      "Number of failed completion requests",
	}, []string{"model"})
)

// ClientConfig defines configuration options for the completion client.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Logger  zerolog.Logger
}

// Client implements Completer against an OpenAI-compatible chat completion API.
type Client struct {
	api    *openai.Client
	cfg    ClientConfig
	tracer trace.Tracer
	logger zerolog.Logger
}

// NewClient builds a completion client. Missing credentials do not fail
// construction; they surface as errors on the first call so the service can
// still boot and report configuration problems per request.
func NewClient(cfg ClientConfig) *Client {
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	logger := cfg.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = zerolog.Nop()
	}

	var api *openai.Client
	if cfg.APIKey != "" && cfg.BaseURL != "" {
		clientConfig := openai.DefaultConfig(cfg.APIKey)
		clientConfig.BaseURL = cfg.BaseURL
		api = openai.NewClientWithConfig(clientConfig)
	}

	return &Client{
		api:    api,
		cfg:    cfg,
		tracer: otel.Tracer("github.com/essaycoach/essaycoach-api/pkg/ai"),
		logger: logger,
	}
}

// Configured reports whether the client holds everything needed to reach the endpoint.
func (c *Client) Configured() bool {
	return c.api != nil
}

// Complete sends the messages to the completion endpoint and returns the text
// of the first choice.
func (c *Client) Complete(parent context.Context, messages []Message, opts CallOptions) (string, error) {
	if c.cfg.APIKey == "" {
		return "", ErrMissingAPIKey
	}
	if c.cfg.BaseURL == "" {
		return "", ErrMissingBaseURL
	}

	model := opts.Model
	if model == "" {
		model = c.cfg.Model
	}

	ctx, span := c.tracer.Start(parent, "ai.complete", trace.WithAttributes(
		attribute.String("model", model),
		attribute.Int("messages", len(messages)),
	))
	defer span.End()

	request := openai.ChatCompletionRequest{
		Model:       model,
		MaxTokens:   opts.MaxTokens,
		Temperature: opts.Temperature,
		Messages:    toChatMessages(messages),
	}

	start := time.Now()
	resp, err := c.api.CreateChatCompletion(ctx, request)
	completionDuration.WithLabelValues(model).Observe(time.Since(start).Seconds())
	if err != nil {
		completionFailures.WithLabelValues(model).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return "", fmt.Errorf("completion request: %w", err)
	}

	if len(resp.Choices) == 0 {
		completionFailures.WithLabelValues(model).Inc()
		span.RecordError(ErrEmptyCompletion)
		span.SetStatus(codes.Error, ErrEmptyCompletion.Error())
		return "", ErrEmptyCompletion
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		completionFailures.WithLabelValues(model).Inc()
		return "", ErrEmptyCompletion
	}

	c.logger.Debug().
		Str("model", model).
		Int("prompt_tokens", resp.Usage.PromptTokens).
		Int("completion_tokens", resp.Usage.CompletionTokens).
		Msg("completion finished")

	return content, nil
}

func toChatMessages(messages []Message) []openai.ChatCompletionMessage {
	converted := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, message := range messages {
		role := message.Role
		switch role {
		case RoleSystem, RoleUser, RoleAssistant:
		default:
			role = RoleUser
		}
		converted = append(converted, openai.ChatCompletionMessage{
			Role:    role,
			Content: message.Content,
		})
	}
	return converted
}
