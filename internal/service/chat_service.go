package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/essaycoach/essaycoach-api/internal/dto"
	"github.com/essaycoach/essaycoach-api/internal/rubric"
	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

// ErrMissingMessages indicates the chat request omitted the messages field.
// An empty history is valid for an opening turn; an absent one is not.
var ErrMissingMessages = errors.New("messages field is required")

// ChatService continues the feedback conversation about an analysed essay.
type ChatService interface {
	Reply(ctx context.Context, payload dto.ChatFeedbackRequest) (dto.ChatFeedbackResponse, error)
}

type chatService struct {
	completer ai.Completer
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	options   ai.CallOptions
	now       func() time.Time
}

// NewChatService constructs the follow-up chat service.
func NewChatService(completer ai.Completer, validate *validator.Validate, logger zerolog.Logger, options ai.CallOptions) ChatService {
	return &chatService{
		completer: completer,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "chat_service").Logger(),
		options:   options,
		now:       time.Now,
	}
}

func (s *chatService) Reply(ctx context.Context, payload dto.ChatFeedbackRequest) (dto.ChatFeedbackResponse, error) {
	if payload.Messages == nil {
		return dto.ChatFeedbackResponse{}, ErrMissingMessages
	}
	if err := s.validator.Struct(payload); err != nil {
		return dto.ChatFeedbackResponse{}, err
	}

	selected, err := rubric.Get(payload.ExamType)
	if err != nil {
		return dto.ChatFeedbackResponse{}, err
	}

	history := make([]ai.Message, 0, len(payload.Messages))
	for _, message := range payload.Messages {
		history = append(history, ai.Message{
			Role:    message.Role,
			Content: s.sanitizer.Sanitize(message.Content),
		})
	}

	essay := s.sanitizer.Sanitize(payload.OriginalEssay)
	reply, err := s.completer.Complete(ctx, ai.BuildChatMessages(selected.Name, essay, history), s.options)
	if err != nil {
		return dto.ChatFeedbackResponse{}, fmt.Errorf("chat reply: %w", err)
	}

	return dto.ChatFeedbackResponse{
		Response:  reply,
		Timestamp: s.now().UTC(),
	}, nil
}
