package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/essaycoach/essaycoach-api/internal/dto"
	"github.com/essaycoach/essaycoach-api/internal/rubric"
	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

type replyCompleter struct {
	reply    string
	err      error
	messages []ai.Message
}

func (r *replyCompleter) Complete(_ context.Context, messages []ai.Message, _ ai.CallOptions) (string, error) {
	r.messages = messages
	if r.err != nil {
		return "", r.err
	}
	return r.reply, nil
}

func newChatService(completer ai.Completer) *chatService {
	svc := NewChatService(completer, validator.New(validator.WithRequiredStructEnabled()), zerolog.Nop(), testTuning.Chat).(*chatService)
	svc.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestChatReplyRequiresMessagesField(t *testing.T) {
	svc := newChatService(&replyCompleter{})

	_, err := svc.Reply(context.Background(), dto.ChatFeedbackRequest{
		ExamType:      "ielts",
		OriginalEssay: "Some essay text.",
	})

	require.ErrorIs(t, err, ErrMissingMessages)
}

func TestChatReplyAcceptsEmptyHistory(t *testing.T) {
	completer := &replyCompleter{reply: "Happy to help with your essay."}
	svc := newChatService(completer)

	response, err := svc.Reply(context.Background(), dto.ChatFeedbackRequest{
		Messages:      []dto.ChatMessage{},
		ExamType:      "ielts",
		OriginalEssay: "Some essay text.",
	})

	require.NoError(t, err)
	require.Equal(t, "Happy to help with your essay.", response.Response)
	require.False(t, response.Timestamp.IsZero())
}

func TestChatReplyReplaysHistoryAfterSystemPrompt(t *testing.T) {
	completer := &replyCompleter{reply: "Try stronger topic sentences."}
	svc := newChatService(completer)

	_, err := svc.Reply(context.Background(), dto.ChatFeedbackRequest{
		Messages: []dto.ChatMessage{
			{Role: "user", Content: "How can I improve my introduction?"},
			{Role: "assistant", Content: "State your position in the first sentence."},
			{Role: "user", Content: "Can you give an example?"},
		},
		ExamType:      "toefl",
		OriginalEssay: "Some essay text.",
	})

	require.NoError(t, err)
	require.Len(t, completer.messages, 4)
	require.Equal(t, ai.RoleSystem, completer.messages[0].Role)
	require.Equal(t, "How can I improve my introduction?", completer.messages[1].Content)
	require.Equal(t, ai.RoleAssistant, completer.messages[2].Role)
}

func TestChatReplyRejectsUnknownExamType(t *testing.T) {
	svc := newChatService(&replyCompleter{})

	_, err := svc.Reply(context.Background(), dto.ChatFeedbackRequest{
		Messages:      []dto.ChatMessage{},
		ExamType:      "gre",
		OriginalEssay: "Some essay text.",
	})

	require.ErrorIs(t, err, rubric.ErrUnknownExamType)
}

func TestChatReplyWrapsCompleterFailure(t *testing.T) {
	svc := newChatService(&replyCompleter{err: errors.New("connection refused")})

	_, err := svc.Reply(context.Background(), dto.ChatFeedbackRequest{
		Messages:      []dto.ChatMessage{},
		ExamType:      "ielts",
		OriginalEssay: "Some essay text.",
	})

	require.Error(t, err)
	require.Contains(t, err.Error(), "chat reply")
}
