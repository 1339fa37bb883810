package ai

import "context"

// Message roles understood by the completion endpoint.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one role-tagged entry in a completion conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// CallOptions tunes a single completion call.
type CallOptions struct {
	Model       string
	Temperature float32
	MaxTokens   int
}

// Completer describes a text-completion backend. Implementations return the
// content of the first choice produced by the model.
type Completer interface {
	Complete(ctx context.Context, messages []Message, opts CallOptions) (string, error)
}
