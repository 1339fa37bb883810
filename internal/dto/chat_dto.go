package dto

import "time"

// ChatMessage is one role-tagged entry of a feedback conversation. The history
// lives client-side and is replayed in full with every request.
type ChatMessage struct {
	Role      string            `json:"role" validate:"required,oneof=user assistant"`
	Content   string            `json:"content" validate:"required"`
	Timestamp time.Time         `json:"timestamp,omitempty"`
	Reactions []MessageReaction `json:"reactions,omitempty"`
}

// MessageReaction is a like/dislike tag attached to a chat message.
type MessageReaction struct {
	Type      string    `json:"type" validate:"oneof=like dislike"`
	UserID    string    `json:"userId"`
	Timestamp time.Time `json:"timestamp"`
}

// ChatFeedbackRequest is the payload for the follow-up chat endpoint. Messages
// must be present but may be empty for an opening turn.
type ChatFeedbackRequest struct {
	Messages      []ChatMessage `json:"messages" validate:"omitempty,dive"`
	ExamType      string        `json:"examType" validate:"required"`
	OriginalEssay string        `json:"originalEssay" validate:"required"`
}

// ChatFeedbackResponse carries the assistant's reply.
type ChatFeedbackResponse struct {
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
