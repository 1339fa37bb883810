package models

import "time"

// TodoItemStatus enumerates possible todo item states.
const (
	TodoStatusPending    = "pending"
	TodoStatusInProgress = "in_progress"
	TodoStatusCompleted  = "completed"
)

// Todo item priorities.
const (
	TodoPriorityLow    = "low"
	TodoPriorityMedium = "medium"
	TodoPriorityHigh   = "high"
)

// TodoItem is a system-generated actionable suggestion tied to one criterion's feedback.
type TodoItem struct {
	ID          uint       `gorm:"primaryKey" json:"-"`
	ItemID      string     `gorm:"size:128;not null;index" json:"id"`
	FeedbackID  uint       `gorm:"not null;index" json:"-"`
	AnalysisID  string     `gorm:"size:64;not null;index" json:"analysis_id"`
	CriterionID string     `gorm:"size:64;not null" json:"criterion_id"`
	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Status      string     `gorm:"size:32;not null" json:"status"`
	Priority    string     `gorm:"size:16;not null" json:"priority"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// IsCompleted reports whether the item has been marked done.
func (t TodoItem) IsCompleted() bool {
	return t.Status == TodoStatusCompleted
}

// ValidTodoStatus reports whether the given status is one of the known states.
func ValidTodoStatus(status string) bool {
	switch status {
	case TodoStatusPending, TodoStatusInProgress, TodoStatusCompleted:
		return true
	}
	return false
}
