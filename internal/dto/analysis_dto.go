package dto

import (
	"encoding/json"
	"time"

	"github.com/essaycoach/essaycoach-api/internal/models"
)

// AnalyzeEssayRequest is the payload for both analysis endpoints.
type AnalyzeEssayRequest struct {
	Essay    string `json:"essay" validate:"required,min=1"`
	ExamType string `json:"examType" validate:"required"`
	Title    string `json:"title"`
	Topic    string `json:"topic"`
}

// BasicAnalysisResponse is the /analyze-essay result: one general feedback text.
type BasicAnalysisResponse struct {
	ID        string    `json:"id"`
	Feedback  string    `json:"feedback"`
	Essay     string    `json:"essay"`
	ExamType  string    `json:"examType"`
	Title     string    `json:"title,omitempty"`
	Topic     string    `json:"topic,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// EssayAnalysisResponse is the full aggregate returned by /analyze-essay-enhanced.
type EssayAnalysisResponse struct {
	ID                 string                      `json:"id"`
	Essay              string                      `json:"essay"`
	ExamType           string                      `json:"examType"`
	Title              string                      `json:"title,omitempty"`
	Topic              string                      `json:"topic,omitempty"`
	Timestamp          time.Time                   `json:"timestamp"`
	OverallScore       int                         `json:"overallScore"`
	MaxScore           int                         `json:"maxScore"`
	CriterionFeedbacks []CriterionFeedbackResponse `json:"criterionFeedbacks"`
	GeneralFeedback    string                      `json:"generalFeedback"`
	TodoList           []TodoItemResponse          `json:"todoList"`
	EditingHistory     []EditingSession            `json:"editingHistory"`
}

// CriterionFeedbackResponse is the per-criterion slice of an analysis payload.
type CriterionFeedbackResponse struct {
	CriterionID   string             `json:"criterionId"`
	CriterionName string             `json:"criterionName"`
	Score         float64            `json:"score"`
	MaxScore      int                `json:"maxScore"`
	Feedback      string             `json:"feedback"`
	AIFeedback    string             `json:"aiFeedback"`
	Suggestions   []string           `json:"suggestions"`
	ChatHistory   []ChatMessage      `json:"chatHistory"`
	TodoItems     []TodoItemResponse `json:"todoItems"`
}

// TodoItemResponse is one actionable suggestion in an analysis payload.
type TodoItemResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	CriterionID string     `json:"criterionId"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// EditingSession records one edit/compare round on an analysed essay. Sessions
// are produced client-side; the server only echoes the empty history on a
// fresh analysis.
type EditingSession struct {
	ID           string    `json:"id"`
	OriginalText string    `json:"originalText"`
	EditedText   string    `json:"editedText"`
	Timestamp    time.Time `json:"timestamp"`
	CriterionID  string    `json:"criterionId,omitempty"`
	TodoItemID   string    `json:"todoItemId,omitempty"`
}

// AnalysisSummaryResponse is the list-view projection of a stored analysis.
type AnalysisSummaryResponse struct {
	ID           string    `json:"id"`
	ExamType     string    `json:"examType"`
	Title        string    `json:"title,omitempty"`
	Topic        string    `json:"topic,omitempty"`
	OverallScore int       `json:"overallScore"`
	MaxScore     int       `json:"maxScore"`
	Timestamp    time.Time `json:"timestamp"`
}

// NewEssayAnalysisResponse builds the full analysis payload from a model.
func NewEssayAnalysisResponse(analysis models.EssayAnalysis) EssayAnalysisResponse {
	feedbacks := make([]CriterionFeedbackResponse, 0, len(analysis.CriterionFeedbacks))
	todoList := make([]TodoItemResponse, 0)
	for _, feedback := range analysis.CriterionFeedbacks {
		response := NewCriterionFeedbackResponse(feedback)
		feedbacks = append(feedbacks, response)
		todoList = append(todoList, response.TodoItems...)
	}

	return EssayAnalysisResponse{
		ID:                 analysis.ID,
		Essay:              analysis.Essay,
		ExamType:           analysis.ExamType,
		Title:              analysis.Title,
		Topic:              analysis.Topic,
		Timestamp:          analysis.CreatedAt,
		OverallScore:       analysis.OverallScore,
		MaxScore:           analysis.MaxScore,
		CriterionFeedbacks: feedbacks,
		GeneralFeedback:    analysis.GeneralFeedback,
		TodoList:           todoList,
		EditingHistory:     []EditingSession{},
	}
}

// NewCriterionFeedbackResponse converts a CriterionFeedback model into a DTO.
func NewCriterionFeedbackResponse(feedback models.CriterionFeedback) CriterionFeedbackResponse {
	suggestions := []string{}
	if len(feedback.Suggestions) > 0 {
		_ = json.Unmarshal(feedback.Suggestions, &suggestions)
	}

	todos := make([]TodoItemResponse, 0, len(feedback.TodoItems))
	for _, item := range feedback.TodoItems {
		todos = append(todos, NewTodoItemResponse(item))
	}

	return CriterionFeedbackResponse{
		CriterionID:   feedback.CriterionID,
		CriterionName: feedback.CriterionName,
		Score:         feedback.Score,
		MaxScore:      feedback.MaxScore,
		Feedback:      feedback.Feedback,
		AIFeedback:    feedback.AIFeedback,
		Suggestions:   suggestions,
		ChatHistory:   []ChatMessage{},
		TodoItems:     todos,
	}
}

// NewTodoItemResponse converts a TodoItem model into a DTO.
func NewTodoItemResponse(item models.TodoItem) TodoItemResponse {
	return TodoItemResponse{
		ID:          item.ItemID,
		Title:       item.Title,
		Description: item.Description,
		Status:      item.Status,
		Priority:    item.Priority,
		CriterionID: item.CriterionID,
		CreatedAt:   item.CreatedAt,
		CompletedAt: item.CompletedAt,
	}
}

// NewAnalysisSummaryResponse builds the list projection from a model.
func NewAnalysisSummaryResponse(analysis models.EssayAnalysis) AnalysisSummaryResponse {
	return AnalysisSummaryResponse{
		ID:           analysis.ID,
		ExamType:     analysis.ExamType,
		Title:        analysis.Title,
		Topic:        analysis.Topic,
		OverallScore: analysis.OverallScore,
		MaxScore:     analysis.MaxScore,
		Timestamp:    analysis.CreatedAt,
	}
}
