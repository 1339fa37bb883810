package dto

import "time"

// EvaluateImprovementsRequest asks how well an edited essay addresses one todo item.
type EvaluateImprovementsRequest struct {
	OriginalEssay string `json:"originalEssay" validate:"required"`
	EditedEssay   string `json:"editedEssay" validate:"required"`
	CriterionID   string `json:"criterionId" validate:"required"`
	CriterionName string `json:"criterionName" validate:"required"`
	TodoItemTitle string `json:"todoItemTitle" validate:"required"`
}

// ImprovementEvaluation is the structured verdict on a revision.
type ImprovementEvaluation struct {
	ImprovementScore int      `json:"improvementScore"`
	Feedback         string   `json:"feedback"`
	Suggestions      []string `json:"suggestions"`
}

// EvaluateImprovementsResponse wraps the evaluation with its timestamp.
type EvaluateImprovementsResponse struct {
	Evaluation ImprovementEvaluation `json:"evaluation"`
	Timestamp  time.Time             `json:"timestamp"`
}
