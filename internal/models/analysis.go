package models

import (
	"time"

	"gorm.io/datatypes"
)

// AnalysisMaxScore is the fixed ceiling for the aggregated overall score.
const AnalysisMaxScore = 100

// EssayAnalysis is the aggregate result of one essay submission.
type EssayAnalysis struct {
	ID                 string               `gorm:"primaryKey;size:64" json:"id"`
	Essay              string               `gorm:"type:text;not null" json:"essay"`
	ExamType           string               `gorm:"size:32;not null;index" json:"exam_type"`
	Title              string               `gorm:"size:255" json:"title"`
	Topic              string               `gorm:"size:255" json:"topic"`
	OverallScore       int                  `gorm:"not null" json:"overall_score"`
	MaxScore           int                  `gorm:"not null" json:"max_score"`
	GeneralFeedback    string               `gorm:"type:text" json:"general_feedback"`
	CriterionFeedbacks []CriterionFeedback  `gorm:"foreignKey:AnalysisID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"criterion_feedbacks"`
	CreatedAt          time.Time            `json:"created_at"`
	UpdatedAt          time.Time            `json:"updated_at"`
}

// CriterionFeedback is the per-criterion outcome attached to an analysis.
type CriterionFeedback struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	AnalysisID    string         `gorm:"size:64;not null;index" json:"analysis_id"`
	CriterionID   string         `gorm:"size:64;not null" json:"criterion_id"`
	CriterionName string         `gorm:"size:128;not null" json:"criterion_name"`
	Score         float64        `gorm:"not null" json:"score"`
	MaxScore      int            `gorm:"not null" json:"max_score"`
	Feedback      string         `gorm:"type:text" json:"feedback"`
	AIFeedback    string         `gorm:"type:text" json:"ai_feedback"`
	Suggestions   datatypes.JSON `json:"suggestions"`
	TodoItems     []TodoItem     `gorm:"foreignKey:FeedbackID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"todo_items"`
	CreatedAt     time.Time      `json:"created_at"`
}
