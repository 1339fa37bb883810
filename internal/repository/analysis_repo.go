package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/essaycoach/essaycoach-api/internal/models"
)

// AnalysisRepository exposes persistence helpers for essay analyses.
type AnalysisRepository interface {
	Create(ctx context.Context, analysis *models.EssayAnalysis) error
	GetByID(ctx context.Context, id string) (models.EssayAnalysis, error)
	List(ctx context.Context) ([]models.EssayAnalysis, error)
	GetTodoItem(ctx context.Context, analysisID, itemID string) (models.TodoItem, error)
	UpdateTodoItem(ctx context.Context, item *models.TodoItem) error
}

// NewAnalysisRepository constructs an analysis repository.
func NewAnalysisRepository(db *gorm.DB) AnalysisRepository {
	return &analysisRepository{db: db}
}

type analysisRepository struct {
	db *gorm.DB
}

func (r *analysisRepository) Create(ctx context.Context, analysis *models.EssayAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}

func (r *analysisRepository) GetByID(ctx context.Context, id string) (models.EssayAnalysis, error) {
	var analysis models.EssayAnalysis
	err := r.db.WithContext(ctx).
		Preload("CriterionFeedbacks").
		Preload("CriterionFeedbacks.TodoItems").
		First(&analysis, "id = ?", id).Error
	if err != nil {
		return models.EssayAnalysis{}, err
	}
	return analysis, nil
}

func (r *analysisRepository) List(ctx context.Context) ([]models.EssayAnalysis, error) {
	var analyses []models.EssayAnalysis
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&analyses).Error
	if err != nil {
		return nil, err
	}
	return analyses, nil
}

func (r *analysisRepository) GetTodoItem(ctx context.Context, analysisID, itemID string) (models.TodoItem, error) {
	var item models.TodoItem
	err := r.db.WithContext(ctx).
		First(&item, "analysis_id = ? AND item_id = ?", analysisID, itemID).Error
	if err != nil {
		return models.TodoItem{}, err
	}
	return item, nil
}

func (r *analysisRepository) UpdateTodoItem(ctx context.Context, item *models.TodoItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}
