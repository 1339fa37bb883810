package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/essaycoach/essaycoach-api/internal/config"
	"github.com/essaycoach/essaycoach-api/internal/dto"
	"github.com/essaycoach/essaycoach-api/internal/models"
	"github.com/essaycoach/essaycoach-api/internal/observability"
	"github.com/essaycoach/essaycoach-api/internal/repository"
	"github.com/essaycoach/essaycoach-api/internal/rubric"
	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

// ErrAnalysisNotFound indicates the requested analysis cannot be located.
var ErrAnalysisNotFound = errors.New("analysis not found")

// placeholderFeedback is stored for criteria whose scoring call failed.
const placeholderFeedback = "Unable to analyze this criterion at this time."

// AnalysisService exposes essay analysis operations.
type AnalysisService interface {
	AnalyzeBasic(ctx context.Context, payload dto.AnalyzeEssayRequest) (dto.BasicAnalysisResponse, error)
	Analyze(ctx context.Context, payload dto.AnalyzeEssayRequest) (dto.EssayAnalysisResponse, error)
	Get(ctx context.Context, id string) (dto.EssayAnalysisResponse, error)
	List(ctx context.Context) ([]dto.AnalysisSummaryResponse, error)
}

// AnalysisConfig carries the orchestration knobs for one service instance.
type AnalysisConfig struct {
	// MaxCriterionCalls bounds how many criteria get their own completion
	// call per analysis; 0 analyses every criterion. Criteria beyond the
	// bound still appear in the result with a placeholder entry.
	MaxCriterionCalls int
	CacheTTL          time.Duration
	Tuning            config.CompletionTuning
}

type analysisService struct {
	repo      repository.AnalysisRepository
	cache     *redis.Client
	completer ai.Completer
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	config    AnalysisConfig
	now       func() time.Time
	newID     func() string
}

// NewAnalysisService constructs the essay analysis orchestrator.
func NewAnalysisService(repo repository.AnalysisRepository, cache *redis.Client, completer ai.Completer, validate *validator.Validate, logger zerolog.Logger, cfg AnalysisConfig) AnalysisService {
	return &analysisService{
		repo:      repo,
		cache:     cache,
		completer: completer,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "analysis_service").Logger(),
		config:    cfg,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

func (s *analysisService) AnalyzeBasic(ctx context.Context, payload dto.AnalyzeEssayRequest) (dto.BasicAnalysisResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.BasicAnalysisResponse{}, err
	}

	selected, err := rubric.Get(payload.ExamType)
	if err != nil {
		return dto.BasicAnalysisResponse{}, err
	}

	essay := s.sanitizer.Sanitize(payload.Essay)
	feedback, err := s.completer.Complete(ctx, ai.BuildGeneralPrompt(selected.Name, selected.Guidance, essay), s.config.Tuning.General)
	if err != nil {
		return dto.BasicAnalysisResponse{}, fmt.Errorf("general feedback: %w", err)
	}

	return dto.BasicAnalysisResponse{
		ID:        s.newID(),
		Feedback:  feedback,
		Essay:     essay,
		ExamType:  selected.ID,
		Title:     payload.Title,
		Topic:     payload.Topic,
		Timestamp: s.now().UTC(),
	}, nil
}

func (s *analysisService) Analyze(ctx context.Context, payload dto.AnalyzeEssayRequest) (dto.EssayAnalysisResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EssayAnalysisResponse{}, err
	}

	selected, err := rubric.Get(payload.ExamType)
	if err != nil {
		return dto.EssayAnalysisResponse{}, err
	}

	essay := s.sanitizer.Sanitize(payload.Essay)

	// The general call is the only completion allowed to abort the analysis.
	generalFeedback, err := s.completer.Complete(ctx, ai.BuildGeneralPrompt(selected.Name, selected.Guidance, essay), s.config.Tuning.General)
	if err != nil {
		return dto.EssayAnalysisResponse{}, fmt.Errorf("general feedback: %w", err)
	}

	analysisID := s.newID()
	now := s.now().UTC()

	limit := s.config.MaxCriterionCalls
	if limit <= 0 || limit > len(selected.Criteria) {
		limit = len(selected.Criteria)
	}

	feedbacks := make([]models.CriterionFeedback, 0, len(selected.Criteria))
	var totalScore float64
	var totalMax int

	for i, criterion := range selected.Criteria {
		var feedback models.CriterionFeedback
		if i < limit {
			feedback = s.analyzeCriterion(ctx, analysisID, criterion, essay)
		} else {
			deferred := fmt.Sprintf("Detailed analysis for %s will be available in the enhanced interface.", criterion.Name)
			feedback = models.CriterionFeedback{
				AnalysisID:    analysisID,
				CriterionID:   criterion.ID,
				CriterionName: criterion.Name,
				Score:         0,
				MaxScore:      criterion.MaxScore,
				Feedback:      deferred,
				AIFeedback:    deferred,
				Suggestions:   emptyJSONList(),
			}
		}

		totalScore += feedback.Score
		totalMax += feedback.MaxScore
		feedbacks = append(feedbacks, feedback)
	}

	overall := 0
	if totalMax > 0 {
		overall = int(math.Round(totalScore / float64(totalMax) * 100))
	}

	analysis := models.EssayAnalysis{
		ID:                 analysisID,
		Essay:              essay,
		ExamType:           selected.ID,
		Title:              payload.Title,
		Topic:              payload.Topic,
		OverallScore:       overall,
		MaxScore:           models.AnalysisMaxScore,
		GeneralFeedback:    generalFeedback,
		CriterionFeedbacks: feedbacks,
		CreatedAt:          now,
	}

	// The analysis is already complete; persistence and cache problems are
	// logged but never surfaced to the submitting student.
	if err := s.repo.Create(ctx, &analysis); err != nil {
		s.logger.Error().Err(err).Str("analysis_id", analysisID).Msg("failed to persist analysis")
	}

	response := dto.NewEssayAnalysisResponse(analysis)
	s.storeInCache(ctx, response)
	observability.Analyses().WithLabelValues(selected.ID).Inc()

	return response, nil
}

// analyzeCriterion runs the scoring and todo calls for one criterion. Failures
// degrade to a zero-score placeholder so a single upstream error never takes
// down the whole analysis.
func (s *analysisService) analyzeCriterion(ctx context.Context, analysisID string, criterion rubric.Criterion, essay string) models.CriterionFeedback {
	raw, err := s.completer.Complete(ctx, ai.BuildCriterionPrompt(ai.CriterionPromptInput{
		Name:        criterion.Name,
		Description: criterion.Description,
		MaxScore:    criterion.MaxScore,
		Essay:       essay,
	}), s.config.Tuning.Criterion)
	if err != nil {
		s.logger.Warn().Err(err).Str("criterion_id", criterion.ID).Msg("criterion analysis failed")
		observability.CriterionFailures().Inc()
		return models.CriterionFeedback{
			AnalysisID:    analysisID,
			CriterionID:   criterion.ID,
			CriterionName: criterion.Name,
			Score:         0,
			MaxScore:      criterion.MaxScore,
			Feedback:      placeholderFeedback,
			AIFeedback:    placeholderFeedback,
			Suggestions:   emptyJSONList(),
		}
	}

	result := ai.CoerceCriterionResult(raw, criterion.MaxScore)
	if result.Fallback {
		s.logger.Debug().Str("criterion_id", criterion.ID).Msg("criterion response kept as raw feedback")
	}

	suggestions, marshalErr := json.Marshal(result.Suggestions)
	if marshalErr != nil {
		suggestions = emptyJSONList()
	}

	feedback := models.CriterionFeedback{
		AnalysisID:    analysisID,
		CriterionID:   criterion.ID,
		CriterionName: criterion.Name,
		Score:         result.Score,
		MaxScore:      result.MaxScore,
		Feedback:      result.Feedback,
		AIFeedback:    result.Feedback,
		Suggestions:   datatypes.JSON(suggestions),
	}

	feedback.TodoItems = s.generateTodos(ctx, analysisID, criterion, result.Feedback, essay)
	return feedback
}

// generateTodos derives actionable items from the criterion feedback. A failed
// call leaves the todo list empty rather than failing the analysis.
func (s *analysisService) generateTodos(ctx context.Context, analysisID string, criterion rubric.Criterion, feedback, essay string) []models.TodoItem {
	raw, err := s.completer.Complete(ctx, ai.BuildTodoPrompt(criterion.Name, feedback, essay), s.config.Tuning.Todo)
	if err != nil {
		s.logger.Warn().Err(err).Str("criterion_id", criterion.ID).Msg("todo generation failed")
		return nil
	}

	drafts := ai.CoerceTodoDrafts(raw)
	items := make([]models.TodoItem, 0, len(drafts))
	for i, draft := range drafts {
		items = append(items, models.TodoItem{
			ItemID:      fmt.Sprintf("%s-todo-%d", criterion.ID, i),
			AnalysisID:  analysisID,
			CriterionID: criterion.ID,
			Title:       draft.Title,
			Description: draft.Description,
			Status:      models.TodoStatusPending,
			Priority:    draft.Priority,
		})
	}
	return items
}

func (s *analysisService) Get(ctx context.Context, id string) (dto.EssayAnalysisResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, analysisCacheKey(id)).Result(); err == nil {
			var response dto.EssayAnalysisResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Str("analysis_id", id).Msg("analysis cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read analysis cache")
		}
	}

	analysis, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.EssayAnalysisResponse{}, ErrAnalysisNotFound
		}
		return dto.EssayAnalysisResponse{}, err
	}

	response := dto.NewEssayAnalysisResponse(analysis)
	s.storeInCache(ctx, response)
	return response, nil
}

func (s *analysisService) List(ctx context.Context) ([]dto.AnalysisSummaryResponse, error) {
	analyses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.AnalysisSummaryResponse, 0, len(analyses))
	for _, analysis := range analyses {
		summaries = append(summaries, dto.NewAnalysisSummaryResponse(analysis))
	}
	return summaries, nil
}

func (s *analysisService) storeInCache(ctx context.Context, response dto.EssayAnalysisResponse) {
	if s.cache == nil {
		return
	}

	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, analysisCacheKey(response.ID), payload, s.config.CacheTTL).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to store analysis cache")
	}
}

func analysisCacheKey(id string) string {
	return "analysis:" + id
}

func emptyJSONList() datatypes.JSON {
	return datatypes.JSON([]byte("[]"))
}
