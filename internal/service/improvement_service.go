package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/essaycoach/essaycoach-api/internal/dto"
	"github.com/essaycoach/essaycoach-api/pkg/ai"
)

// ImprovementService judges how well an edited essay addresses a todo item.
type ImprovementService interface {
	Evaluate(ctx context.Context, payload dto.EvaluateImprovementsRequest) (dto.EvaluateImprovementsResponse, error)
}

type improvementService struct {
	completer ai.Completer
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	logger    zerolog.Logger
	options   ai.CallOptions
	now       func() time.Time
}

// NewImprovementService constructs the improvement evaluation service.
func NewImprovementService(completer ai.Completer, validate *validator.Validate, logger zerolog.Logger, options ai.CallOptions) ImprovementService {
	return &improvementService{
		completer: completer,
		validator: validate,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger.With().Str("component", "improvement_service").Logger(),
		options:   options,
		now:       time.Now,
	}
}

func (s *improvementService) Evaluate(ctx context.Context, payload dto.EvaluateImprovementsRequest) (dto.EvaluateImprovementsResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.EvaluateImprovementsResponse{}, err
	}

	original := s.sanitizer.Sanitize(payload.OriginalEssay)
	edited := s.sanitizer.Sanitize(payload.EditedEssay)

	raw, err := s.completer.Complete(ctx, ai.BuildImprovementPrompt(original, edited, payload.CriterionName, payload.TodoItemTitle), s.options)
	if err != nil {
		return dto.EvaluateImprovementsResponse{}, fmt.Errorf("improvement evaluation: %w", err)
	}

	result := ai.CoerceImprovementResult(raw)
	if result.Fallback {
		s.logger.Debug().Str("criterion_id", payload.CriterionID).Msg("improvement response kept as raw feedback")
	}

	return dto.EvaluateImprovementsResponse{
		Evaluation: dto.ImprovementEvaluation{
			ImprovementScore: result.ImprovementScore,
			Feedback:         result.Feedback,
			Suggestions:      result.Suggestions,
		},
		Timestamp: s.now().UTC(),
	}, nil
}
