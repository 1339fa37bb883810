package service

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/essaycoach/essaycoach-api/internal/dto"
	"github.com/essaycoach/essaycoach-api/internal/models"
	"github.com/essaycoach/essaycoach-api/internal/repository"
)

// ErrTodoNotFound indicates the todo item does not exist on the analysis.
var ErrTodoNotFound = errors.New("todo item not found")

// ErrInvalidTodoStatus indicates the requested status is not a known state.
var ErrInvalidTodoStatus = errors.New("invalid todo status")

// TodoService mutates todo items attached to stored analyses.
type TodoService interface {
	UpdateStatus(ctx context.Context, analysisID, itemID, status string) (dto.TodoItemResponse, error)
}

type todoService struct {
	repo   repository.AnalysisRepository
	cache  *redis.Client
	logger zerolog.Logger
	now    func() time.Time
}

// NewTodoService constructs the todo status service.
func NewTodoService(repo repository.AnalysisRepository, cache *redis.Client, logger zerolog.Logger) TodoService {
	return &todoService{
		repo:   repo,
		cache:  cache,
		logger: logger.With().Str("component", "todo_service").Logger(),
		now:    time.Now,
	}
}

func (s *todoService) UpdateStatus(ctx context.Context, analysisID, itemID, status string) (dto.TodoItemResponse, error) {
	if !models.ValidTodoStatus(status) {
		return dto.TodoItemResponse{}, ErrInvalidTodoStatus
	}

	item, err := s.repo.GetTodoItem(ctx, analysisID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.TodoItemResponse{}, ErrTodoNotFound
		}
		return dto.TodoItemResponse{}, err
	}

	item.Status = status
	if status == models.TodoStatusCompleted {
		completedAt := s.now().UTC()
		item.CompletedAt = &completedAt
	} else {
		item.CompletedAt = nil
	}

	if err := s.repo.UpdateTodoItem(ctx, &item); err != nil {
		return dto.TodoItemResponse{}, err
	}

	// The cached analysis payload now carries a stale todo status.
	if s.cache != nil {
		if err := s.cache.Del(ctx, analysisCacheKey(analysisID)).Err(); err != nil {
			s.logger.Warn().Err(err).Str("analysis_id", analysisID).Msg("failed to invalidate analysis cache")
		}
	}

	return dto.NewTodoItemResponse(item), nil
}
