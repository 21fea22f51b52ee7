package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/goaltime/goaltime/internal/cache"
	"github.com/goaltime/goaltime/internal/model"
	"github.com/goaltime/goaltime/internal/repository"
)

type DailyGoalService struct {
	repo     repository.DailyGoalRepository
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewDailyGoalService(repo repository.DailyGoalRepository, c cache.Cache, cacheTTL time.Duration, now func() time.Time) *DailyGoalService {
	if now == nil {
		now = time.Now
	}
	return &DailyGoalService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      now,
	}
}

func dailyGoalsKey(userID, date string) string {
	return "daily_goals:" + userID + ":" + date
}

func (s *DailyGoalService) Today() string {
	return s.now().Format(model.DateLayout)
}

// ForDate reads the day's checklist through the query cache, ordered by
// priority.
func (s *DailyGoalService) ForDate(ctx context.Context, userID, date string) ([]*model.DailyGoal, error) {
	var cached []*model.DailyGoal
	err := s.cache.Get(ctx, dailyGoalsKey(userID, date), &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("daily goal cache read failed", "error", err, "user_id", userID)
	}

	goals, err := s.repo.ByDate(userID, date)
	if err != nil {
		return nil, err
	}

	err = s.cache.Set(ctx, dailyGoalsKey(userID, date), goals, s.cacheTTL)
	if err != nil {
		slog.Warn("daily goal cache write failed", "error", err, "user_id", userID)
	}

	return goals, nil
}

// Create adds a checklist item for today.
func (s *DailyGoalService) Create(ctx context.Context, userID, title string, priority int) (*model.DailyGoal, error) {
	goal := &model.DailyGoal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Title:     title,
		Priority:  priority,
		Date:      s.Today(),
		Completed: false,
		CreatedAt: s.now(),
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create daily goal: %w", err)
	}

	s.invalidate(ctx, userID)
	return goal, nil
}

func (s *DailyGoalService) SetCompleted(ctx context.Context, userID, goalID string, completed bool) error {
	err := s.repo.SetCompleted(userID, goalID, completed)
	if err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *DailyGoalService) Delete(ctx context.Context, userID, goalID string) error {
	err := s.repo.Delete(userID, goalID)
	if err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	return nil
}

func (s *DailyGoalService) invalidate(ctx context.Context, userID string) {
	err := s.cache.DeletePrefix(ctx, "daily_goals:"+userID)
	if err != nil {
		slog.Warn("daily goal cache invalidation failed", "error", err, "user_id", userID)
	}
}
