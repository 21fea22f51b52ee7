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

type GoalService struct {
	repo     repository.GoalRepository
	cache    cache.Cache
	cacheTTL time.Duration
}

func NewGoalService(repo repository.GoalRepository, c cache.Cache, cacheTTL time.Duration) *GoalService {
	return &GoalService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func goalsKey(userID string) string {
	return "goals:" + userID
}

// Goals reads the user's goal list through the query cache, ordered by
// priority for the registry and analytics views.
func (s *GoalService) Goals(ctx context.Context, userID string) ([]*model.Goal, error) {
	var cached []*model.Goal
	err := s.cache.Get(ctx, goalsKey(userID), &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("goal cache read failed", "error", err, "user_id", userID)
	}

	goals, err := s.repo.Goals(userID)
	if err != nil {
		return nil, err
	}

	err = s.cache.Set(ctx, goalsKey(userID), goals, s.cacheTTL)
	if err != nil {
		slog.Warn("goal cache write failed", "error", err, "user_id", userID)
	}

	return goals, nil
}

func (s *GoalService) ByID(userID, goalID string) (*model.Goal, error) {
	return s.repo.ByID(userID, goalID)
}

func (s *GoalService) Create(ctx context.Context, userID, title, description, category string, dailyTargetMinutes, priority int) (*model.Goal, error) {
	goal := &model.Goal{
		ID:                 uuid.New().String(),
		UserID:             userID,
		Title:              title,
		Description:        description,
		Category:           category,
		DailyTargetMinutes: dailyTargetMinutes,
		Priority:           priority,
		CreatedAt:          time.Now(),
	}

	err := s.repo.Create(goal)
	if err != nil {
		return nil, fmt.Errorf("failed to create goal: %w", err)
	}

	s.invalidate(ctx, userID)
	return goal, nil
}

// Delete removes the goal and, through the schema's cascade, its time
// entries. Both cached query families go stale.
func (s *GoalService) Delete(ctx context.Context, userID, goalID string) error {
	// Verify ownership
	_, err := s.repo.ByID(userID, goalID)
	if err != nil {
		return err
	}

	err = s.repo.Delete(userID, goalID)
	if err != nil {
		return err
	}

	s.invalidate(ctx, userID)
	err = s.cache.DeletePrefix(ctx, "time_entries:"+userID)
	if err != nil {
		slog.Warn("time entry cache invalidation failed", "error", err, "user_id", userID)
	}
	return nil
}

func (s *GoalService) invalidate(ctx context.Context, userID string) {
	err := s.cache.DeletePrefix(ctx, goalsKey(userID))
	if err != nil {
		slog.Warn("goal cache invalidation failed", "error", err, "user_id", userID)
	}
}
