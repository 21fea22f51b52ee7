package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/goaltime/goaltime/internal/cache"
	"github.com/goaltime/goaltime/internal/model"
	"github.com/goaltime/goaltime/internal/repository"
)

type JournalService struct {
	repo     repository.JournalRepository
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewJournalService(repo repository.JournalRepository, c cache.Cache, cacheTTL time.Duration, now func() time.Time) *JournalService {
	if now == nil {
		now = time.Now
	}
	return &JournalService{
		repo:     repo,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      now,
	}
}

func journalKey(userID, date string) string {
	return "journal:" + userID + ":" + date
}

// ForDate returns the day's entry, or (nil, nil) when the user has not
// journaled that day yet.
func (s *JournalService) ForDate(ctx context.Context, userID, date string) (*model.JournalEntry, error) {
	var cached model.JournalEntry
	err := s.cache.Get(ctx, journalKey(userID, date), &cached)
	if err == nil {
		return &cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("journal cache read failed", "error", err, "user_id", userID)
	}

	entry, err := s.repo.ByDate(userID, date)
	if errors.Is(err, repository.ErrJournalEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	err = s.cache.Set(ctx, journalKey(userID, date), entry, s.cacheTTL)
	if err != nil {
		slog.Warn("journal cache write failed", "error", err, "user_id", userID)
	}

	return entry, nil
}

// Upsert records today's mood and reflection, overwriting any earlier
// submission for the day.
func (s *JournalService) Upsert(ctx context.Context, userID, mood, reflection string) (*model.JournalEntry, error) {
	entry := &model.JournalEntry{
		UserID:     userID,
		Date:       s.now().Format(model.DateLayout),
		Mood:       mood,
		Reflection: reflection,
		CreatedAt:  s.now(),
	}

	err := s.repo.Upsert(entry)
	if err != nil {
		return nil, err
	}

	err = s.cache.DeletePrefix(ctx, "journal:"+userID)
	if err != nil {
		slog.Warn("journal cache invalidation failed", "error", err, "user_id", userID)
	}

	return entry, nil
}
