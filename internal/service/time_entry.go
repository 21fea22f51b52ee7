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
	"github.com/goaltime/goaltime/internal/tracker"
)

type TimeEntryService struct {
	repo     repository.TimeEntryRepository
	goalRepo repository.GoalRepository
	tracker  *tracker.Tracker
	cache    cache.Cache
	cacheTTL time.Duration
	now      func() time.Time
}

func NewTimeEntryService(
	repo repository.TimeEntryRepository,
	goalRepo repository.GoalRepository,
	trk *tracker.Tracker,
	c cache.Cache,
	cacheTTL time.Duration,
	now func() time.Time,
) *TimeEntryService {
	if now == nil {
		now = time.Now
	}
	return &TimeEntryService{
		repo:     repo,
		goalRepo: goalRepo,
		tracker:  trk,
		cache:    c,
		cacheTTL: cacheTTL,
		now:      now,
	}
}

func timeEntriesKey(userID string) string {
	return "time_entries:" + userID
}

// Entries reads the user's full time log through the query cache.
func (s *TimeEntryService) Entries(ctx context.Context, userID string) ([]*model.TimeEntryWithGoal, error) {
	var cached []*model.TimeEntryWithGoal
	err := s.cache.Get(ctx, timeEntriesKey(userID), &cached)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		slog.Warn("time entry cache read failed", "error", err, "user_id", userID)
	}

	entries, err := s.repo.Entries(userID)
	if err != nil {
		return nil, err
	}

	err = s.cache.Set(ctx, timeEntriesKey(userID), entries, s.cacheTTL)
	if err != nil {
		slog.Warn("time entry cache write failed", "error", err, "user_id", userID)
	}

	return entries, nil
}

// Window returns entries joined with goal fields for [from, to], uncached:
// the analytics derivations are recomputed from fresh rows on every render.
func (s *TimeEntryService) Window(userID, from, to string) ([]*model.TimeEntryWithGoal, error) {
	return s.repo.Window(userID, from, to)
}

// CreateManual logs hours and minutes entered directly. Bounds are checked
// in the handler; the total is re-checked here so a bad caller cannot store
// a zero-length entry.
func (s *TimeEntryService) CreateManual(ctx context.Context, userID, goalID, notes string, hours, minutes int) (*model.TimeEntry, error) {
	total := hours*60 + minutes
	if total <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	return s.create(ctx, userID, goalID, notes, total)
}

// CreateFromStopwatch consumes the user's tracked seconds and logs
// max(1, round(seconds/60)) minutes.
func (s *TimeEntryService) CreateFromStopwatch(ctx context.Context, userID, goalID, notes string) (*model.TimeEntry, error) {
	seconds, err := s.tracker.Consume(userID)
	if err != nil {
		return nil, err
	}

	return s.create(ctx, userID, goalID, notes, tracker.Minutes(seconds))
}

func (s *TimeEntryService) create(ctx context.Context, userID, goalID, notes string, durationMinutes int) (*model.TimeEntry, error) {
	// The goal must exist and belong to the same user.
	_, err := s.goalRepo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	entry := &model.TimeEntry{
		ID:              uuid.New().String(),
		UserID:          userID,
		GoalID:          goalID,
		DurationMinutes: durationMinutes,
		Date:            now.Format(model.DateLayout),
		Notes:           notes,
		CreatedAt:       now,
	}

	err = s.repo.Create(entry)
	if err != nil {
		return nil, fmt.Errorf("failed to create time entry: %w", err)
	}

	s.invalidate(ctx, userID)
	return entry, nil
}

// Update edits an existing entry's goal, notes and duration. The entry's
// date is left as logged.
func (s *TimeEntryService) Update(ctx context.Context, userID, entryID, goalID, notes string, hours, minutes int) (*model.TimeEntry, error) {
	total := hours*60 + minutes
	if total <= 0 {
		return nil, fmt.Errorf("duration must be positive")
	}

	entry, err := s.repo.ByID(userID, entryID)
	if err != nil {
		return nil, err
	}

	_, err = s.goalRepo.ByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	entry.GoalID = goalID
	entry.Notes = notes
	entry.DurationMinutes = total

	err = s.repo.Update(entry)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, userID)
	return entry, nil
}

func (s *TimeEntryService) invalidate(ctx context.Context, userID string) {
	err := s.cache.DeletePrefix(ctx, timeEntriesKey(userID))
	if err != nil {
		slog.Warn("time entry cache invalidation failed", "error", err, "user_id", userID)
	}
}
