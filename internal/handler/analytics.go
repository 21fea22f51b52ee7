package handler

import (
	"net/http"
	"time"

	"github.com/goaltime/goaltime/internal/analytics"
	"github.com/goaltime/goaltime/internal/ctxkeys"
	"github.com/goaltime/goaltime/internal/model"
	"github.com/goaltime/goaltime/internal/service"
)

type analyticsHandler struct {
	goalService      *service.GoalService
	timeEntryService *service.TimeEntryService
	weekStartDay     time.Weekday
	now              func() time.Time
}

func NewAnalyticsHandler(goalService *service.GoalService, timeEntryService *service.TimeEntryService, weekStartDay time.Weekday, now func() time.Time) *analyticsHandler {
	if now == nil {
		now = time.Now
	}
	return &analyticsHandler{
		goalService:      goalService,
		timeEntryService: timeEntryService,
		weekStartDay:     weekStartDay,
		now:              now,
	}
}

type analyticsResponse struct {
	DailyProgress        []analytics.DailyPoint      `json:"daily_progress"`
	GoalCompletion       []analytics.CompletionPoint `json:"goal_completion"`
	CategoryDistribution []analytics.CategoryPoint   `json:"category_distribution"`
}

// Show derives the three dashboard series from one window of entries:
// the 8 days from a week before week start through today, so week-to-date
// charts and the trailing completion rate share a single query.
func (h *analyticsHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	now := h.now()
	weekStart := analytics.WeekStart(now, h.weekStartDay)
	from := weekStart.AddDate(0, 0, -7).Format(model.DateLayout)
	to := now.Format(model.DateLayout)

	entries, err := h.timeEntryService.Window(user.ID, from, to)
	if err != nil {
		respondInternal(w, "failed to fetch analytics window", err)
		return
	}

	goals, err := h.goalService.Goals(r.Context(), user.ID)
	if err != nil {
		respondInternal(w, "failed to fetch goals for analytics", err)
		return
	}

	respondJSON(w, http.StatusOK, analyticsResponse{
		DailyProgress:        analytics.DailyProgress(entries, weekStart),
		GoalCompletion:       analytics.GoalCompletion(goals, entries),
		CategoryDistribution: analytics.CategoryDistribution(entries),
	}, "")
}
