package routes

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/goaltime/goaltime/internal/app"
	"github.com/goaltime/goaltime/internal/handler"
	"github.com/goaltime/goaltime/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService)
	goal := handler.NewGoalHandler(app.GoalService)
	timeEntry := handler.NewTimeEntryHandler(app.TimeEntryService, app.Tracker)
	dailyGoal := handler.NewDailyGoalHandler(app.DailyGoalService)
	journal := handler.NewJournalHandler(app.JournalService)
	analytics := handler.NewAnalyticsHandler(app.GoalService, app.TimeEntryService, app.Cfg.WeekStartDay, nil)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Healthz)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Auth - authentication flow (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /auth/signup", rateLimiter(middleware.RequireGuest(auth.Signup)))
	mux.HandleFunc("POST /auth/login", rateLimiter(middleware.RequireGuest(auth.Login)))
	mux.HandleFunc("POST /auth/forgot-password", rateLimiter(middleware.RequireGuest(auth.ForgotPassword)))
	mux.HandleFunc("POST /auth/reset-password", rateLimiter(middleware.RequireGuest(auth.ResetPassword)))
	mux.HandleFunc("POST /auth/logout", auth.Logout)
	mux.HandleFunc("GET /auth/me", middleware.RequireAuth(auth.Me))

	// ============================================================================
	// PROTECTED ROUTES (/app/*)
	// ============================================================================

	// Goals
	mux.HandleFunc("GET /app/goals", middleware.RequireAuth(goal.List))
	mux.HandleFunc("POST /app/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("DELETE /app/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Daily checklist
	mux.HandleFunc("GET /app/daily-goals", middleware.RequireAuth(dailyGoal.List))
	mux.HandleFunc("POST /app/daily-goals", middleware.RequireAuth(dailyGoal.Create))
	mux.HandleFunc("PATCH /app/daily-goals/{id}", middleware.RequireAuth(dailyGoal.Toggle))
	mux.HandleFunc("DELETE /app/daily-goals/{id}", middleware.RequireAuth(dailyGoal.Delete))

	// Stopwatch
	mux.HandleFunc("GET /app/tracker", middleware.RequireAuth(timeEntry.TrackerStatus))
	mux.HandleFunc("POST /app/tracker/start", middleware.RequireAuth(timeEntry.TrackerStart))
	mux.HandleFunc("POST /app/tracker/stop", middleware.RequireAuth(timeEntry.TrackerStop))
	mux.HandleFunc("POST /app/tracker/reset", middleware.RequireAuth(timeEntry.TrackerReset))

	// Time entries
	mux.HandleFunc("GET /app/time-entries", middleware.RequireAuth(timeEntry.List))
	mux.HandleFunc("POST /app/time-entries", middleware.RequireAuth(timeEntry.Create))
	mux.HandleFunc("PUT /app/time-entries/{id}", middleware.RequireAuth(timeEntry.Update))

	// Journal
	mux.HandleFunc("GET /app/journal", middleware.RequireAuth(journal.Show))
	mux.HandleFunc("PUT /app/journal", middleware.RequireAuth(journal.Upsert))

	// Analytics
	mux.HandleFunc("GET /app/analytics", middleware.RequireAuth(analytics.Show))

	// 404
	mux.HandleFunc("/{path...}", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	h := middleware.Chain(
		mux,
		middleware.Config(app.Cfg),
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.Metrics,
		middleware.CSRFProtection, // CSRF protection for all state-changing requests
		middleware.AuthMiddleware(app.AuthService, app.UserRepository),
	)

	return h
}
