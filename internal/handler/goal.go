package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goaltime/goaltime/internal/ctxkeys"
	"github.com/goaltime/goaltime/internal/repository"
	"github.com/goaltime/goaltime/internal/service"
	"github.com/goaltime/goaltime/internal/validation"
)

type goalHandler struct {
	goalService *service.GoalService
}

func NewGoalHandler(goalService *service.GoalService) *goalHandler {
	return &goalHandler{goalService: goalService}
}

func (h *goalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	goals, err := h.goalService.Goals(r.Context(), user.ID)
	if err != nil {
		respondInternal(w, "failed to list goals", err)
		return
	}

	respondJSON(w, http.StatusOK, goals, "")
}

type createGoalRequest struct {
	Title              string `json:"title"`
	Description        string `json:"description"`
	Category           string `json:"category"`
	DailyTargetMinutes int    `json:"daily_target_minutes"`
	Priority           int    `json:"priority"`
}

func (h *goalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Title = strings.TrimSpace(req.Title)

	fields := validation.ValidateGoal(req.Title, req.Category, req.DailyTargetMinutes, req.Priority)
	if !fields.Ok() {
		respondFieldErrors(w, fields)
		return
	}

	goal, err := h.goalService.Create(r.Context(), user.ID, req.Title, req.Description, req.Category, req.DailyTargetMinutes, req.Priority)
	if err != nil {
		respondInternal(w, "failed to create goal", err)
		return
	}

	respondJSON(w, http.StatusCreated, goal, "Goal created successfully")
}

// Delete removes the goal and, by cascade, its logged time entries.
func (h *goalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.goalService.Delete(r.Context(), user.ID, goalID)
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		respondInternal(w, "failed to delete goal", err)
		return
	}

	respondJSON(w, http.StatusOK, nil, "Goal deleted")
}
