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

type dailyGoalHandler struct {
	dailyGoalService *service.DailyGoalService
}

func NewDailyGoalHandler(dailyGoalService *service.DailyGoalService) *dailyGoalHandler {
	return &dailyGoalHandler{dailyGoalService: dailyGoalService}
}

// List returns the checklist for ?date=YYYY-MM-DD, defaulting to today.
func (h *dailyGoalHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	date := r.URL.Query().Get("date")
	if date == "" {
		date = h.dailyGoalService.Today()
	}

	goals, err := h.dailyGoalService.ForDate(r.Context(), user.ID, date)
	if err != nil {
		respondInternal(w, "failed to list daily goals", err)
		return
	}

	respondJSON(w, http.StatusOK, goals, "")
}

type createDailyGoalRequest struct {
	Title    string `json:"title"`
	Priority int    `json:"priority"`
}

func (h *dailyGoalHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createDailyGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Title = strings.TrimSpace(req.Title)

	fields := validation.ValidateDailyGoal(req.Title, req.Priority)
	if !fields.Ok() {
		respondFieldErrors(w, fields)
		return
	}

	goal, err := h.dailyGoalService.Create(r.Context(), user.ID, req.Title, req.Priority)
	if err != nil {
		respondInternal(w, "failed to create daily goal", err)
		return
	}

	respondJSON(w, http.StatusCreated, goal, "Daily goal added")
}

type toggleDailyGoalRequest struct {
	Completed bool `json:"completed"`
}

func (h *dailyGoalHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	var req toggleDailyGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	err := h.dailyGoalService.SetCompleted(r.Context(), user.ID, goalID, req.Completed)
	if errors.Is(err, repository.ErrDailyGoalNotFound) {
		respondError(w, http.StatusNotFound, "Daily goal not found")
		return
	}
	if err != nil {
		respondInternal(w, "failed to toggle daily goal", err)
		return
	}

	respondJSON(w, http.StatusOK, nil, "")
}

func (h *dailyGoalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	goalID := r.PathValue("id")

	err := h.dailyGoalService.Delete(r.Context(), user.ID, goalID)
	if errors.Is(err, repository.ErrDailyGoalNotFound) {
		respondError(w, http.StatusNotFound, "Daily goal not found")
		return
	}
	if err != nil {
		respondInternal(w, "failed to delete daily goal", err)
		return
	}

	respondJSON(w, http.StatusOK, nil, "Daily goal removed")
}
