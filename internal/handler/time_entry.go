package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/goaltime/goaltime/internal/ctxkeys"
	"github.com/goaltime/goaltime/internal/repository"
	"github.com/goaltime/goaltime/internal/service"
	"github.com/goaltime/goaltime/internal/tracker"
	"github.com/goaltime/goaltime/internal/validation"
)

type timeEntryHandler struct {
	timeEntryService *service.TimeEntryService
	tracker          *tracker.Tracker
}

func NewTimeEntryHandler(timeEntryService *service.TimeEntryService, trk *tracker.Tracker) *timeEntryHandler {
	return &timeEntryHandler{
		timeEntryService: timeEntryService,
		tracker:          trk,
	}
}

func (h *timeEntryHandler) List(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	entries, err := h.timeEntryService.Entries(r.Context(), user.ID)
	if err != nil {
		respondInternal(w, "failed to list time entries", err)
		return
	}

	respondJSON(w, http.StatusOK, entries, "")
}

type createTimeEntryRequest struct {
	GoalID  string `json:"goal_id"`
	Notes   string `json:"notes"`
	Mode    string `json:"mode"` // "stopwatch" or "manual"
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
}

// Create logs time against a goal, either from the stopwatch's frozen
// elapsed seconds or from manual hours+minutes.
func (h *timeEntryHandler) Create(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req createTimeEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Notes = strings.TrimSpace(req.Notes)

	fields := validation.ValidateTimeEntry(req.GoalID)
	if req.Mode != "stopwatch" {
		for k, v := range validation.ValidateManualDuration(req.Hours, req.Minutes) {
			fields[k] = v
		}
	}
	if !fields.Ok() {
		respondFieldErrors(w, fields)
		return
	}

	var entry any
	var err error
	if req.Mode == "stopwatch" {
		entry, err = h.timeEntryService.CreateFromStopwatch(r.Context(), user.ID, req.GoalID, req.Notes)
		if errors.Is(err, tracker.ErrNothingTracked) {
			respondFieldErrors(w, validation.FieldErrors{"duration": "No tracked time to submit"})
			return
		}
	} else {
		entry, err = h.timeEntryService.CreateManual(r.Context(), user.ID, req.GoalID, req.Notes, req.Hours, req.Minutes)
	}
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		respondInternal(w, "failed to create time entry", err)
		return
	}

	respondJSON(w, http.StatusCreated, entry, "Time entry logged")
}

type updateTimeEntryRequest struct {
	GoalID  string `json:"goal_id"`
	Notes   string `json:"notes"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
}

// Update edits an existing entry in place. The client pre-fills the form
// with duration div/mod 60; the same hours+minutes bounds apply as on create.
func (h *timeEntryHandler) Update(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	entryID := r.PathValue("id")

	var req updateTimeEntryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Notes = strings.TrimSpace(req.Notes)

	fields := validation.ValidateTimeEntry(req.GoalID)
	for k, v := range validation.ValidateManualDuration(req.Hours, req.Minutes) {
		fields[k] = v
	}
	if !fields.Ok() {
		respondFieldErrors(w, fields)
		return
	}

	entry, err := h.timeEntryService.Update(r.Context(), user.ID, entryID, req.GoalID, req.Notes, req.Hours, req.Minutes)
	if errors.Is(err, repository.ErrTimeEntryNotFound) {
		respondError(w, http.StatusNotFound, "Time entry not found")
		return
	}
	if errors.Is(err, repository.ErrGoalNotFound) {
		respondError(w, http.StatusNotFound, "Goal not found")
		return
	}
	if err != nil {
		respondInternal(w, "failed to update time entry", err)
		return
	}

	respondJSON(w, http.StatusOK, entry, "Time entry updated")
}

func (h *timeEntryHandler) TrackerStart(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	err := h.tracker.Start(user.ID)
	if errors.Is(err, tracker.ErrAlreadyRunning) {
		respondError(w, http.StatusConflict, "A stopwatch is already running")
		return
	}
	if err != nil {
		respondInternal(w, "failed to start tracker", err)
		return
	}

	respondJSON(w, http.StatusOK, h.tracker.Status(user.ID), "")
}

func (h *timeEntryHandler) TrackerStop(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, h.tracker.Stop(user.ID), "")
}

func (h *timeEntryHandler) TrackerStatus(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	respondJSON(w, http.StatusOK, h.tracker.Status(user.ID), "")
}

// TrackerReset discards a frozen elapsed value, e.g. when the user
// switches from stopwatch to manual entry.
func (h *timeEntryHandler) TrackerReset(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())
	h.tracker.Reset(user.ID)
	respondJSON(w, http.StatusOK, h.tracker.Status(user.ID), "")
}
