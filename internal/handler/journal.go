package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/goaltime/goaltime/internal/ctxkeys"
	"github.com/goaltime/goaltime/internal/model"
	"github.com/goaltime/goaltime/internal/service"
	"github.com/goaltime/goaltime/internal/validation"
)

type journalHandler struct {
	journalService *service.JournalService
}

func NewJournalHandler(journalService *service.JournalService) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// Show returns the entry for ?date=YYYY-MM-DD (default today). A day with
// no entry yields null data so the client renders an empty form.
func (h *journalHandler) Show(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	date := r.URL.Query().Get("date")
	if date == "" {
		date = time.Now().Format(model.DateLayout)
	}

	entry, err := h.journalService.ForDate(r.Context(), user.ID, date)
	if err != nil {
		respondInternal(w, "failed to fetch journal entry", err)
		return
	}

	respondJSON(w, http.StatusOK, entry, "")
}

type upsertJournalRequest struct {
	Mood       string `json:"mood"`
	Reflection string `json:"reflection"`
}

// Upsert saves today's mood and reflection; submitting twice in a day
// overwrites the earlier entry.
func (h *journalHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	user := ctxkeys.User(r.Context())

	var req upsertJournalRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	req.Reflection = strings.TrimSpace(req.Reflection)

	fields := validation.ValidateJournal(req.Mood, req.Reflection)
	if !fields.Ok() {
		respondFieldErrors(w, fields)
		return
	}

	entry, err := h.journalService.Upsert(r.Context(), user.ID, req.Mood, req.Reflection)
	if err != nil {
		respondInternal(w, "failed to save journal entry", err)
		return
	}

	respondJSON(w, http.StatusOK, entry, "Journal saved")
}
